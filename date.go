// Copyright 2019 Karl Stenerud
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS
// IN THE SOFTWARE.

package compact_time

import (
	"github.com/opencodec/compact-time/internal/bitfield"
	"github.com/opencodec/compact-time/internal/yearcodec"
)

// EncodedSizeDate returns the number of bytes EncodeDate would write for t,
// or OutOfRange if t's fields don't fit their declared widths.
func EncodedSizeDate(t Time) int {
	return EncodedSizeDateFields(t.Year, t.Month, t.Day)
}

// EncodedSizeDateFields is the decomposed-argument form of EncodedSizeDate.
func EncodedSizeDateFields(year, month, day int) int {
	if month < monthMin || month > monthMax || day < dayMin || day > dayMax[month] {
		return OutOfRange
	}
	encodedYear := yearcodec.Encode(year)
	groups := yearcodec.GroupCount(encodedYear, sizeDateYearUpperBits)
	return byteCountDate + groups
}

// EncodeDate encodes t (which must have TimeIs == TypeDate) to dst,
// returning a result per the package's return protocol.
func EncodeDate(t Time, dst []byte) int {
	return EncodeDateFields(t.Year, t.Month, t.Day, dst)
}

// EncodeDateFields is the decomposed-argument form of EncodeDate, avoiding
// the need to populate a Time just to encode three integers.
func EncodeDateFields(year, month, day int, dst []byte) int {
	if month < monthMin || month > monthMax || day < dayMin || day > dayMax[month] {
		return OutOfRange
	}
	if byteCountDate > len(dst) {
		return -byteCountDate
	}

	encodedYear := yearcodec.Encode(year)
	shiftAmount := yearcodec.GroupBitCount(encodedYear, sizeDateYearUpperBits)
	upperYearBits := encodedYear >> uint(shiftAmount)

	var asm bitfield.Assembler
	asm.Put(uint64(upperYearBits), sizeDateYearUpperBits).
		Put(uint64(month), sizeMonth).
		Put(uint64(day), sizeDay)
	asm.WriteLE(dst, byteCountDate)

	lowBits := encodedYear & uint32(bitfield.Mask(shiftAmount))
	tailWritten, ok := yearcodec.EncodeTail(lowBits, dst[byteCountDate:])
	if !ok {
		return -(byteCountDate + tailWritten)
	}
	return byteCountDate + tailWritten
}

// DecodeDate decodes a date from src into a Time with TimeIs == TypeDate.
func DecodeDate(src []byte) (t Time, bytesRead int) {
	year, month, day, n := DecodeDateFields(src)
	return NewDate(year, month, day), n
}

// DecodeDateFields is the decomposed-result form of DecodeDate.
func DecodeDateFields(src []byte) (year, month, day, bytesRead int) {
	if byteCountDate > len(src) {
		return 0, 0, 0, -byteCountDate
	}

	dis := bitfield.ReadLE(src, byteCountDate)
	day = int(dis.Take(sizeDay))
	month = int(dis.Take(sizeMonth))
	upperYearBits := uint32(dis.Take(sizeDateYearUpperBits))

	lowBits, tailRead, ok := yearcodec.DecodeTail(src[byteCountDate:])
	if !ok {
		return 0, 0, 0, -(byteCountDate + tailRead)
	}

	shiftAmount := tailRead * yearcodec.BitsPerGroup
	encodedYear := (upperYearBits << uint(shiftAmount)) | lowBits
	year = yearcodec.Decode(encodedYear)
	if month < monthMin || month > monthMax || day < dayMin || day > dayMax[month] {
		return 0, 0, 0, OutOfRange
	}
	return year, month, day, byteCountDate + tailRead
}
