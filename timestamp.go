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
	"github.com/opencodec/compact-time/internal/subsecond"
	"github.com/opencodec/compact-time/internal/yearcodec"
)

// EncodedSizeTimestamp returns the number of bytes EncodeTimestamp would
// write for t, or OutOfRange if t's date or time-of-day fields don't fit
// their declared widths. The timezone is not range-checked here.
func EncodedSizeTimestamp(t Time) int {
	return EncodedSizeTimestampFields(t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second, t.Nanosecond, t.Timezone)
}

// EncodedSizeTimestampFields is the decomposed-argument form of
// EncodedSizeTimestamp.
func EncodedSizeTimestampFields(year, month, day, hour, minute, second, nanosecond int, tz Timezone) int {
	if month < monthMin || month > monthMax || day < dayMin || day > dayMax[month] {
		return OutOfRange
	}
	if !timeFieldsInRange(hour, minute, second, nanosecond) {
		return OutOfRange
	}

	isUTC := uint32(0)
	if tz.Type == TimezoneZero {
		isUTC = 1
	}
	magnitude := subsecond.Magnitude(nanosecond)
	encodedYear := (yearcodec.Encode(year) << 1) | isUTC
	upperBits := timestampYearUpperBits[magnitude]
	groups := yearcodec.GroupCount(encodedYear, upperBits)

	bits := baseSizeTimestamp + subsecond.Width(magnitude) + upperBits
	return bitfield.ByteCount(bits) + groups + tz.encodedSize()
}

// EncodeTimestamp encodes t (which must have TimeIs == TypeTimestamp) to
// dst.
func EncodeTimestamp(t Time, dst []byte) int {
	return EncodeTimestampFields(t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second, t.Nanosecond, t.Timezone, dst)
}

// EncodeTimestampLatLongFields is the decomposed-argument form of
// EncodeTimestamp for the lat/long timezone variant, the counterpart to the
// C original's ct_timestamp_encode_latlong.
func EncodeTimestampLatLongFields(year, month, day, hour, minute, second, nanosecond, latitudeHundredths, longitudeHundredths int, dst []byte) int {
	return EncodeTimestampFields(year, month, day, hour, minute, second, nanosecond, NewLatLong(latitudeHundredths, longitudeHundredths), dst)
}

// EncodeTimestampFields is the decomposed-argument form of EncodeTimestamp.
func EncodeTimestampFields(year, month, day, hour, minute, second, nanosecond int, tz Timezone, dst []byte) int {
	if month < monthMin || month > monthMax || day < dayMin || day > dayMax[month] {
		return OutOfRange
	}
	if !timeFieldsInRange(hour, minute, second, nanosecond) {
		return OutOfRange
	}

	isUTC := uint32(0)
	if tz.Type == TimezoneZero {
		isUTC = 1
	}
	magnitude := subsecond.Magnitude(nanosecond)
	subsecondBits := subsecond.Width(magnitude)
	encodedYear := (yearcodec.Encode(year) << 1) | isUTC
	upperBits := timestampYearUpperBits[magnitude]
	shiftAmount := yearcodec.GroupBitCount(encodedYear, upperBits)
	upperYearBits := encodedYear >> uint(shiftAmount)

	byteCount := bitfield.ByteCount(baseSizeTimestamp + subsecondBits + upperBits)
	if byteCount > len(dst) {
		return -byteCount
	}

	var asm bitfield.Assembler
	asm.Put(uint64(upperYearBits), upperBits).
		Put(subsecond.Stored(nanosecond, magnitude), subsecondBits).
		Put(uint64(month), sizeMonth).
		Put(uint64(day), sizeDay).
		Put(uint64(hour), sizeHour).
		Put(uint64(minute), sizeMinute).
		Put(uint64(second), sizeSecond).
		Put(uint64(magnitude), sizeMagnitude)
	asm.WriteLE(dst, byteCount)

	lowBits := encodedYear & uint32(bitfield.Mask(shiftAmount))
	tailWritten, ok := yearcodec.EncodeTail(lowBits, dst[byteCount:])
	if !ok {
		return -(byteCount + tailWritten)
	}
	n := byteCount + tailWritten

	if isUTC == 1 {
		return n
	}
	tzWritten := tz.encode(dst[n:])
	if tzWritten < 0 {
		if IsOutOfRange(tzWritten) {
			return OutOfRange
		}
		return tzWritten - n
	}
	return n + tzWritten
}

// DecodeTimestamp decodes a timestamp from src into a Time with
// TimeIs == TypeTimestamp.
func DecodeTimestamp(src []byte) (t Time, bytesRead int) {
	year, month, day, hour, minute, second, nanosecond, tz, n := DecodeTimestampFields(src)
	return NewTimestamp(year, month, day, hour, minute, second, nanosecond, tz), n
}

// DecodeTimestampFields is the decomposed-result form of DecodeTimestamp.
func DecodeTimestampFields(src []byte) (year, month, day, hour, minute, second, nanosecond int, tz Timezone, bytesRead int) {
	// The smallest possible encoding (magnitude 0) needs at least this many
	// fixed bytes before we can even read the magnitude field back out.
	minByteCount := bitfield.ByteCount(baseSizeTimestamp + timestampYearUpperBits[0])
	if minByteCount > len(src) {
		return 0, 0, 0, 0, 0, 0, 0, Timezone{}, -minByteCount
	}

	magnitude := int(src[0]) & int(bitfield.Mask(sizeMagnitude))
	upperBits := timestampYearUpperBits[magnitude]
	byteCount := bitfield.ByteCount(baseSizeTimestamp + subsecond.Width(magnitude) + upperBits)
	if byteCount > len(src) {
		return 0, 0, 0, 0, 0, 0, 0, Timezone{}, -byteCount
	}

	dis := bitfield.ReadLE(src, byteCount)
	dis.Take(sizeMagnitude)
	second = int(dis.Take(sizeSecond))
	minute = int(dis.Take(sizeMinute))
	hour = int(dis.Take(sizeHour))
	day = int(dis.Take(sizeDay))
	month = int(dis.Take(sizeMonth))
	stored := dis.Take(subsecond.Width(magnitude))
	nanosecond = subsecond.Nanosecond(stored, magnitude)
	upperYearBits := uint32(dis.Take(upperBits))

	lowBits, tailRead, ok := yearcodec.DecodeTail(src[byteCount:])
	if !ok {
		return 0, 0, 0, 0, 0, 0, 0, Timezone{}, -(byteCount + tailRead)
	}
	n := byteCount + tailRead

	shiftAmount := tailRead * yearcodec.BitsPerGroup
	encodedYear := (upperYearBits << uint(shiftAmount)) | lowBits
	isUTC := encodedYear & 1
	year = yearcodec.Decode(encodedYear >> 1)

	if month < monthMin || month > monthMax || day < dayMin || day > dayMax[month] {
		return 0, 0, 0, 0, 0, 0, 0, Timezone{}, OutOfRange
	}
	if !timeFieldsInRange(hour, minute, second, nanosecond) {
		return 0, 0, 0, 0, 0, 0, 0, Timezone{}, OutOfRange
	}

	if isUTC == 1 {
		return year, month, day, hour, minute, second, nanosecond, Timezone{}, n
	}

	tz, tzRead := decodeTimezone(src[n:])
	if tzRead < 0 {
		if IsOutOfRange(tzRead) {
			return 0, 0, 0, 0, 0, 0, 0, Timezone{}, OutOfRange
		}
		return 0, 0, 0, 0, 0, 0, 0, Timezone{}, tzRead - n
	}
	return year, month, day, hour, minute, second, nanosecond, tz, n + tzRead
}
