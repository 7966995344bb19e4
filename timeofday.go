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
)

// EncodedSizeTime returns the number of bytes EncodeTime would write for t,
// or OutOfRange if t's time-of-day fields don't fit their declared widths.
// The timezone is not range-checked here.
func EncodedSizeTime(t Time) int {
	return EncodedSizeTimeFields(t.Hour, t.Minute, t.Second, t.Nanosecond, t.Timezone)
}

// EncodedSizeTimeFields is the decomposed-argument form of EncodedSizeTime.
func EncodedSizeTimeFields(hour, minute, second, nanosecond int, tz Timezone) int {
	if !timeFieldsInRange(hour, minute, second, nanosecond) {
		return OutOfRange
	}
	magnitude := subsecond.Magnitude(nanosecond)
	bits := baseSizeTime + subsecond.Width(magnitude)
	return bitfield.ByteCount(bits) + tz.encodedSize()
}

// EncodeTime encodes t (which must have TimeIs == TypeTime) to dst.
func EncodeTime(t Time, dst []byte) int {
	return EncodeTimeFields(t.Hour, t.Minute, t.Second, t.Nanosecond, t.Timezone, dst)
}

// EncodeTimeLatLongFields is the decomposed-argument form of EncodeTime for
// the lat/long timezone variant, the counterpart to the C original's
// ct_time_encode_latlong, for callers who'd rather pass the coordinates
// directly than build a Timezone via NewLatLong first.
func EncodeTimeLatLongFields(hour, minute, second, nanosecond, latitudeHundredths, longitudeHundredths int, dst []byte) int {
	return EncodeTimeFields(hour, minute, second, nanosecond, NewLatLong(latitudeHundredths, longitudeHundredths), dst)
}

// EncodeTimeFields is the decomposed-argument form of EncodeTime.
func EncodeTimeFields(hour, minute, second, nanosecond int, tz Timezone, dst []byte) int {
	if !timeFieldsInRange(hour, minute, second, nanosecond) {
		return OutOfRange
	}

	magnitude := subsecond.Magnitude(nanosecond)
	subsecondBits := subsecond.Width(magnitude)
	byteCount := bitfield.ByteCount(baseSizeTime + subsecondBits)
	if byteCount > len(dst) {
		return -byteCount
	}

	isUTC := uint64(0)
	if tz.Type == TimezoneZero {
		isUTC = 1
	}

	var asm bitfield.Assembler
	asm.Put(subsecond.Stored(nanosecond, magnitude), subsecondBits).
		Put(uint64(second), sizeSecond).
		Put(uint64(minute), sizeMinute).
		Put(uint64(hour), sizeHour).
		Put(uint64(magnitude), sizeMagnitude).
		Put(isUTC, sizeUtc)
	asm.WriteLE(dst, byteCount)

	if isUTC == 1 {
		return byteCount
	}
	tzWritten := tz.encode(dst[byteCount:])
	if tzWritten < 0 {
		if IsOutOfRange(tzWritten) {
			return OutOfRange
		}
		return tzWritten - byteCount
	}
	return byteCount + tzWritten
}

// DecodeTime decodes a time-of-day from src into a Time with
// TimeIs == TypeTime.
func DecodeTime(src []byte) (t Time, bytesRead int) {
	hour, minute, second, nanosecond, tz, n := DecodeTimeFields(src)
	return NewTime(hour, minute, second, nanosecond, tz), n
}

// DecodeTimeFields is the decomposed-result form of DecodeTime.
func DecodeTimeFields(src []byte) (hour, minute, second, nanosecond int, tz Timezone, bytesRead int) {
	minByteCount := bitfield.ByteCount(baseSizeTime)
	if minByteCount > len(src) {
		return 0, 0, 0, 0, Timezone{}, -minByteCount
	}

	magnitude := int(src[0]>>sizeUtc) & int(bitfield.Mask(sizeMagnitude))
	byteCount := bitfield.ByteCount(baseSizeTime + subsecond.Width(magnitude))
	if byteCount > len(src) {
		return 0, 0, 0, 0, Timezone{}, -byteCount
	}

	dis := bitfield.ReadLE(src, byteCount)
	isUTC := dis.Take(sizeUtc)
	dis.Take(sizeMagnitude)
	hour = int(dis.Take(sizeHour))
	minute = int(dis.Take(sizeMinute))
	second = int(dis.Take(sizeSecond))
	stored := dis.Take(subsecond.Width(magnitude))
	nanosecond = subsecond.Nanosecond(stored, magnitude)

	if !timeFieldsInRange(hour, minute, second, nanosecond) {
		return 0, 0, 0, 0, Timezone{}, OutOfRange
	}

	if isUTC == 1 {
		return hour, minute, second, nanosecond, Timezone{}, byteCount
	}

	tz, tzRead := decodeTimezone(src[byteCount:])
	if tzRead < 0 {
		if IsOutOfRange(tzRead) {
			return 0, 0, 0, 0, Timezone{}, OutOfRange
		}
		return 0, 0, 0, 0, Timezone{}, tzRead - byteCount
	}
	return hour, minute, second, nanosecond, tz, byteCount + tzRead
}

func timeFieldsInRange(hour, minute, second, nanosecond int) bool {
	return hour >= hourMin && hour <= hourMax &&
		minute >= minuteMin && minute <= minuteMax &&
		second >= secondMin && second <= secondMax &&
		nanosecond >= nanosecondMin && nanosecond <= nanosecondMax
}
