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

// Field widths, in bits. These match original_source/src/library.c exactly
// (SIZE_* constants there); spec prose and its worked hex examples disagree
// with a couple of these in places the spec itself flags as imprecise, so
// the C source is what's authoritative here.
const (
	sizeUtc       = 1
	sizeMagnitude = 2
	sizeSecond    = 6
	sizeMinute    = 6
	sizeHour      = 5
	sizeDay       = 5
	sizeMonth     = 4

	sizeDateYearUpperBits = 7
)

// baseSizeTime is the fixed portion of a Time encoding before any subsecond
// bits: utc flag + magnitude + hour + minute + second.
const baseSizeTime = sizeUtc + sizeMagnitude + sizeHour + sizeMinute + sizeSecond

// baseSizeTimestamp is the fixed portion of a Timestamp encoding before
// subsecond bits and the year stream: magnitude + second + minute + hour +
// day + month.
const baseSizeTimestamp = sizeMagnitude + sizeSecond + sizeMinute + sizeHour + sizeDay + sizeMonth

// timestampYearUpperBits holds, per subsecond magnitude, how many bits of
// the (zig-zagged, UTC-flag-folded-in) year stream are packed inline with
// the rest of a Timestamp's fixed-width fields rather than spilled to the
// VLQ tail. Each entry pads the fixed-width fields plus the subsecond field
// out to a whole number of bytes: 32, 40, 48 and 64 bits for magnitudes 0-3.
var timestampYearUpperBits = [4]int{4, 2, 0, 6}

const byteCountDate = 2

func bitMask(width int) uint64 {
	if width <= 0 {
		return 0
	}
	return uint64(1)<<uint(width) - 1
}

func encode32LE(value uint32, dst []byte) {
	dst[0] = byte(value)
	dst[1] = byte(value >> 8)
	dst[2] = byte(value >> 16)
	dst[3] = byte(value >> 24)
}

func decode32LE(src []byte) uint32 {
	return uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16 | uint32(src[3])<<24
}
