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

// OutOfRange is returned by an Encode/Decode/EncodedSize operation in place
// of a byte count when the value being encoded or decoded doesn't fit its
// declared width or length: an out-of-range field, a timezone label longer
// than MaxTimezoneLabelLength, or a year whose VLQ tail would overflow 32
// bits. It is never a legitimate byte count (MaxEncodedLength is far
// smaller), so callers can test for it directly.
//
// The EncodedSize operations check the date and time-of-day fields only: for
// a timezone label or lat/long pair that doesn't fit they return a byte
// count, and only Encode reports OutOfRange for it.
const OutOfRange = -0x7fffffff

// IsOutOfRange reports whether a codec result is the OutOfRange sentinel.
func IsOutOfRange(result int) bool {
	return result == OutOfRange
}

// IsShortBuffer reports whether a codec result indicates the destination
// or source buffer ran out of room (as opposed to success or OutOfRange).
// When true, ShortBufferOffset(result) gives the offset at which that
// happened.
func IsShortBuffer(result int) bool {
	return result <= 0 && result != OutOfRange
}

// ShortBufferOffset returns the buffer offset at which a short-buffer
// result ran out of room. Only meaningful when IsShortBuffer(result).
func ShortBufferOffset(result int) int {
	return -result
}

// IsSuccess reports whether a codec result represents a byte count.
func IsSuccess(result int) bool {
	return result > 0
}

// MaxEncodedLength is the largest number of bytes any single Encode call in
// this package can produce: a timestamp at nanosecond magnitude with a
// maximally long timezone label and a year whose VLQ tail is as long as a
// 32-bit value can make it.
const MaxEncodedLength = 8 + 5 + 1 + MaxTimezoneLabelLength
