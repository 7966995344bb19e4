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

// Package yearcodec applies compact-time's year transform: a fixed bias,
// zig-zag signed-to-unsigned mapping, and a split between bits packed
// inline with other fields and bits spilled to a reverse-VLQ tail.
package yearcodec

import (
	"github.com/kstenerud/go-vlq"
)

// Bias is subtracted from the year before zig-zag mapping so that years
// near the present encode as small unsigned values.
const Bias = 2000

// BitsPerGroup is the group size used by the reverse-VLQ year tail.
const BitsPerGroup = 7

func zigzagEncode(value int32) uint32 {
	return uint32((value >> 31) ^ (value << 1))
}

func zigzagDecode(value uint32) int32 {
	return int32((value >> 1) ^ -(value & 1))
}

// Encode maps a year to its zig-zagged, biased unsigned form.
func Encode(year int) uint32 {
	return zigzagEncode(int32(year) - Bias)
}

// Decode reverses Encode.
func Decode(encodedYear uint32) int {
	return int(zigzagDecode(encodedYear)) + Bias
}

// GroupCount returns how many 7-bit reverse-VLQ groups are needed to carry
// the bits of encodedYear above uncountedBits (the inline upper-bit count).
// At least one group is always emitted so the stream has a deterministic
// terminator even when the value above uncountedBits is zero.
func GroupCount(encodedYear uint32, uncountedBits int) int {
	year := encodedYear >> uint(uncountedBits)
	if year == 0 {
		return 1
	}

	size := 0
	for year != 0 {
		size++
		year >>= BitsPerGroup
	}
	return size
}

// GroupBitCount is GroupCount(encodedYear, uncountedBits) * BitsPerGroup:
// the number of low-order bits of encodedYear that the reverse-VLQ tail
// actually carries. The inline field holds what's left after shifting that
// many bits off the bottom, which is why it's sized dynamically rather than
// fixed at uncountedBits — a year whose upper portion doesn't fit in
// uncountedBits bits pushes the split point up by whole 7-bit groups.
func GroupBitCount(encodedYear uint32, uncountedBits int) int {
	return GroupCount(encodedYear, uncountedBits) * BitsPerGroup
}

// EncodeTail writes the reverse-VLQ encoding of the low bits of an encoded
// year (its low GroupBitCount bits, below the inline upper bits) to dst. Returns the
// number of bytes written and whether dst had enough room.
func EncodeTail(lowBits uint32, dst []byte) (bytesWritten int, ok bool) {
	return vlq.Rvlq(lowBits).EncodeTo(dst)
}

// DecodeTail reads a reverse-VLQ year tail from src, returning the decoded
// low bits, the number of bytes consumed, and whether the stream terminated
// within src.
func DecodeTail(src []byte) (lowBits uint32, bytesRead int, ok bool) {
	var rvlq vlq.Rvlq
	bytesRead, ok = rvlq.DecodeFrom(src)
	return uint32(rvlq), bytesRead, ok
}
