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

// Package subsecond picks the smallest of four magnitude classes
// (none/milli/micro/nano) that can represent a nanosecond value exactly.
package subsecond

// BitsPerStep is the width contributed to the encoded wire field per unit
// of magnitude.
const BitsPerStep = 10

// Multipliers maps a magnitude (0-3) to the number of nanoseconds per
// stored unit at that magnitude.
var Multipliers = [4]int{1, 1000000, 1000, 1}

// Magnitude returns the minimum m in {0,1,2,3} such that
// nanosecond mod 10^(9-3m) == 0.
func Magnitude(nanosecond int) int {
	if nanosecond == 0 {
		return 0
	}
	if nanosecond%1000 != 0 {
		return 3
	}
	if nanosecond%1000000 != 0 {
		return 2
	}
	return 1
}

// Width returns the wire width, in bits, of the subsecond field at the
// given magnitude.
func Width(magnitude int) int {
	return BitsPerStep * magnitude
}

// Stored converts a nanosecond value to its stored representation at the
// given magnitude.
func Stored(nanosecond, magnitude int) uint64 {
	return uint64(nanosecond / Multipliers[magnitude])
}

// Nanosecond converts a stored value at the given magnitude back to
// nanoseconds.
func Nanosecond(stored uint64, magnitude int) int {
	return int(stored) * Multipliers[magnitude]
}
