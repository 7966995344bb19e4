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

// Package bitfield packs and unpacks fixed-width unsigned fields into a
// little-endian byte sequence, the way compact-time's wire format does it:
// an accumulator built up field by field, then spilled to bytes low end
// first.
package bitfield

// Mask returns a mask covering the low width bits. width must be in [0, 64].
func Mask(width int) uint64 {
	if width <= 0 {
		return 0
	}
	if width >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(width) - 1
}

// ByteCount returns ceil(bits/8), the number of bytes needed to hold a
// bitfield of the given total width.
func ByteCount(bits int) int {
	return (bits + 7) / 8
}

// Assembler builds an accumulator by repeated appends. Fields must be
// appended from most significant to least significant; the field appended
// last ends up at the low (first-decoded) end of the accumulator.
type Assembler struct {
	accumulator uint64
}

// Put shifts the accumulator left by width bits and ORs in value (masked to
// width bits).
func (a *Assembler) Put(value uint64, width int) *Assembler {
	a.accumulator = (a.accumulator << uint(width)) | (value & Mask(width))
	return a
}

// Accumulator returns the current accumulator value.
func (a *Assembler) Accumulator() uint64 {
	return a.accumulator
}

// WriteLE writes the low byteCount bytes of the accumulator into dst in
// little-endian order. dst must have at least byteCount bytes of room.
func (a *Assembler) WriteLE(dst []byte, byteCount int) int {
	v := a.accumulator
	for i := 0; i < byteCount; i++ {
		dst[i] = byte(v)
		v >>= 8
	}
	return byteCount
}

// Disassembler peels fields off the low end of an accumulator loaded from a
// little-endian byte sequence, in the reverse order they were assembled.
type Disassembler struct {
	accumulator uint64
}

// ReadLE loads byteCount little-endian bytes from src into a fresh
// Disassembler. src must have at least byteCount bytes available.
func ReadLE(src []byte, byteCount int) *Disassembler {
	var acc uint64
	for i := byteCount - 1; i >= 0; i-- {
		acc = (acc << 8) | uint64(src[i])
	}
	return &Disassembler{accumulator: acc}
}

// Take masks off the low width bits of the accumulator and shifts them out.
func (d *Disassembler) Take(width int) uint64 {
	v := d.accumulator & Mask(width)
	d.accumulator >>= uint(width)
	return v
}

// Remaining returns whatever is left in the accumulator after all expected
// fields have been taken (the caller's reserved/overflow bits).
func (d *Disassembler) Remaining() uint64 {
	return d.accumulator
}
