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

// Package compact_time encodes and decodes dates, times, and timestamps in
// a compact binary format that packs variable-width fields across byte
// boundaries, stores years as a zig-zagged reverse-VLQ tail, and picks the
// narrowest subsecond representation that preserves the input exactly.
//
// The wire format stores what it's given: no calendar validation beyond
// field-range checks, no leap-second arithmetic beyond permitting second=60,
// and no interpretation of a stored timezone label against a zone database.
// Encode and Decode functions follow a three-way return protocol instead of
// the usual (n int, err error) pair, because callers need to distinguish
// "buffer too short" (and at what offset) from "value out of range":
//
//   - A positive result is the number of bytes written or consumed.
//   - A zero or negative result that isn't OutOfRange means the buffer ran
//     out; the negated value is the offset at which that happened.
//   - OutOfRange means the value being encoded or decoded doesn't fit its
//     declared width or length, independent of buffer size.
package compact_time

// Version is this codec's semantic version, mirroring the ct_version()
// entry point of the C library this format was ported from.
const Version = "1.0.0"
