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

// TimezoneType discriminates the three timezone variants: implicit
// UTC/zero, an opaque textual label, and a coarse lat/long pair.
type TimezoneType uint8

const (
	// TimezoneZero is the "UTC / no zone data present" sentinel. It is
	// signaled entirely by a flag bit in the host (Time or Timestamp)
	// encoding and occupies zero trailing bytes.
	TimezoneZero TimezoneType = iota
	// TimezoneString carries an opaque label (conventionally an IANA
	// area/location, but the wire codec never interprets it).
	TimezoneString
	// TimezoneLatLong carries a coarse latitude/longitude pair in
	// hundredths of a degree.
	TimezoneLatLong
)

// MaxTimezoneLabelLength is the largest Label the string variant can carry.
const MaxTimezoneLabelLength = 40

const (
	sizeLatitude     = 14
	sizeLongitude    = 15
	byteCountLatLong = 4
	maskLatLong      = 1
	shiftLabelLength = 1
)

// latitudeMin/latitudeMax and longitudeMin/longitudeMax are the signed
// ranges sizeLatitude and sizeLongitude bits can hold in two's complement:
// [-2^(n-1), 2^(n-1)-1]. A value outside these bounds would silently wrap
// around the field width on encode rather than round-trip, so Timezone and
// Time.Validate both reject anything wider than the wire format can carry.
const (
	latitudeMin  = -(1 << (sizeLatitude - 1))
	latitudeMax  = 1<<(sizeLatitude-1) - 1
	longitudeMin = -(1 << (sizeLongitude - 1))
	longitudeMax = 1<<(sizeLongitude-1) - 1
)

// Timezone is a tagged union of the three variants the wire format can
// carry. The zero value is TimezoneZero (UTC).
type Timezone struct {
	Type                TimezoneType
	Label               string
	LatitudeHundredths  int
	LongitudeHundredths int
}

// UTC returns the implicit zero timezone.
func UTC() Timezone {
	return Timezone{Type: TimezoneZero}
}

// AreaLocation returns a string-variant timezone carrying an opaque label.
// The label is never validated or interpreted by the wire codec; see
// Time.Validate for an opt-in IANA check.
func AreaLocation(label string) Timezone {
	return Timezone{Type: TimezoneString, Label: label}
}

// NewLatLong returns a lat/long-variant timezone. Values are in hundredths
// of a degree.
func NewLatLong(latitudeHundredths, longitudeHundredths int) Timezone {
	return Timezone{
		Type:                TimezoneLatLong,
		LatitudeHundredths:  latitudeHundredths,
		LongitudeHundredths: longitudeHundredths,
	}
}

func (tz Timezone) encodedSize() int {
	switch tz.Type {
	case TimezoneZero:
		return 0
	case TimezoneString:
		return 1 + len(tz.Label)
	case TimezoneLatLong:
		return byteCountLatLong
	default:
		return 0
	}
}

// encode writes tz to dst and returns a local (buffer-relative) result
// following the package's return protocol. Callers combine this with
// whatever base offset they've already written.
func (tz Timezone) encode(dst []byte) int {
	switch tz.Type {
	case TimezoneZero:
		return 0
	case TimezoneString:
		if len(tz.Label) > MaxTimezoneLabelLength {
			return OutOfRange
		}
		n := 1 + len(tz.Label)
		if n > len(dst) {
			return -n
		}
		dst[0] = byte(len(tz.Label) << shiftLabelLength)
		copy(dst[1:], tz.Label)
		return n
	case TimezoneLatLong:
		if tz.LatitudeHundredths < latitudeMin || tz.LatitudeHundredths > latitudeMax {
			return OutOfRange
		}
		if tz.LongitudeHundredths < longitudeMin || tz.LongitudeHundredths > longitudeMax {
			return OutOfRange
		}
		if byteCountLatLong > len(dst) {
			return -byteCountLatLong
		}
		word := uint32(tz.LongitudeHundredths)&uint32(bitMask(sizeLongitude))<<sizeLatitude |
			uint32(tz.LatitudeHundredths)&uint32(bitMask(sizeLatitude))
		word = word<<1 | maskLatLong
		encode32LE(word, dst)
		return byteCountLatLong
	default:
		return OutOfRange
	}
}

// decodeTimezone reads a trailing timezone from src. It is the single
// variant-returning decoder that unifies what the original library kept as
// two separate helpers (one copying into a fixed buffer, one returning a
// borrowed view) — in Go there's no meaningful distinction, so this always
// returns an owned Timezone value.
func decodeTimezone(src []byte) (tz Timezone, bytesRead int) {
	if len(src) < 1 {
		return Timezone{}, -1
	}

	if src[0]&maskLatLong != 0 {
		if byteCountLatLong > len(src) {
			return Timezone{}, -byteCountLatLong
		}
		word := decode32LE(src) >> 1
		lat := signExtend(word&uint32(bitMask(sizeLatitude)), sizeLatitude)
		word >>= sizeLatitude
		lon := signExtend(word&uint32(bitMask(sizeLongitude)), sizeLongitude)
		if lat < latitudeMin || lat > latitudeMax || lon < longitudeMin || lon > longitudeMax {
			return Timezone{}, OutOfRange
		}
		return Timezone{Type: TimezoneLatLong, LatitudeHundredths: lat, LongitudeHundredths: lon}, byteCountLatLong
	}

	length := int(src[0] >> shiftLabelLength)
	if length > MaxTimezoneLabelLength {
		return Timezone{}, OutOfRange
	}
	n := length + 1
	if n > len(src) {
		return Timezone{}, -n
	}
	return Timezone{Type: TimezoneString, Label: string(src[1:n])}, n
}

func signExtend(value uint32, bits int) int {
	shift := uint(32 - bits)
	return int(int32(value<<shift) >> shift)
}
