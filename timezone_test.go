package compact_time

import "testing"

func TestTimezoneZeroEncodedSize(t *testing.T) {
	tz := UTC()
	if size := tz.encodedSize(); size != 0 {
		t.Errorf("UTC encodedSize = %v, want 0", size)
	}
}

func TestTimezoneStringRoundTrip(t *testing.T) {
	tz := AreaLocation("Europe/Berlin")
	dst := make([]byte, tz.encodedSize())
	written := tz.encode(dst)
	if written != len(dst) {
		t.Fatalf("encode returned %v, want %v", written, len(dst))
	}
	decoded, read := decodeTimezone(dst)
	if read != len(dst) || decoded != tz {
		t.Errorf("decoded %+v (read %v), want %+v (read %v)", decoded, read, tz, len(dst))
	}
}

func TestTimezoneLatLongRoundTrip(t *testing.T) {
	tz := NewLatLong(3730, -12210)
	dst := make([]byte, tz.encodedSize())
	written := tz.encode(dst)
	if written != byteCountLatLong {
		t.Fatalf("encode returned %v, want %v", written, byteCountLatLong)
	}
	decoded, read := decodeTimezone(dst)
	if read != byteCountLatLong || decoded != tz {
		t.Errorf("decoded %+v (read %v), want %+v", decoded, read, tz)
	}
}

func TestTimezoneLatLongNegativeExtremes(t *testing.T) {
	tz := NewLatLong(latitudeMin, longitudeMin)
	dst := make([]byte, tz.encodedSize())
	tz.encode(dst)
	decoded, _ := decodeTimezone(dst)
	if decoded != tz {
		t.Errorf("decoded %+v, want %+v", decoded, tz)
	}
}

func TestTimezoneLatLongOutOfRange(t *testing.T) {
	tz := NewLatLong(latitudeMax+1, 0)
	dst := make([]byte, byteCountLatLong)
	if result := tz.encode(dst); !IsOutOfRange(result) {
		t.Errorf("latitude out of range: expected OutOfRange, got %v", result)
	}
}

// TestTimezoneLatLongRejectsFieldOverflow guards against a stale bound: an
// earlier Go port of this library used 15/16-bit lat/long fields, where
// +-9000/+-18000 fit. This wire format's fields are 14/15 bits
// (sizeLatitude/sizeLongitude), which can't hold +-9000/+-18000 without
// wrapping around on encode, so both must be rejected rather than silently
// corrupted.
func TestTimezoneLatLongRejectsFieldOverflow(t *testing.T) {
	dst := make([]byte, byteCountLatLong)
	if result := NewLatLong(-9000, 0).encode(dst); !IsOutOfRange(result) {
		t.Errorf("latitude -9000 overflows a 14-bit field: expected OutOfRange, got %v", result)
	}
	if result := NewLatLong(0, -18000).encode(dst); !IsOutOfRange(result) {
		t.Errorf("longitude -18000 overflows a 15-bit field: expected OutOfRange, got %v", result)
	}
}

func TestTimezoneStringTooLong(t *testing.T) {
	tz := AreaLocation(string(make([]byte, MaxTimezoneLabelLength+1)))
	dst := make([]byte, tz.encodedSize())
	if result := tz.encode(dst); !IsOutOfRange(result) {
		t.Errorf("label too long: expected OutOfRange, got %v", result)
	}
}

func TestSignExtend(t *testing.T) {
	// A 14-bit field holding the two's-complement pattern for -1 must
	// sign-extend to -1, not to a large positive number.
	allOnes := uint32(1)<<14 - 1
	if got := signExtend(allOnes, 14); got != -1 {
		t.Errorf("signExtend(all-ones, 14) = %v, want -1", got)
	}
}
