package yearcodec

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	years := []int{2000, 1999, 2001, 0, -1, 1, 3000, 1000, 2500, -9999, 9999}
	for _, year := range years {
		encoded := Encode(year)
		decoded := Decode(encoded)
		if decoded != year {
			t.Errorf("year %v: round trip gave %v", year, decoded)
		}
	}
}

func TestEncodeKnownValues(t *testing.T) {
	// year == Bias zig-zags to 0; Bias-1 (negative offset) zig-zags to 1;
	// Bias+1 (positive offset) zig-zags to 2.
	if got := Encode(2000); got != 0 {
		t.Errorf("Encode(2000) = %v, want 0", got)
	}
	if got := Encode(1999); got != 1 {
		t.Errorf("Encode(1999) = %v, want 1", got)
	}
	if got := Encode(2001); got != 2 {
		t.Errorf("Encode(2001) = %v, want 2", got)
	}
}

func TestGroupCountMinimumOne(t *testing.T) {
	if got := GroupCount(0, 7); got != 1 {
		t.Errorf("GroupCount(0, 7) = %v, want 1 (a terminator group is always emitted)", got)
	}
}

func TestGroupCountGrowsWithMagnitude(t *testing.T) {
	small := GroupCount(1, 7)
	large := GroupCount(20000, 7)
	if small != 1 {
		t.Errorf("GroupCount(1, 7) = %v, want 1", small)
	}
	if large <= small {
		t.Errorf("GroupCount(20000, 7) = %v, expected more groups than GroupCount(1, 7) = %v", large, small)
	}
}

func TestTailEncodeDecodeRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 127, 128, 16383, 16384, 1000000}
	for _, v := range values {
		dst := make([]byte, 8)
		written, ok := EncodeTail(v, dst)
		if !ok {
			t.Fatalf("EncodeTail(%v): not ok", v)
		}
		decoded, read, ok := DecodeTail(dst[:written])
		if !ok {
			t.Fatalf("DecodeTail(%v): not ok", v)
		}
		if read != written {
			t.Errorf("value %v: wrote %v bytes but read %v back", v, written, read)
		}
		if decoded != v {
			t.Errorf("value %v: round trip gave %v", v, decoded)
		}
	}
}

func TestGroupBitCountMatchesGroupCount(t *testing.T) {
	if got := GroupBitCount(1, 7); got != 1*BitsPerGroup {
		t.Errorf("GroupBitCount(1, 7) = %v, want %v", got, BitsPerGroup)
	}
}
