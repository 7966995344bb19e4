package compact_time

import (
	"bytes"
	"testing"

	"github.com/kstenerud/go-describe"
)

func assertTimestampEncodeDecode(t *testing.T, year, month, day, hour, minute, second, nanosecond int, tz Timezone, expected []byte) {
	t.Helper()
	dst := make([]byte, len(expected))
	written := EncodeTimestampFields(year, month, day, hour, minute, second, nanosecond, tz, dst)
	if written != len(expected) {
		t.Errorf("%04d-%02d-%02d/%02d:%02d:%02d.%09d: encode returned %v, want %v",
			year, month, day, hour, minute, second, nanosecond, written, len(expected))
		return
	}
	if !bytes.Equal(dst, expected) {
		t.Errorf("%04d-%02d-%02d/%02d:%02d:%02d.%09d: encoded %v, want %v",
			year, month, day, hour, minute, second, nanosecond, describe.D(dst), describe.D(expected))
	}

	gotYear, gotMonth, gotDay, gotHour, gotMinute, gotSecond, gotNanosecond, gotTz, read := DecodeTimestampFields(expected)
	if read != len(expected) {
		t.Errorf("%04d-%02d-%02d/%02d:%02d:%02d.%09d: decode returned %v, want %v",
			year, month, day, hour, minute, second, nanosecond, read, len(expected))
		return
	}
	if gotYear != year || gotMonth != month || gotDay != day || gotHour != hour || gotMinute != minute ||
		gotSecond != second || gotNanosecond != nanosecond || gotTz != tz {
		t.Errorf("%04d-%02d-%02d/%02d:%02d:%02d.%09d tz=%+v: decoded %04d-%02d-%02d/%02d:%02d:%02d.%09d tz=%+v",
			year, month, day, hour, minute, second, nanosecond, tz,
			gotYear, gotMonth, gotDay, gotHour, gotMinute, gotSecond, gotNanosecond, gotTz)
	}
}

func TestTimestampEncodeDecodeKnownVectors(t *testing.T) {
	assertTimestampEncodeDecode(t, 2000, 1, 1, 0, 0, 0, 0, UTC(), []byte{0x00, 0x00, 0x08, 0x01, 0x01})
}

func TestTimestampEncodeDecodeRoundTrip(t *testing.T) {
	tzs := []Timezone{UTC(), AreaLocation("Asia/Singapore"), NewLatLong(124, 10382)}
	years := []int{2000, 1999, 1, -1, 3190, 9999, -9999}
	nanoseconds := []int{0, 500000000, 500000, 500, 394129000}

	for _, tz := range tzs {
		for _, year := range years {
			for _, ns := range nanoseconds {
				size := EncodedSizeTimestampFields(year, 8, 31, 10, 15, 30, ns, tz)
				dst := make([]byte, size)
				written := EncodeTimestampFields(year, 8, 31, 10, 15, 30, ns, tz, dst)
				if written != size {
					t.Fatalf("year %v tz %+v ns %v: encode returned %v, EncodedSize said %v", year, tz, ns, written, size)
				}
				gotYear, gotMonth, gotDay, gotHour, gotMinute, gotSecond, gotNanosecond, gotTz, read := DecodeTimestampFields(dst)
				if read != size || gotYear != year || gotMonth != 8 || gotDay != 31 || gotHour != 10 ||
					gotMinute != 15 || gotSecond != 30 || gotNanosecond != ns || gotTz != tz {
					t.Errorf("year %v tz %+v ns %v: round trip gave %v-%v-%v tz=%+v (read %v, want %v)",
						year, tz, ns, gotYear, gotMonth, gotDay, gotTz, read, size)
				}
			}
		}
	}
}

func TestTimestampEncodeBufferTooShort(t *testing.T) {
	tz := AreaLocation("Asia/Singapore")
	full := EncodedSizeTimestampFields(3190, 8, 31, 0, 54, 47, 394129000, tz)
	for k := 0; k < full; k++ {
		dst := make([]byte, k)
		result := EncodeTimestampFields(3190, 8, 31, 0, 54, 47, 394129000, tz, dst)
		if !IsShortBuffer(result) {
			t.Fatalf("buffer of %v bytes (need %v): expected short-buffer result, got %v", k, full, result)
		}
	}
}

func TestTimestampEncodeInvalidDay(t *testing.T) {
	dst := make([]byte, MaxEncodedLength)
	if result := EncodeTimestampFields(2000, 2, 32, 0, 0, 0, 0, UTC(), dst); !IsOutOfRange(result) {
		t.Errorf("day 32: expected OutOfRange, got %v", result)
	}
}

func TestNewTimestampValidate(t *testing.T) {
	ts := NewTimestamp(2000, 1, 1, 12, 0, 0, 0, UTC())
	if err := ts.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	bad := NewTimestamp(2000, 1, 1, 25, 0, 0, 0, UTC())
	if err := bad.Validate(); err == nil {
		t.Errorf("expected an error for hour 25")
	}
}

func TestNewTimestampLatLongMatchesNewLatLong(t *testing.T) {
	viaLatLong := NewTimestampLatLong(2000, 1, 1, 12, 0, 0, 0, 3730, -12210)
	viaTimezone := NewTimestamp(2000, 1, 1, 12, 0, 0, 0, NewLatLong(3730, -12210))
	if viaLatLong != viaTimezone {
		t.Errorf("NewTimestampLatLong = %+v, want %+v", viaLatLong, viaTimezone)
	}
}

func TestEncodeTimestampLatLongFieldsMatchesEncodeTimestampFields(t *testing.T) {
	tz := NewLatLong(3730, -12210)
	want := make([]byte, EncodedSizeTimestampFields(2000, 1, 1, 12, 0, 0, 0, tz))
	if written := EncodeTimestampFields(2000, 1, 1, 12, 0, 0, 0, tz, want); written != len(want) {
		t.Fatalf("EncodeTimestampFields returned %v, want %v", written, len(want))
	}

	got := make([]byte, len(want))
	written := EncodeTimestampLatLongFields(2000, 1, 1, 12, 0, 0, 0, 3730, -12210, got)
	if written != len(want) {
		t.Fatalf("EncodeTimestampLatLongFields returned %v, want %v", written, len(want))
	}
	if !bytes.Equal(got, want) {
		t.Errorf("EncodeTimestampLatLongFields encoded %v, want %v", describe.D(got), describe.D(want))
	}
}
