package compact_time

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRoundTripProperty exercises the general round-trip law across a grid
// of dates, times, subsecond magnitudes, and timezone variants: decode must
// always reproduce exactly what was encoded, and EncodedSize must always
// predict the bytes Encode actually writes.
func TestRoundTripProperty(t *testing.T) {
	tzs := []Timezone{UTC(), AreaLocation("America/New_York"), NewLatLong(-3382, 15113)}
	years := []int{1, 1900, 2000, 2024, 2100, -500}
	nanoseconds := []int{0, 100000000, 250000, 999999999}

	for _, tz := range tzs {
		for _, year := range years {
			for _, ns := range nanoseconds {
				want := NewTimestamp(year, 4, 17, 9, 30, 15, ns, tz)

				size := EncodedSizeTimestamp(want)
				require.Greater(t, size, 0)

				dst := make([]byte, size)
				written := EncodeTimestamp(want, dst)
				require.Equal(t, size, written)

				got, read := DecodeTimestamp(dst)
				require.Equal(t, size, read)
				require.Equal(t, want, got)
			}
		}
	}
}

func TestRoundTripPropertyDate(t *testing.T) {
	for _, year := range []int{1, 1900, 2000, 2024, 2100, -500} {
		want := NewDate(year, 6, 15)
		size := EncodedSizeDate(want)
		dst := make([]byte, size)
		written := EncodeDate(want, dst)
		require.Equal(t, size, written)

		got, read := DecodeDate(dst)
		require.Equal(t, size, read)
		require.Equal(t, want, got)
	}
}

func TestMagnitudeMinimality(t *testing.T) {
	// A value exactly representable at a coarser magnitude must not be
	// encoded using a finer (wider) one.
	want := NewTime(10, 0, 0, 500000000, UTC())
	size := EncodedSizeTime(want)
	finerSize := EncodedSizeTimeFields(10, 0, 0, 500000001, UTC())
	require.Less(t, size, finerSize, "a millisecond-exact value should encode smaller than a nanosecond-exact one")
}
