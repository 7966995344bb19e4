package compact_time

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBufferShortLaw checks the protocol invariant that for every value x
// and every destination shorter than EncodedSize(x), Encode returns a
// non-positive, non-OutOfRange result whose negation is an offset no
// larger than EncodedSize(x).
func TestBufferShortLaw(t *testing.T) {
	cases := []struct {
		name string
		full int
		enc  func(dst []byte) int
	}{
		{"date", EncodedSizeDateFields(2024, 3, 1), func(dst []byte) int {
			return EncodeDateFields(2024, 3, 1, dst)
		}},
		{"time-utc", EncodedSizeTimeFields(8, 41, 5, 999999999, UTC()), func(dst []byte) int {
			return EncodeTimeFields(8, 41, 5, 999999999, UTC(), dst)
		}},
		{"time-latlong", EncodedSizeTimeFields(8, 41, 5, 0, NewLatLong(100, -200)), func(dst []byte) int {
			return EncodeTimeFields(8, 41, 5, 0, NewLatLong(100, -200), dst)
		}},
		{"timestamp-string-tz", EncodedSizeTimestampFields(2024, 3, 1, 8, 41, 5, 123000000, AreaLocation("Asia/Tokyo")), func(dst []byte) int {
			return EncodeTimestampFields(2024, 3, 1, 8, 41, 5, 123000000, AreaLocation("Asia/Tokyo"), dst)
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for k := 0; k < c.full; k++ {
				dst := make([]byte, k)
				result := c.enc(dst)
				require.Truef(t, IsShortBuffer(result), "k=%v: expected short-buffer result, got %v", k, result)
				require.LessOrEqual(t, ShortBufferOffset(result), c.full)
			}

			dst := make([]byte, c.full)
			require.Equal(t, c.full, c.enc(dst))
		})
	}
}
