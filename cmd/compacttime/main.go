// Command compacttime encodes and decodes compact-time values from the
// command line, mostly as a debugging aid for inspecting the wire bytes of
// a Date, Time, or Timestamp.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	gotime "time"

	compact_time "github.com/opencodec/compact-time"
)

var (
	decodeFlag = flag.Bool("d", false, "Decode a hex-encoded value instead of encoding one")
	nowFlag    = flag.Bool("now", false, "Encode the current UTC time as a timestamp")
)

func main() {
	flag.Parse()
	args := flag.Args()

	if *nowFlag {
		printEncoded(compact_time.AsCompactTime(gotime.Now().UTC()))
		return
	}

	if *decodeFlag {
		if len(args) != 1 {
			usage("Usage: compacttime -d <hex bytes>")
		}
		decode(args[0])
		return
	}

	if len(args) != 1 {
		usage("Usage: compacttime <RFC3339 timestamp>")
	}
	encode(args[0])
}

func usage(message string) {
	fmt.Println(message)
	os.Exit(1)
}

func encode(arg string) {
	parsed, err := gotime.Parse(gotime.RFC3339Nano, arg)
	if err != nil {
		fmt.Println("parsing time:", err)
		os.Exit(1)
	}
	printEncoded(compact_time.AsCompactTime(parsed))
}

func printEncoded(t compact_time.Time) {
	dst := make([]byte, compact_time.MaxEncodedLength)
	result := compact_time.EncodeTimestamp(t, dst)
	if !compact_time.IsSuccess(result) {
		printResultError(result)
		os.Exit(1)
	}
	fmt.Println(t.String())
	fmt.Println(hex.EncodeToString(dst[:result]))
}

func decode(arg string) {
	raw, err := hex.DecodeString(strings.TrimSpace(arg))
	if err != nil {
		fmt.Println("decoding hex:", err)
		os.Exit(1)
	}

	t, result := compact_time.DecodeTimestamp(raw)
	if !compact_time.IsSuccess(result) {
		printResultError(result)
		os.Exit(1)
	}
	fmt.Println(t.String())
}

func printResultError(result int) {
	if compact_time.IsOutOfRange(result) {
		fmt.Println("value out of range")
		return
	}
	fmt.Println("buffer too short at offset " + strconv.Itoa(compact_time.ShortBufferOffset(result)))
}
