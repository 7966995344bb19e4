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

import (
	"fmt"
	gotime "time"
)

// AsCompactTime converts a standard library time.Time into a Timestamp.
// Local gets tagged as the opaque label "Local"; any other named location
// uses its zone string; a zone with no name round-trips as UTC.
func AsCompactTime(src gotime.Time) Time {
	var tz Timezone
	switch src.Location() {
	case gotime.UTC:
		tz = UTC()
	case gotime.Local:
		tz = AreaLocation("Local")
	default:
		if name := src.Location().String(); name != "" && name != "UTC" {
			tz = AreaLocation(name)
		} else {
			tz = UTC()
		}
	}
	return NewTimestamp(src.Year(), int(src.Month()), src.Day(),
		src.Hour(), src.Minute(), src.Second(), src.Nanosecond(), tz)
}

// AsGoTime converts a Timestamp or Time into a standard library time.Time.
// A LatLong timezone cannot be represented by time.Time and returns an
// error; a string timezone is resolved via time.LoadLocation (with "Local"
// and "" special-cased), which may itself fail if the label isn't a known
// zone name.
func (t Time) AsGoTime() (gotime.Time, error) {
	if t.TimeIs == TypeDate {
		return gotime.Time{}, fmt.Errorf("cannot convert a date-only value to time.Time")
	}

	location := gotime.UTC
	switch t.Timezone.Type {
	case TimezoneZero:
		location = gotime.UTC
	case TimezoneLatLong:
		return gotime.Time{}, fmt.Errorf("latitude/longitude time zones are not supported by time.Time")
	case TimezoneString:
		switch t.Timezone.Label {
		case "", "UTC":
			location = gotime.UTC
		case "Local":
			location = gotime.Local
		default:
			var err error
			location, err = gotime.LoadLocation(t.Timezone.Label)
			if err != nil {
				return gotime.Time{}, err
			}
		}
	default:
		return gotime.Time{}, fmt.Errorf("%v: unknown time zone type", t.Timezone.Type)
	}

	year, month, day := t.Year, t.Month, t.Day
	if t.TimeIs == TypeTime {
		now := gotime.Now().In(location)
		year, month, day = now.Year(), int(now.Month()), now.Day()
	}

	return gotime.Date(year, gotime.Month(month), day, t.Hour, t.Minute, t.Second, t.Nanosecond, location), nil
}
