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
	"strings"
	gotime "time"
)

// TimeType discriminates which of the three entities a Time value holds.
type TimeType uint8

const (
	TypeDate TimeType = iota
	TypeTime
	TypeTimestamp
)

const (
	monthMin      = 1
	monthMax      = 12
	dayMin        = 1
	hourMin       = 0
	hourMax       = 23
	minuteMin     = 0
	minuteMax     = 59
	secondMin     = 0
	secondMax     = 60
	nanosecondMin = 0
	nanosecondMax = 999999999
)

// dayMax[month] is the maximum day-of-month: 31 for every month, since this
// package does no cross-field calendar checks (February 30th is accepted).
var dayMax = [...]int{0, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31}

// Time is a value type holding a Date, a Time-of-day, or a Timestamp,
// selected by TimeIs. No cross-field calendar validation is performed by
// the wire codec or by Validate: February 30th round-trips just fine.
type Time struct {
	Year       int
	Month      int
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
	TimeIs     TimeType
	Timezone   Timezone
}

// NewDate creates a date-only Time. Year must be non-zero.
func NewDate(year, month, day int) Time {
	var t Time
	t.InitDate(year, month, day)
	return t
}

// InitDate turns t into a date-only Time, discarding any time-of-day or
// timezone fields it held.
func (t *Time) InitDate(year, month, day int) {
	*t = Time{TimeIs: TypeDate, Year: year, Month: month, Day: day}
}

// NewTime creates a time-of-day Time with the given timezone. An empty
// Timezone{} (the zero value) means UTC.
func NewTime(hour, minute, second, nanosecond int, tz Timezone) Time {
	var t Time
	t.InitTime(hour, minute, second, nanosecond, tz)
	return t
}

// InitTime turns t into a time-of-day Time with the given timezone,
// discarding any date fields it held.
func (t *Time) InitTime(hour, minute, second, nanosecond int, tz Timezone) {
	*t = Time{TimeIs: TypeTime, Hour: hour, Minute: minute, Second: second,
		Nanosecond: nanosecond, Timezone: tz}
}

// NewTimeLatLong creates a time-of-day Time carrying a lat/long timezone
// directly, without requiring the caller to build a Timezone via NewLatLong
// first.
func NewTimeLatLong(hour, minute, second, nanosecond, latitudeHundredths, longitudeHundredths int) Time {
	var t Time
	t.InitTimeLatLong(hour, minute, second, nanosecond, latitudeHundredths, longitudeHundredths)
	return t
}

// InitTimeLatLong is the lat/long-timezone counterpart to InitTime.
func (t *Time) InitTimeLatLong(hour, minute, second, nanosecond, latitudeHundredths, longitudeHundredths int) {
	t.InitTime(hour, minute, second, nanosecond, NewLatLong(latitudeHundredths, longitudeHundredths))
}

// NewTimestamp creates a date+time Time with the given timezone.
func NewTimestamp(year, month, day, hour, minute, second, nanosecond int, tz Timezone) Time {
	var t Time
	t.InitTimestamp(year, month, day, hour, minute, second, nanosecond, tz)
	return t
}

// InitTimestamp turns t into a date+time Time with the given timezone.
func (t *Time) InitTimestamp(year, month, day, hour, minute, second, nanosecond int, tz Timezone) {
	t.InitTime(hour, minute, second, nanosecond, tz)
	t.Year, t.Month, t.Day = year, month, day
	t.TimeIs = TypeTimestamp
}

// NewTimestampLatLong is the lat/long-timezone counterpart to NewTimestamp.
func NewTimestampLatLong(year, month, day, hour, minute, second, nanosecond, latitudeHundredths, longitudeHundredths int) Time {
	var t Time
	t.InitTimestampLatLong(year, month, day, hour, minute, second, nanosecond, latitudeHundredths, longitudeHundredths)
	return t
}

// InitTimestampLatLong is the lat/long-timezone counterpart to InitTimestamp.
func (t *Time) InitTimestampLatLong(year, month, day, hour, minute, second, nanosecond, latitudeHundredths, longitudeHundredths int) {
	t.InitTimeLatLong(hour, minute, second, nanosecond, latitudeHundredths, longitudeHundredths)
	t.Year, t.Month, t.Day = year, month, day
	t.TimeIs = TypeTimestamp
}

func (t Time) validateDate() error {
	if t.Year == 0 {
		return fmt.Errorf("year 0 is forbidden")
	}
	if t.Month < monthMin || t.Month > monthMax {
		return fmt.Errorf("%v: invalid month (must be %v to %v)", t.Month, monthMin, monthMax)
	}
	if t.Day < dayMin || t.Day > dayMax[t.Month] {
		return fmt.Errorf("%v: invalid day (must be %v to %v)", t.Day, dayMin, dayMax[t.Month])
	}
	return nil
}

func (t Time) validateTime() error {
	if t.Hour < hourMin || t.Hour > hourMax {
		return fmt.Errorf("%v: invalid hour (must be %v to %v)", t.Hour, hourMin, hourMax)
	}
	if t.Minute < minuteMin || t.Minute > minuteMax {
		return fmt.Errorf("%v: invalid minute (must be %v to %v)", t.Minute, minuteMin, minuteMax)
	}
	if t.Second < secondMin || t.Second > secondMax {
		return fmt.Errorf("%v: invalid second (must be %v to %v)", t.Second, secondMin, secondMax)
	}
	if t.Nanosecond < nanosecondMin || t.Nanosecond > nanosecondMax {
		return fmt.Errorf("%v: invalid nanosecond (must be %v to %v)", t.Nanosecond, nanosecondMin, nanosecondMax)
	}
	return nil
}

func (t Time) validateTimezone() error {
	switch t.Timezone.Type {
	case TimezoneZero:
		return nil
	case TimezoneString:
		if len(t.Timezone.Label) > MaxTimezoneLabelLength {
			return fmt.Errorf("%v: timezone label too long (max %v)", len(t.Timezone.Label), MaxTimezoneLabelLength)
		}
		if t.Timezone.Label == "" || t.Timezone.Label == "Local" {
			return nil
		}
		// Best-effort only: the wire codec never does this lookup itself,
		// but a caller asking Validate to vouch for a decoded label gets
		// the same courtesy the teacher library extended.
		_, err := gotime.LoadLocation(t.Timezone.Label)
		return err
	case TimezoneLatLong:
		if t.Timezone.LatitudeHundredths < latitudeMin || t.Timezone.LatitudeHundredths > latitudeMax {
			return fmt.Errorf("%v: invalid latitude (must be %v to %v)", t.Timezone.LatitudeHundredths, latitudeMin, latitudeMax)
		}
		if t.Timezone.LongitudeHundredths < longitudeMin || t.Timezone.LongitudeHundredths > longitudeMax {
			return fmt.Errorf("%v: invalid longitude (must be %v to %v)", t.Timezone.LongitudeHundredths, longitudeMin, longitudeMax)
		}
		return nil
	default:
		return fmt.Errorf("%v: unknown timezone type", t.Timezone.Type)
	}
}

// Validate performs basic field-range validation, enough to reject
// blatantly wrong values (month 13, latitude 9001, and so on). It does not
// check whether February 29th is valid for the given year, whether a leap
// second is actually due, or whether an hour/location combination could
// ever occur in practice. For a string timezone it will attempt to resolve
// the label via time.LoadLocation unless the label is empty or "Local" —
// Encode and Decode never do this lookup.
func (t Time) Validate() error {
	switch t.TimeIs {
	case TypeDate:
		return t.validateDate()
	case TypeTime:
		if err := t.validateTime(); err != nil {
			return err
		}
		return t.validateTimezone()
	case TypeTimestamp:
		if err := t.validateDate(); err != nil {
			return err
		}
		if err := t.validateTime(); err != nil {
			return err
		}
		return t.validateTimezone()
	default:
		return fmt.Errorf("%v: unknown time type", t.TimeIs)
	}
}

func (t Time) String() string {
	switch t.TimeIs {
	case TypeDate:
		return t.formatDate()
	case TypeTime:
		return t.formatTime()
	case TypeTimestamp:
		return t.formatDate() + "/" + t.formatTime()
	default:
		return fmt.Sprintf("<invalid time type %v>", t.TimeIs)
	}
}

func (t Time) formatDate() string {
	return fmt.Sprintf("%d-%02d-%02d", t.Year, t.Month, t.Day)
}

func (t Time) formatTime() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond != 0 {
		digits := []byte(fmt.Sprintf("%09d", t.Nanosecond))
		for len(digits) > 0 && digits[len(digits)-1] == '0' {
			digits = digits[:len(digits)-1]
		}
		b.WriteByte('.')
		b.Write(digits)
	}
	b.WriteString(t.formatTimezone())
	return b.String()
}

func (t Time) formatTimezone() string {
	switch t.Timezone.Type {
	case TimezoneZero:
		return ""
	case TimezoneString:
		return "/" + t.Timezone.Label
	case TimezoneLatLong:
		return fmt.Sprintf("/%.2f/%.2f", float64(t.Timezone.LatitudeHundredths)/100, float64(t.Timezone.LongitudeHundredths)/100)
	default:
		return fmt.Sprintf("/<invalid timezone type %v>", t.Timezone.Type)
	}
}
