// Package timeutil formats and parses the times shown to the user.
package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

const (
	// DefaultDateFormat renders dates as day/month/year with a 24 hour clock
	DefaultDateFormat = "02/01/2006, 15:04:05"
	// DateFormat12Hr is used when the 24 hour clock is disabled
	DateFormat12Hr = "02/01/2006, 03:04:05 PM"
)

var errEmptyTime = errors.New("time string is empty")

// FormatDuration renders a duration in milliseconds as HH:MM:SS. Negative
// durations render as zero. Hours are not capped at 24.
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}

	totalSeconds := ms / 1000

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatDate renders a timestamp in milliseconds in the local time zone.
// An empty layout falls back to DefaultDateFormat.
func FormatDate(ms int64, layout string) string {
	if layout == "" {
		layout = DefaultDateFormat
	}

	return time.UnixMilli(ms).Local().Format(layout)
}

// FromStr parses an absolute or relative date such as "2 days ago" or
// "last monday". Relative dates are resolved against now.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errEmptyTime
	}

	dt, err := dps.Parse(&dps.Configuration{
		CurrentTime: now,
	}, s)
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		int(time.Second-time.Nanosecond),
		t.Location(),
	)
}
