package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		Name     string
		Expected string
		Input    int64
	}{
		{Name: "zero", Input: 0, Expected: "00:00:00"},
		{Name: "negative", Input: -5000, Expected: "00:00:00"},
		{Name: "sub second", Input: 999, Expected: "00:00:00"},
		{Name: "six seconds", Input: 6000, Expected: "00:00:06"},
		{Name: "minutes", Input: 61_500, Expected: "00:01:01"},
		{Name: "hours", Input: 3_723_000, Expected: "01:02:03"},
		{Name: "over a day", Input: 100 * 3_600_000, Expected: "100:00:00"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, FormatDuration(tc.Input))
		})
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local)

	assert.Equal(t, "05/03/2024, 14:07:09", FormatDate(ts.UnixMilli(), ""))
	assert.Equal(
		t,
		"05/03/2024, 02:07:09 PM",
		FormatDate(ts.UnixMilli(), DateFormat12Hr),
	)
	assert.Equal(t, "2024-03-05", FormatDate(ts.UnixMilli(), time.DateOnly))
}

func TestFromStr(t *testing.T) {
	now := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)

	got, err := FromStr("2024-02-01", now)
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.February, got.Month())
	assert.Equal(t, 1, got.Day())

	got, err = FromStr("2 days ago", now)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Day())

	_, err = FromStr("  ", now)
	require.ErrorIs(t, err, errEmptyTime)
}

func TestRoundDay(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

	assert.Equal(
		t,
		time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		RoundToStart(ts),
	)

	end := RoundToEnd(ts)
	assert.Equal(t, 5, end.Day())
	assert.True(t, end.Add(time.Nanosecond).Equal(
		time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC),
	))
}
