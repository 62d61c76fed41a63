package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		input string
		want  TimeOfDay
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"08:30", 510},
		{"19:00", 1140},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestParseTimeOfDayRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{
		"", "8", "08", "08:", ":30", "08:30:00", "24:00", "12:60",
		"-1:00", "08:-5", "ab:cd", "08.30", "8 o'clock",
	} {
		_, err := ParseTimeOfDay(input)
		require.Error(t, err, input)
		var ife *InvalidTimeFormatError
		assert.ErrorAs(t, err, &ife, input)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "08:05", "12:30", "23:59"} {
		parsed, err := ParseTimeOfDay(s)
		require.NoError(t, err)
		assert.Equal(t, s, parsed.Format())
	}
}

func TestParseTimeOfDayAcceptsUnpaddedHour(t *testing.T) {
	// "8:00" parses fine but formats back padded; labels stay canonical.
	parsed, err := ParseTimeOfDay("8:00")
	require.NoError(t, err)
	assert.Equal(t, "08:00", parsed.Format())
}

func TestAddAndCompare(t *testing.T) {
	start, _ := ParseTimeOfDay("08:00")
	end := start.Add(30)
	assert.Equal(t, "08:30", end.Format())
	assert.Equal(t, -1, start.Compare(end))
	assert.Equal(t, 1, end.Compare(start))
	assert.Equal(t, 0, start.Compare(start))
}

func TestSlotLabel(t *testing.T) {
	slot := Slot{Start: 480, End: 510}
	assert.Equal(t, "08:00 - 08:30", slot.Label())

	parsed, err := ParseSlotLabel("08:00 - 08:30")
	require.NoError(t, err)
	assert.Equal(t, slot, parsed)

	_, err = ParseSlotLabel("08:00-08:30")
	assert.Error(t, err)
}

func TestResolveDateKeys(t *testing.T) {
	// 2026-09-07 is a Monday.
	keys, err := ResolveDateKeys("2026-09-07")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-07", "monday"}, keys)

	_, err = ResolveDateKeys("07/09/2026")
	assert.Error(t, err)
}
