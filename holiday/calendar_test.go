package holiday_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/statutory-engine/holiday"
	"github.com/warp/statutory-engine/statutory"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestForYear_NationalOnly(t *testing.T) {
	cal := holiday.Default()

	entries, err := cal.ForYear(2025, "central")
	require.NoError(t, err)

	require.Len(t, entries, 24)
	assert.Equal(t, "New Year's Day", entries[0].Name)
	assert.Equal(t, holiday.Gazetted, entries[0].Category)
	assert.Equal(t, "Makar Sankranti", entries[1].Name)
	assert.Equal(t, holiday.Restricted, entries[1].Category)
	assert.Equal(t, "Christmas Day", entries[len(entries)-1].Name)

	for _, e := range entries {
		assert.NotEqual(t, holiday.State, e.Category, "no regional holidays outside assam")
	}
}

func TestForYear_SortedByDate(t *testing.T) {
	cal := holiday.Default()

	for _, state := range []string{"central", "Assam"} {
		entries, err := cal.ForYear(2025, state)
		require.NoError(t, err)
		for i := 1; i < len(entries); i++ {
			assert.False(t, entries[i].Date.Before(entries[i-1].Date),
				"%s: %s before %s", state, entries[i].Name, entries[i-1].Name)
		}
	}
}

func TestForYear_AssamAddsRegionalHolidays(t *testing.T) {
	// GIVEN: The Assam regional table
	// WHEN: Listing Assam holidays
	// THEN: National and regional entries are merged by date; on a shared
	//       date the national entry comes first
	cal := holiday.Default()

	entries, err := cal.ForYear(2025, "ASSAM")
	require.NoError(t, err)
	require.Len(t, entries, 37)

	assert.Equal(t, "Magh Bihu/Bhogali Bihu", entries[2].Name)
	assert.Equal(t, holiday.State, entries[2].Category)

	var april14 []string
	for _, e := range entries {
		if e.Date.Equal(date(2025, time.April, 14)) {
			april14 = append(april14, e.Name)
		}
	}
	assert.Equal(t, []string{"Dr. Ambedkar Jayanti", "Bohag Bihu/Rongali Bihu (Day 1)"}, april14)
}

func TestForYear_UnknownYear(t *testing.T) {
	cal := holiday.Default()

	_, err := cal.ForYear(2031, "central")
	assert.ErrorIs(t, err, holiday.ErrNoCalendar)
	assert.ErrorIs(t, err, statutory.ErrUnsupportedVariant)
}

func TestIsHoliday(t *testing.T) {
	cal := holiday.Default()

	assert.True(t, cal.IsHoliday(date(2025, time.August, 15), "central"))
	assert.False(t, cal.IsHoliday(date(2025, time.January, 15), "central"))
	assert.True(t, cal.IsHoliday(date(2025, time.January, 15), "assam"))
	assert.True(t, cal.IsHoliday(time.Date(2025, time.December, 25, 17, 30, 0, 0, time.UTC), "central"))
	assert.False(t, cal.IsHoliday(date(2031, time.January, 1), "central"))
}

func TestByMonth(t *testing.T) {
	cal := holiday.Default()

	months, err := cal.ByMonth(2025, "central")
	require.NoError(t, err)

	var names []time.Month
	total := 0
	for _, m := range months {
		names = append(names, m.Month)
		total += len(m.Holidays)
	}
	assert.Equal(t, []time.Month{
		time.January, time.February, time.March, time.April, time.May,
		time.August, time.September, time.October, time.November, time.December,
	}, names)
	assert.Equal(t, 24, total)

	jan := months[0].Holidays
	require.Len(t, jan, 3)
	assert.Equal(t, holiday.MonthHoliday{Day: 1, Weekday: time.Wednesday, Name: "New Year's Day", Category: holiday.Gazetted}, jan[0])
	assert.Equal(t, 26, jan[2].Day)
}

func TestByMonth_AssamIncludesJune(t *testing.T) {
	cal := holiday.Default()

	months, err := cal.ByMonth(2025, "assam")
	require.NoError(t, err)

	require.Len(t, months, 11)
	assert.Equal(t, time.June, months[5].Month)
	assert.Equal(t, "Ambubachi Mela (Start)", months[5].Holidays[0].Name)
}

func TestWorkingDays(t *testing.T) {
	cal := holiday.Default()

	central, err := cal.WorkingDays(2025, "central")
	require.NoError(t, err)
	assert.Equal(t, holiday.WorkingDaysSummary{
		Year: 2025, State: "central", TotalDays: 365, HolidayCount: 24, SundayCount: 52, WorkingDays: 289,
	}, central)

	assam, err := cal.WorkingDays(2025, "Assam")
	require.NoError(t, err)
	assert.Equal(t, 37, assam.HolidayCount)
	assert.Equal(t, 276, assam.WorkingDays)
	assert.Equal(t, assam.TotalDays-assam.HolidayCount-assam.SundayCount, assam.WorkingDays)

	_, err = cal.WorkingDays(2024, "central")
	assert.ErrorIs(t, err, holiday.ErrNoCalendar)
}
