package holiday

// WorkingDaysSummary is an approximate count of working days in a year.
type WorkingDaysSummary struct {
	Year         int
	State        string
	TotalDays    int
	HolidayCount int
	SundayCount  int
	WorkingDays  int
}

// WorkingDays derives TotalDays - HolidayCount - SundayCount.
//
// This is an approximation: Sundays are taken as 52, or 53 when year%4 == 0,
// rather than counted from the calendar. A holiday falling on a Sunday or
// sharing a date with another holiday is still subtracted once per entry.
// TODO: replace with an exact weekday count once product confirms the
// intended semantics; 2023 and 2034 have 53 Sundays but are not leap years.
func (c *Calendar) WorkingDays(year int, state string) (WorkingDaysSummary, error) {
	entries, err := c.ForYear(year, state)
	if err != nil {
		return WorkingDaysSummary{}, err
	}
	s := summarize(year, len(entries))
	s.State = state
	return s, nil
}

func summarize(year, holidays int) WorkingDaysSummary {
	total, sundays := 365, 52
	if year%4 == 0 {
		total, sundays = 366, 53
	}
	return WorkingDaysSummary{
		Year:         year,
		TotalDays:    total,
		HolidayCount: holidays,
		SundayCount:  sundays,
		WorkingDays:  total - holidays - sundays,
	}
}
