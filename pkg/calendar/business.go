package calendar

import (
	"github.com/msto63/unitcal/foundation/utils/timex"
)

// BusinessDaysBetween counts the business days from a to b, both included.
// The count is negative when b is before a. A nil config means Monday to
// Friday without holidays.
func BusinessDaysBetween(a, b Date, config *timex.BusinessDayConfig) (int, error) {
	const op = "calendar.BusinessDaysBetween"

	if !a.IsValid() || !b.IsValid() {
		return 0, invalidDate(op, "invalid date range %s..%s", a, b)
	}

	start, end := a.epochDays(), b.epochDays()
	sign := 1
	if start > end {
		start, end = end, start
		sign = -1
	}

	count := 0
	for day := start; day <= end; day++ {
		y, m, d := civilFromDays(day)
		if timex.IsBusinessDay(Date{year: y, month: m, day: d}.Time(), config) {
			count++
		}
	}
	return sign * count, nil
}

// WithHolidays returns a Monday to Friday configuration with the given
// holidays
func WithHolidays(holidays ...Date) *timex.BusinessDayConfig {
	cfg := timex.DefaultBusinessDayConfig()
	for _, h := range holidays {
		cfg.Holidays = append(cfg.Holidays, h.Time())
	}
	return cfg
}
