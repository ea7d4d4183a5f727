package market

import "time"

// Generated history covers [SeriesStart, SeriesEnd). Weekends hold no data;
// holidays are not modeled, so every weekday in the window has a point.
var (
	SeriesStart = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	SeriesEnd   = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Day truncates t to midnight UTC so dates compare with Equal.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsTradingDay reports whether d falls on a weekday.
func IsTradingDay(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// NextTradingDay returns the first weekday strictly after d.
func NextTradingDay(d time.Time) time.Time {
	d = Day(d).AddDate(0, 0, 1)
	for !IsTradingDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// PrevTradingDay returns the first weekday strictly before d.
func PrevTradingDay(d time.Time) time.Time {
	d = Day(d).AddDate(0, 0, -1)
	for !IsTradingDay(d) {
		d = d.AddDate(0, 0, -1)
	}
	return d
}
