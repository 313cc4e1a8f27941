package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var weekIDPattern = regexp.MustCompile(`^(\d{4})-W(\d{1,2})$`)

// Calendar computes week identifiers relative to a fixed timezone.
type Calendar struct {
	location *time.Location
	now      func() time.Time
}

// NewCalendar creates a Calendar for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewCalendar(timezone string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc, now: time.Now}, nil
}

// WithClock returns a copy of the calendar that reads the current time from now.
func (c *Calendar) WithClock(now func() time.Time) *Calendar {
	return &Calendar{location: c.location, now: now}
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// CurrentWeekID returns the ISO week identifier of "now" in the calendar's timezone.
func (c *Calendar) CurrentWeekID() string {
	return WeekID(c.startOfDay(c.now()))
}

// Today returns midnight of the current day in the calendar's timezone.
func (c *Calendar) Today() time.Time {
	return c.startOfDay(c.now())
}

// startOfDay returns midnight at the start of the given day in the calendar's timezone.
func (c *Calendar) startOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// WeekID formats t as "<iso-year>-W<iso-week>" without zero padding.
func WeekID(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%d", year, week)
}

// FormatWeekID turns "2025-W1" into "Week 1, 2025".
// Input that does not split into exactly two parts on "-W" is returned unchanged.
func FormatWeekID(weekID string) string {
	parts := strings.Split(weekID, "-W")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 2 {
		return "Week " + parts[1] + ", " + parts[0]
	}
	return weekID
}

// ParseWeekID parses a canonical week identifier and checks that the week exists in that ISO year.
func ParseWeekID(weekID string) (year, week int, err error) {
	m := weekIDPattern.FindStringSubmatch(weekID)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidWeekID, weekID)
	}

	year, _ = strconv.Atoi(m[1])
	week, _ = strconv.Atoi(m[2])
	if week < 1 || week > WeeksInYear(year) {
		return 0, 0, fmt.Errorf("%w: %q has no week %d", ErrInvalidWeekID, weekID, week)
	}
	return year, week, nil
}

// WeeksInYear returns 52 or 53, the number of ISO weeks in year.
func WeeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// WeekStart returns the Monday (UTC midnight) that opens the given ISO week.
func WeekStart(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7 // days since Monday
	firstMonday := jan4.AddDate(0, 0, -offset)
	return firstMonday.AddDate(0, 0, (week-1)*7)
}

// ShiftWeekID returns the identifier delta weeks away from weekID.
func ShiftWeekID(weekID string, delta int) (string, error) {
	year, week, err := ParseWeekID(weekID)
	if err != nil {
		return "", err
	}
	return WeekID(WeekStart(year, week).AddDate(0, 0, 7*delta)), nil
}

// FormatLongDate turns "2025-01-06" into "Monday, January 6, 2025".
// Anything that is not a real calendar date in YYYY-MM-DD form is returned unchanged.
func FormatLongDate(date string) string {
	parts := strings.Split(date, "-")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) != 3 {
		return date
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return date
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return date
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return date
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return date
	}

	return fmt.Sprintf("%s, %s %d, %d", t.Weekday(), t.Month(), day, year)
}
