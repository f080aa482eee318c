package orderlog

import (
	"fmt"
	"strconv"
	"strings"

	"overcooked-analytics/analytics-svc/internal/domain"
)

// LogYear is the year packed into every date key. The log carries no year, so all
// keys share it and stay comparable with each other.
const LogYear = 2025

// MinDateLength is the shortest accepted date ("Jun 1").
const MinDateLength = 5

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var monthTokens = map[string]int{
	"jan": 1, "ene": 1,
	"feb": 2,
	"mar": 3,
	"apr": 4, "abr": 4,
	"may": 5,
	"jun": 6,
	"jul": 7,
	"aug": 8, "ago": 8,
	"sep": 9,
	"oct": 10,
	"nov": 11,
	"dec": 12, "dic": 12,
}

// Clock is a parsed month/day/time stamp without a year.
type Clock struct {
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Key packs the stamp as YYYYMMDDhhmmss.
func (c Clock) Key() int64 {
	return int64(LogYear)*10_000_000_000 +
		int64(c.Month)*100_000_000 +
		int64(c.Day)*1_000_000 +
		int64(c.Hour)*10_000 +
		int64(c.Minute)*100 +
		int64(c.Second)
}

// Format renders the stamp the way it appears in the log, with a zero-padded time.
func (c Clock) Format() string {
	return fmt.Sprintf("%s %d %02d:%02d:%02d", monthNames[c.Month-1], c.Day, c.Hour, c.Minute, c.Second)
}

// MonthNumber maps an English or Spanish three-letter abbreviation to 1..12.
// Only the first three letters are looked at and case is ignored.
func MonthNumber(token string) (int, error) {
	if len(token) < 3 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidMonth, token)
	}
	month, ok := monthTokens[strings.ToLower(token[:3])]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidMonth, token)
	}
	return month, nil
}

// ParseClock reads "<Mon> <Day>[ <H>:<MM>[:<SS>]]". A missing time becomes the first
// second of the day, or the last one when endOfDay is set.
func ParseClock(s string, endOfDay bool) (Clock, error) {
	s = strings.TrimSpace(s)
	if len(s) < MinDateLength {
		return Clock{}, fmt.Errorf("%w: %q is too short", domain.ErrInvalidDate, s)
	}

	fields := strings.Fields(s)
	if len(fields) < 2 || len(fields) > 3 {
		return Clock{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
	}

	month, err := MonthNumber(fields[0])
	if err != nil {
		return Clock{}, err
	}

	day, err := strconv.Atoi(fields[1])
	if err != nil || day < 1 || day > 31 {
		return Clock{}, fmt.Errorf("%w: bad day in %q", domain.ErrInvalidDate, s)
	}

	c := Clock{Month: month, Day: day}
	if len(fields) == 2 {
		if endOfDay {
			c.Hour, c.Minute, c.Second = 23, 59, 59
		}
		return c, nil
	}

	if err := parseTime(fields[2], &c); err != nil {
		return Clock{}, fmt.Errorf("%w: bad time in %q", domain.ErrInvalidDate, s)
	}
	return c, nil
}

// ParseDateKey is ParseClock followed by Key.
func ParseDateKey(s string, endOfDay bool) (int64, error) {
	c, err := ParseClock(s, endOfDay)
	if err != nil {
		return 0, err
	}
	return c.Key(), nil
}

func parseTime(s string, c *Clock) error {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("want H:MM:SS, got %q", s)
	}

	limits := []int{23, 59, 59}
	values := []*int{&c.Hour, &c.Minute, &c.Second}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > limits[i] {
			return fmt.Errorf("component %q out of range", part)
		}
		*values[i] = n
	}
	return nil
}
