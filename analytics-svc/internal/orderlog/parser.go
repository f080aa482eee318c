package orderlog

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"overcooked-analytics/analytics-svc/internal/domain"
)

const (
	restaurantMarker = "R:"
	dishMarker       = "O:"
)

// ParseLine turns one log line into an order:
//
//	Jun 7 14:23:05 R:Dominos O:Pizza(120)
func ParseLine(line string) (domain.Order, error) {
	line = strings.TrimRight(line, "\r\n")

	r := strings.Index(line, restaurantMarker)
	if r < 0 {
		return domain.Order{}, fmt.Errorf("%w: missing %q", domain.ErrMalformedLine, restaurantMarker)
	}
	o := strings.Index(line[r:], dishMarker)
	if o < 0 {
		return domain.Order{}, fmt.Errorf("%w: missing %q", domain.ErrMalformedLine, dishMarker)
	}
	o += r

	open := strings.LastIndex(line, "(")
	closing := strings.LastIndex(line, ")")
	if open < o || closing < open {
		return domain.Order{}, fmt.Errorf("%w: missing price", domain.ErrMalformedLine)
	}

	stamp := strings.TrimSpace(line[:r])
	if len(strings.Fields(stamp)) != 3 {
		return domain.Order{}, fmt.Errorf("%w: timestamp %q", domain.ErrMalformedLine, stamp)
	}
	clock, err := ParseClock(stamp, false)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: %v", domain.ErrMalformedLine, err)
	}

	restaurant := strings.TrimSpace(line[r+len(restaurantMarker) : o])
	dish := strings.TrimSpace(line[o+len(dishMarker) : open])
	if restaurant == "" || dish == "" {
		return domain.Order{}, fmt.Errorf("%w: empty restaurant or dish", domain.ErrMalformedLine)
	}

	price, err := strconv.Atoi(strings.TrimSpace(line[open+1 : closing]))
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: price %q", domain.ErrMalformedLine, line[open+1:closing])
	}

	return domain.Order{
		DateText:   clock.Format(),
		Restaurant: restaurant,
		Dish:       dish,
		Price:      price,
		DateKey:    clock.Key(),
	}, nil
}

// FormatLine is the inverse of ParseLine.
func FormatLine(o domain.Order) string {
	return fmt.Sprintf("%s R:%s O:%s(%d)", o.DateText, o.Restaurant, o.Dish, o.Price)
}

// FromRecord converts a relational order row. The year of CreatedAt is dropped like
// in the text log; the price is rounded to whole units.
func FromRecord(rec domain.OrderRecord) domain.Order {
	c := ClockOf(rec.CreatedAt)
	return domain.Order{
		DateText:   c.Format(),
		Restaurant: rec.Restaurant,
		Dish:       rec.Dish,
		Price:      int(math.Round(rec.Price)),
		DateKey:    c.Key(),
	}
}

// ClockOf extracts the stamp of a time value.
func ClockOf(t time.Time) Clock {
	return Clock{Month: int(t.Month()), Day: t.Day(), Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// Scan calls fn for every non-blank line of r with its 1-based line number.
// Scanning stops at the first error returned by fn.
func Scan(r io.Reader, fn func(lineNo int, line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
