package analytics

import (
	"strings"
	"time"

	"liyu1981.xyz/coldtrack-monitor/pkg/models"
)

// ParseDateRange parses two YYYY-MM-DD dates and validates the range.
func ParseDateRange(start, end string) (models.DateRangeQuery, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return models.DateRangeQuery{}, ErrMissingRange
	}

	s, err := time.Parse(models.DateLayout, start)
	if err != nil {
		return models.DateRangeQuery{}, &QueryError{Kind: KindMalformedRange, Err: err}
	}
	e, err := time.Parse(models.DateLayout, end)
	if err != nil {
		return models.DateRangeQuery{}, &QueryError{Kind: KindMalformedRange, Err: err}
	}

	q := models.DateRangeQuery{Start: s, End: e}
	if err := Validate(q); err != nil {
		return models.DateRangeQuery{}, err
	}
	return q, nil
}

// Validate requires both dates and start <= end.
func Validate(q models.DateRangeQuery) error {
	if q.Start.IsZero() || q.End.IsZero() {
		return ErrMissingRange
	}
	if q.Start.After(q.End) {
		return ErrInvertedRange
	}
	return nil
}

// LastDays is the range of the n full days before now, in loc.
func LastDays(now time.Time, n int, loc *time.Location) models.DateRangeQuery {
	if loc == nil {
		loc = time.UTC
	}
	if n < 1 {
		n = 1
	}
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	return models.DateRangeQuery{
		Start: today.AddDate(0, 0, -n),
		End:   today.AddDate(0, 0, -1),
	}
}
