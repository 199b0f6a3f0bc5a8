// Package temporal computes the mean inter-event gap of communication
// timestamps.
package temporal

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"autoready/internal/domain"
)

// ParseError reports a timestamp that was present but not valid ISO-8601.
// These propagate instead of being skipped: dropping one event would
// silently change which gaps get averaged.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid ISO-8601 timestamp %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// isoLayouts covers offset-aware and naive ISO-8601 forms, with and
// without fractional seconds.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseISO(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// MeanGap collects timestamps from every email and then every chat that
// carries one, in listed order, and returns the mean of the consecutive
// differences in seconds. The sequence is deliberately NOT sorted by time:
// the result is a signed, appearance-order quantity, and out-of-order
// events produce negative differences that count toward the mean. Fewer
// than two timestamps yield 0.0.
func MeanGap(comms domain.CommunicationBundle) (float64, error) {
	var stamps []time.Time
	collect := func(ev domain.CommunicationEvent) error {
		if ev.Timestamp == nil {
			return nil
		}
		t, err := parseISO(*ev.Timestamp)
		if err != nil {
			return &ParseError{Value: *ev.Timestamp, Err: err}
		}
		stamps = append(stamps, t)
		return nil
	}

	for _, ev := range comms.Emails {
		if err := collect(ev); err != nil {
			return 0, err
		}
	}
	for _, ev := range comms.Chats {
		if err := collect(ev); err != nil {
			return 0, err
		}
	}

	if len(stamps) < 2 {
		return 0.0, nil
	}
	diffs := make([]float64, 0, len(stamps)-1)
	for i := 0; i+1 < len(stamps); i++ {
		diffs = append(diffs, stamps[i+1].Sub(stamps[i]).Seconds())
	}
	return stat.Mean(diffs, nil), nil
}
