package id3codec

import (
	"fmt"
	"strconv"
	"strings"
)

// Timestamp is the partial-precision timestamp used by ID3v2.4 time
// frames (TDRC and friends): yyyy[-MM[-dd[THH[:mm[:ss]]]]]. Every field
// after the year is optional; absent fields are -1.
type Timestamp struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// ParseTimestamp parses a timestamp at any of its legal precisions.
func ParseTimestamp(s string) (Timestamp, error) {
	t := Timestamp{Month: -1, Day: -1, Hour: -1, Minute: -1, Second: -1}

	datePart, timePart, hasTime := strings.Cut(s, "T")

	dateFields := strings.Split(datePart, "-")
	if len(dateFields) > 3 {
		return Timestamp{}, fmt.Errorf("malformed timestamp %q", s)
	}
	targets := []*int{&t.Year, &t.Month, &t.Day}
	for i, field := range dateFields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return Timestamp{}, fmt.Errorf("malformed timestamp %q: %w", s, err)
		}
		*targets[i] = v
	}

	if hasTime {
		if t.Day < 0 {
			return Timestamp{}, fmt.Errorf("malformed timestamp %q: time without full date", s)
		}
		timeFields := strings.Split(timePart, ":")
		if len(timeFields) > 3 {
			return Timestamp{}, fmt.Errorf("malformed timestamp %q", s)
		}
		targets = []*int{&t.Hour, &t.Minute, &t.Second}
		for i, field := range timeFields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return Timestamp{}, fmt.Errorf("malformed timestamp %q: %w", s, err)
			}
			*targets[i] = v
		}
	}

	return t, nil
}

// String formats the timestamp at its own precision.
func (t Timestamp) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04d", t.Year)
	if t.Month < 0 {
		return b.String()
	}
	fmt.Fprintf(&b, "-%02d", t.Month)
	if t.Day < 0 {
		return b.String()
	}
	fmt.Fprintf(&b, "-%02d", t.Day)
	if t.Hour < 0 {
		return b.String()
	}
	fmt.Fprintf(&b, "T%02d", t.Hour)
	if t.Minute < 0 {
		return b.String()
	}
	fmt.Fprintf(&b, ":%02d", t.Minute)
	if t.Second < 0 {
		return b.String()
	}
	fmt.Fprintf(&b, ":%02d", t.Second)
	return b.String()
}
