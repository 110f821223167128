package mailsql

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownArgument = errors.New("unknown argument")
	ErrInvalidDate     = errors.New("invalid date")
)

// ArgumentError reports a named argument the transformer cannot express.
type ArgumentError struct {
	Name  string
	Value string
	Err   error
}

func (e *ArgumentError) Error() string {
	if errors.Is(e.Err, ErrUnknownArgument) {
		return fmt.Sprintf("Unknown argument: %s", e.Name)
	}
	return fmt.Sprintf("%s: %s: %v", e.Name, e.Value, e.Err)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// dateLayouts are tried in order for absolute dates.
var dateLayouts = []string{
	time.DateOnly,
	"2006/01/02",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// ParseDate interprets value as a calendar day. The relative words today,
// tomorrow and yesterday are resolved against now; everything else must
// match one of the accepted layouts, e.g. 2024-01-01 or "Mar 5 2025".
// Month names and relative words are case-insensitive.
func ParseDate(value string, now time.Time) (time.Time, error) {
	v := strings.TrimSpace(value)

	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	switch strings.ToLower(v) {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, v, now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w %q", ErrInvalidDate, value)
}
