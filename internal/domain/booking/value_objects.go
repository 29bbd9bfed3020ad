package booking

import (
	"strings"
	"time"
	"unicode/utf8"
)

// DateRange is a closed interval of calendar days.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrMissingDates
	}
	s, e := truncateDay(start), truncateDay(end)
	if !e.After(s) {
		return DateRange{}, ErrInvalidDates
	}
	return DateRange{start: s, end: e}, nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

// Nights counts days between start and end.
func (r DateRange) Nights() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Message struct {
	text *string
}

func NewMessage(s *string) (Message, error) {
	if s == nil {
		return Message{}, nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return Message{}, nil
	}
	if utf8.RuneCountInString(t) > MaxMessageLength {
		return Message{}, ErrMessageTooLong
	}
	return Message{text: &t}, nil
}

func (m Message) Ptr() *string { return m.text }
