package review

import (
	"strings"
	"unicode/utf8"
)

const (
	MinRating     = 1
	MaxRating     = 5
	MaxTextLength = 1000
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < MinRating {
		return Rating{}, ErrRatingTooLow
	}
	if v > MaxRating {
		return Rating{}, ErrRatingTooHigh
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

// Text is optional; blank input is stored as NULL.
type Text struct {
	text *string
}

func NewText(s *string) (Text, error) {
	if s == nil {
		return Text{}, nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return Text{}, nil
	}
	if utf8.RuneCountInString(t) > MaxTextLength {
		return Text{}, ErrTextTooLong
	}
	return Text{text: &t}, nil
}

func (t Text) Ptr() *string { return t.text }

func (t Text) String() string {
	if t.text == nil {
		return ""
	}
	return *t.text
}
