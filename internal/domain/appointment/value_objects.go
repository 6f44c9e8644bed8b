package appointment

import (
	"strings"
	"unicode/utf8"
)

const MaxNotesLength = 500

type Notes struct {
	value string
}

func NewNotes(s string) (Notes, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{value: s}, nil
}

func (n Notes) String() string {
	return n.value
}

func (n Notes) IsEmpty() bool {
	return n.value == ""
}

func (n Notes) Ptr() *string {
	if n.value == "" {
		return nil
	}
	v := n.value
	return &v
}
