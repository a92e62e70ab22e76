package bio

import (
	"fmt"
)

// Kind is the position of a token relative to a span.
type Kind int

const (
	Outside Kind = iota
	Begin
	Inside
)

func (k Kind) String() string {
	switch k {
	case Begin:
		return "B"
	case Inside:
		return "I"
	default:
		return "O"
	}
}

// the type label follows a fixed two character prefix, as in B-PER
const prefixLen = 2

// Tag is a parsed BIO tag. Type is empty for Outside.
type Tag struct {
	Kind Kind
	Type string
}

// ParseTag parses O, B<sep><type> or I<sep><type>.
func ParseTag(s string) (Tag, error) {
	if s == "O" {
		return Tag{Kind: Outside}, nil
	}

	if len(s) > prefixLen {
		switch s[0] {
		case 'B':
			return Tag{Kind: Begin, Type: s[prefixLen:]}, nil
		case 'I':
			return Tag{Kind: Inside, Type: s[prefixLen:]}, nil
		}
	}

	return Tag{}, fmt.Errorf("unexpected tag %s", s)
}
