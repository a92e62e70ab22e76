package sentence

import "strings"

// Token represents a word of the sentence with its two tag columns.
type Token struct {
	// The unmodified word
	Form string `json:"form"`

	Tag1 string `json:"tag1"`
	Tag2 string `json:"tag2"`
}

// Sentence is an ordered sequence of tokens. Order defines the character
// offsets of the joined text.
type Sentence []Token

// Words returns the forms of the tokens.
func (s Sentence) Words() []string {
	words := make([]string, len(s))
	for i, t := range s {
		words[i] = t.Form
	}
	return words
}

// Tags1 returns the first tag column.
func (s Sentence) Tags1() []string {
	tags := make([]string, len(s))
	for i, t := range s {
		tags[i] = t.Tag1
	}
	return tags
}

// Tags2 returns the second tag column.
func (s Sentence) Tags2() []string {
	tags := make([]string, len(s))
	for i, t := range s {
		tags[i] = t.Tag2
	}
	return tags
}

// Text returns the words joined by single spaces.
func (s Sentence) Text() string {
	return strings.Join(s.Words(), " ")
}

// Textbound is a typed span of the sentence text. Start and End are
// character (not byte) offsets, End is exclusive.
type Textbound struct {
	Type  string `json:"type"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}
