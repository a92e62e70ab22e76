// Package bio decodes BIO tag sequences into typed text spans.
package bio

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	sent "github.com/revelaction/finer2standoff/sentence"
)

// span is the decoder state: either no span is open, or a span of typ
// started at the character offset start.
type span struct {
	open  bool
	typ   string
	start int
}

// Decoder converts tag columns into textbounds.
type Decoder struct {
	Logger *slog.Logger
}

// NewDecoder returns a Decoder logging warnings to logger. A nil logger
// uses slog.Default.
func NewDecoder(logger *slog.Logger) *Decoder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Decoder{Logger: logger}
}

// Convert returns the text of the sentence and the textbounds of its first
// tag column followed by those of the second.
func (d *Decoder) Convert(s sent.Sentence) (string, []sent.Textbound, error) {
	words := s.Words()

	tb1, err := d.Textbounds(words, s.Tags1())
	if err != nil {
		return "", nil, err
	}

	tb2, err := d.Textbounds(words, s.Tags2())
	if err != nil {
		return "", nil, err
	}

	return s.Text(), append(tb1, tb2...), nil
}

// Textbounds decodes one tag per word into spans over the words joined by
// single spaces.
//
// An I tag with no open span starts a new span and is logged as a warning.
// An I tag whose type differs from the open span is a FormatError.
func (d *Decoder) Textbounds(words, tags []string) ([]sent.Textbound, error) {
	sentenceText := strings.Join(words, " ")

	if len(words) != len(tags) {
		return nil, &sent.FormatError{
			Sentence: sentenceText,
			Msg:      fmt.Sprintf("got %d tags for %d words", len(tags), len(words)),
		}
	}
	runes := []rune(sentenceText)

	var textbounds []sent.Textbound
	var cur span
	offset := 0

	// the open span ends right before the separator preceding offset
	closeSpan := func() {
		end := offset - 1
		textbounds = append(textbounds, sent.Textbound{
			Type:  cur.typ,
			Start: cur.start,
			End:   end,
			Text:  string(runes[cur.start:end]),
		})
		cur = span{}
	}

	for i, w := range words {
		tag, err := ParseTag(tags[i])
		if err != nil {
			return nil, &sent.FormatError{Sentence: sentenceText, Msg: err.Error()}
		}

		switch tag.Kind {
		case Outside:
			if cur.open {
				closeSpan()
			}
		case Begin:
			if cur.open {
				closeSpan()
			}
			cur = span{open: true, typ: tag.Type, start: offset}
		case Inside:
			if !cur.open {
				d.Logger.Warn("tag without B tag",
					"sentence", sentenceText,
					"tag", tags[i],
					"word", w)
				cur = span{open: true, typ: tag.Type, start: offset}
			}
			if tag.Type != cur.typ {
				return nil, &sent.FormatError{
					Sentence: sentenceText,
					Msg:      fmt.Sprintf("%s continues as %s", cur.typ, tag.Type),
				}
			}
		}

		offset += utf8.RuneCountInString(w) + 1
	}

	// sentence ended inside a span
	if cur.open {
		closeSpan()
	}

	return textbounds, nil
}
