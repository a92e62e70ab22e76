// Package finer reads token tagged files in the finer-data format: one
// token per line as form<TAB>tag1<TAB>tag2, sentences separated by blank
// lines.
package finer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	sent "github.com/revelaction/finer2standoff/sentence"
)

const numFields = 3

// MaxLineSize is the longest accepted input line in bytes.
const MaxLineSize = 1024 * 1024

// section markers carry no tags and never belong to a sentence
var markers = map[string]bool{
	"<HEADLINE>": true,
	"<INGRESS>":  true,
	"<BODY>":     true,
}

// ReadFile reads all sentences of the file at path.
func ReadFile(path string) ([]sent.Sentence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, path)
}

// Read reads all sentences from r. name identifies the input in errors.
func Read(r io.Reader, name string) ([]sent.Sentence, error) {
	var sentences []sent.Sentence
	var current sent.Sentence

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	ln := 0
	for scanner.Scan() {
		ln++
		line := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)

		if markers[line] {
			continue
		}

		if line == "" {
			// extra empty lines
			if len(current) == 0 {
				continue
			}
			sentences = append(sentences, current)
			current = nil
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != numFields {
			return nil, &sent.FormatError{
				Path: name,
				Line: ln,
				Msg:  fmt.Sprintf("expected %d TAB-separated fields, got %d", numFields, len(fields)),
			}
		}

		current = append(current, sent.Token{Form: fields[0], Tag1: fields[1], Tag2: fields[2]})
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &sent.FormatError{
				Path: name,
				Line: ln + 1,
				Msg:  fmt.Sprintf("line longer than %d bytes", MaxLineSize),
			}
		}
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	// no trailing blank line
	if len(current) > 0 {
		sentences = append(sentences, current)
	}

	return sentences, nil
}
