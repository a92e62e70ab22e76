// Package standoff writes sentences and their textbounds in brat-flavored
// standoff format.
package standoff

import (
	"fmt"
	"strings"

	sent "github.com/revelaction/finer2standoff/sentence"
)

// Writer writes one converted sentence. index starts at 1.
type Writer interface {
	Write(index int, text string, textbounds []sent.Textbound) error
}

// Lines returns one annotation line per textbound. Ids are assigned in the
// given order: T1, T2, ...
func Lines(textbounds []sent.Textbound) []string {
	lines := make([]string, 0, len(textbounds))
	for i, tb := range textbounds {
		lines = append(lines, fmt.Sprintf("T%d\t%s %d %d\t%s", i+1, tb.Type, tb.Start, tb.End, tb.Text))
	}
	return lines
}

// Format returns the annotation file content, with no trailing newline.
func Format(textbounds []sent.Textbound) string {
	return strings.Join(Lines(textbounds), "\n")
}

// TextName is the text file name of the sentence index, zero padded to 5 digits.
func TextName(index int) string {
	return fmt.Sprintf("sentence%05d.txt", index)
}

// AnnName is the annotation file name matching TextName.
func AnnName(index int) string {
	return fmt.Sprintf("sentence%05d.ann", index)
}
