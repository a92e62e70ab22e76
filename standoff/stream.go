package standoff

import (
	"io"

	sent "github.com/revelaction/finer2standoff/sentence"
)

// StreamWriter writes the text and then the annotations of each sentence to
// a single stream, each followed by a newline.
type StreamWriter struct {
	W io.Writer
}

var _ Writer = (*StreamWriter)(nil)

func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{W: w}
}

func (s *StreamWriter) Write(index int, text string, textbounds []sent.Textbound) error {
	_, err := io.WriteString(s.W, text+"\n"+Format(textbounds)+"\n")
	return err
}
