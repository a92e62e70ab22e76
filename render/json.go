package render

import (
	"encoding/json"
	"io"

	sent "github.com/revelaction/finer2standoff/sentence"
	"github.com/revelaction/finer2standoff/standoff"
)

const (
	FormatStandoff = "standoff"
	FormatJSON     = "json"
)

// SupportedFormats returns the accepted values of the format flag.
func SupportedFormats() []string {
	return []string{FormatStandoff, FormatJSON}
}

// Sentence is the JSON form of a converted sentence.
type Sentence struct {
	Index      int              `json:"index"`
	Text       string           `json:"text"`
	Textbounds []sent.Textbound `json:"textbounds"`
}

// JSONRenderer writes one JSON object per sentence and line.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

func (r *JSONRenderer) Write(index int, text string, textbounds []sent.Textbound) error {
	if textbounds == nil {
		textbounds = []sent.Textbound{}
	}
	return json.NewEncoder(r.W).Encode(Sentence{Index: index, Text: text, Textbounds: textbounds})
}

// compile-time interface check
var _ standoff.Writer = (*JSONRenderer)(nil)
