package sentence

import "fmt"

// FormatError reports input that does not have the expected shape: wrong
// field count, unexpected tag, or a span changing type.
type FormatError struct {
	Path string
	Line int

	// Text of the sentence being decoded, if any
	Sentence string

	Msg string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s on line %d in %s", e.Msg, e.Line, e.Path)
	}
	return e.Msg
}
