package standoff

import (
	"fmt"
	"os"
	"path/filepath"

	sent "github.com/revelaction/finer2standoff/sentence"
)

// DirWriter writes a .txt and an .ann file per sentence into a directory.
type DirWriter struct {
	root string
}

var _ Writer = (*DirWriter)(nil)

// NewDirWriter creates root if it does not exist.
func NewDirWriter(root string) (*DirWriter, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &DirWriter{root: root}, nil
}

// Paths returns the text and annotation file paths of the sentence index.
func (w *DirWriter) Paths(index int) (string, string) {
	return filepath.Join(w.root, TextName(index)), filepath.Join(w.root, AnnName(index))
}

func (w *DirWriter) Write(index int, text string, textbounds []sent.Textbound) error {
	txtPath, annPath := w.Paths(index)

	if err := os.WriteFile(txtPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", txtPath, err)
	}

	if err := os.WriteFile(annPath, []byte(Format(textbounds)), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", annPath, err)
	}

	return nil
}
