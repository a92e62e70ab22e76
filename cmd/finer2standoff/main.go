package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	sent "github.com/revelaction/finer2standoff/sentence"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	// .env provides defaults for the FINER2STANDOFF_* variables
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fprintErr(ui.Err, fmt.Errorf("loading .env: %w", err))
		os.Exit(1)
	}

	os.Exit(run(os.Args, ui))
}

// run executes the command line and returns the exit code.
func run(args []string, ui UI) int {
	app := newApp(ui)
	if err := app.Run(flagsFirst(app, args)); err != nil {
		var fe *sent.FormatError
		if errors.As(err, &fe) && fe.Sentence != "" {
			_, _ = fmt.Fprintf(ui.Err, "in sentence %s\n", fe.Sentence)
		}
		fprintErr(ui.Err, err)
		return 1
	}

	return 0
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "finer2standoff: %v\n", err)
}
