package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/mattn/go-isatty"

	"github.com/revelaction/finer2standoff/bio"
	"github.com/revelaction/finer2standoff/finer"
	"github.com/revelaction/finer2standoff/render"
	"github.com/revelaction/finer2standoff/standoff"
	"github.com/revelaction/finer2standoff/stat"
)

func convertCommand(opts Options, ui UI) error {
	logger := newLogger(ui.Err, opts.LogLevel)

	sentences, err := finer.ReadFile(opts.File)
	if err != nil {
		return err
	}
	logger.Debug("read input", "file", opts.File, "sentences", len(sentences))

	w, err := newWriter(opts, ui)
	if err != nil {
		return err
	}

	var bar *uiprogress.Bar
	if opts.Progress && opts.Output != "" && isTerminal(ui.Err) {
		p := uiprogress.New()
		p.SetOut(ui.Err)
		p.Start()
		defer p.Stop()

		bar = p.AddBar(len(sentences))
		bar.AppendCompleted()
		bar.PrependElapsed()
		bar.AppendFunc(func(b *uiprogress.Bar) string {
			return standoff.TextName(b.Current())
		})
	}

	dec := bio.NewDecoder(logger)
	hdl := stat.NewHandler()

	for i, s := range sentences {
		index := i + 1

		text, textbounds, err := dec.Convert(s)
		if err != nil {
			return err
		}

		if err := w.Write(index, text, textbounds); err != nil {
			return err
		}
		logger.Debug("wrote sentence", "index", index, "textbounds", len(textbounds))

		hdl.Aggregate(s, textbounds)

		if bar != nil {
			bar.Incr()
		}
	}

	if opts.Stats {
		return hdl.Get().Fprint(ui.Err)
	}

	return nil
}

func newWriter(opts Options, ui UI) (standoff.Writer, error) {
	if opts.Output != "" {
		return standoff.NewDirWriter(opts.Output)
	}

	if opts.Format == render.FormatJSON {
		return render.NewJSONRenderer(ui.Out), nil
	}

	return standoff.NewStreamWriter(ui.Out), nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// no timestamps
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
