package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/finer2standoff/render"
)

// Options of the convert command
type Options struct {
	File     string
	Output   string
	Format   string
	Stats    bool
	Progress bool
	LogLevel slog.Level
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:                 "finer2standoff",
		Usage:                "convert finer-data token tagged files to brat-flavored standoff",
		UsageText:            "finer2standoff [options] FILE",
		ArgsUsage:            "FILE",
		Version:              version(),
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		HideHelpCommand:      true,
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output `DIR` (default STDOUT)",
				EnvVars: []string{"FINER2STANDOFF_OUTPUT"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   render.FormatStandoff,
				Usage:   "Output format: " + strings.Join(render.SupportedFormats(), ", ") + ". json writes to STDOUT only",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "Print corpus statistics to STDERR after converting",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "Show a progress bar when writing to a directory from a terminal",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level: debug, info, warn, error",
				EnvVars: []string{"FINER2STANDOFF_LOG_LEVEL"},
			},
		},
		Action: func(c *cli.Context) error {
			opts, err := parseOptions(c)
			if err != nil {
				return err
			}
			return convertCommand(opts, ui)
		},
	}
}

func parseOptions(c *cli.Context) (Options, error) {
	var opts Options

	if c.NArg() != 1 {
		cli.HelpPrinter(c.App.ErrWriter, cli.AppHelpTemplate, c.App)
		return opts, errors.New("needs exactly one argument: FILE")
	}

	opts.File = c.Args().First()
	opts.Output = c.String("output")
	opts.Stats = c.Bool("stats")
	opts.Progress = c.Bool("progress")

	opts.Format = c.String("format")
	if !isSupported(opts.Format) {
		return opts, fmt.Errorf("allowed formats are %s", strings.Join(render.SupportedFormats(), ", "))
	}

	if opts.Format == render.FormatJSON && opts.Output != "" {
		return opts, errors.New("json format can not be written to an output directory")
	}

	level, err := parseLogLevel(c.String("log-level"))
	if err != nil {
		return opts, err
	}
	opts.LogLevel = level

	return opts, nil
}

// flagsFirst moves flags and their values in front of the positional
// arguments, so that FILE -o DIR parses like -o DIR FILE. Arguments after
// "--" stay positional.
func flagsFirst(app *cli.App, args []string) []string {
	// shell completion expects its flag last
	if len(args) == 0 || args[len(args)-1] == "--generate-bash-completion" {
		return args
	}

	takesValue := map[string]bool{}
	for _, f := range app.Flags {
		if _, ok := f.(*cli.BoolFlag); ok {
			continue
		}
		for _, name := range f.Names() {
			takesValue[name] = true
		}
	}

	flags := []string{}
	var positional []string

	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		arg := rest[i]

		if arg == "--" {
			positional = append(positional, rest[i:]...)
			break
		}

		if len(arg) < 2 || arg[0] != '-' {
			positional = append(positional, arg)
			continue
		}

		flags = append(flags, arg)

		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if takesValue[name] && i+1 < len(rest) {
			i++
			flags = append(flags, rest[i])
		}
	}

	out := append([]string{args[0]}, flags...)
	if len(positional) > 0 && positional[0] != "--" {
		out = append(out, "--")
	}
	return append(out, positional...)
}

func isSupported(format string) bool {
	for _, f := range render.SupportedFormats() {
		if f == format {
			return true
		}
	}
	return false
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
}
