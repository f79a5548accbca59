package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"unicode/utf8"

	"github.com/hyp3rd/ewrap"
	"github.com/urfave/cli/v3"

	"github.com/sartorproj/treering/internal/log"
	"github.com/sartorproj/treering/internal/sentinel"
	"github.com/sartorproj/treering/render"
	"github.com/sartorproj/treering/report"
	"github.com/sartorproj/treering/stats"
	"github.com/sartorproj/treering/timeseries"
)

const usageMessage = "Please enter a file name for the program\nusage: treering [flags] <file.csv>"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type rendererFactory func(title string, width, height int) render.Renderer

func run(ctx context.Context, args []string, stdout, stderr io.Writer, newRenderer rendererFactory) int {
	err := newCommand(stdout, stderr, newRenderer).Run(ctx, args)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, sentinel.ErrUsage):
		// A bare ErrUsage means the Action already printed the usage message.
		if err != sentinel.ErrUsage {
			fmt.Fprintln(stdout, err)
			fmt.Fprintln(stdout, usageMessage)
		}
		return exitUsage
	default:
		fmt.Fprintln(stderr, "treering:", err)
		return exitError
	}
}

func newCommand(stdout, stderr io.Writer, newRenderer rendererFactory) *cli.Command {
	return &cli.Command{
		Name:            "treering",
		Usage:           "Summarize and plot a tree-ring width table",
		ArgsUsage:       "<file.csv>",
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "year-column",
				Usage: "name of the column holding the year",
				Value: "Year",
			},
			&cli.StringFlag{
				Name:  "delimiter",
				Usage: `field delimiter, a single character or "tab"`,
				Value: ",",
			},
			&cli.FloatFlag{
				Name:  "missing-marker",
				Usage: "recorded value that marks a missing ring",
				Value: 0,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "report format: text or json",
				Value: "text",
			},
			&cli.BoolFlag{
				Name:  "series-stats",
				Usage: "also report descriptive statistics per series",
			},
			&cli.BoolFlag{
				Name:  "no-plot",
				Usage: "skip the plot window",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level written to stderr: debug, info, warn or error",
				Value: "warn",
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "plot window width in pixels",
				Value: 900,
			},
			&cli.IntFlag{
				Name:  "height",
				Usage: "plot window height in pixels",
				Value: 700,
			},
		},
		OnUsageError: func(ctx context.Context, c *cli.Command, err error, isSubcommand bool) error {
			return ewrap.Wrap(sentinel.ErrUsage, err.Error())
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				fmt.Fprintln(stdout, usageMessage)
				return sentinel.ErrUsage
			}
			return analyze(ctx, c, c.Args().First(), stdout, stderr, newRenderer)
		},
	}
}

func analyze(ctx context.Context, c *cli.Command, path string, stdout, stderr io.Writer, newRenderer rendererFactory) error {
	level, err := log.ParseLevel(c.String("log-level"))
	if err != nil {
		return ewrap.Wrap(sentinel.ErrUsage, err.Error())
	}
	ctx = log.Set(ctx, log.New(stderr, level))
	lg := log.Get(ctx)

	delim, err := parseDelimiter(c.String("delimiter"))
	if err != nil {
		return err
	}
	format := c.String("format")
	if format != "text" && format != "json" {
		return ewrap.Wrapf(sentinel.ErrUsage, "unknown format %q", format)
	}

	opts := timeseries.DefaultCSVOptions()
	opts.YearColumn = c.String("year-column")
	opts.Delimiter = delim
	policy := stats.Policy{MissingMarker: c.Float("missing-marker")}

	table, err := timeseries.LoadCSV(ctx, path, opts)
	if err != nil {
		lg.Debug().Err(err).Str("file", path).Msg("load failed")
		return err
	}

	summary := stats.Summarize(ctx, table, policy)
	var series []stats.SeriesStats
	if c.Bool("series-stats") {
		series = stats.Describe(table, policy)
	}

	if format == "json" {
		err = report.WriteJSON(stdout, report.Report{Summary: summary, Series: series})
	} else {
		err = writeText(stdout, table, summary, series)
	}
	if err != nil {
		return ewrap.Wrap(err, "write report")
	}

	if c.Bool("no-plot") {
		return nil
	}
	return newRenderer(filepath.Base(path), c.Int("width"), c.Int("height")).Render(ctx, table)
}

func writeText(w io.Writer, table *timeseries.Table, summary stats.SummaryStats, series []stats.SeriesStats) error {
	if err := report.WriteHead(w, table); err != nil {
		return err
	}
	if err := report.WriteText(w, summary); err != nil {
		return err
	}
	if series == nil {
		return nil
	}
	return report.WriteSeriesStats(w, series)
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, ewrap.Wrapf(sentinel.ErrUsage, "delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
