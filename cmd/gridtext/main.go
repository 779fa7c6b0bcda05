// Command gridtext detects the dialect of a plain text spreadsheet
// (SER, CSV, SYLK, Markdown table or DIF), parses it and
// renders the cells as fixed width text, HTML, CSV, Markdown
// or as SQLite table.
//
// Usage:
//
//	gridtext [flags] [-i input] [-o output]
//
// Without -i the document is read from stdin.
// Without -o the cells are written as text table to stdout.
// The format of the output file is defined by its extension.
package main

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ungerik/go-fs"
	_ "modernc.org/sqlite"

	"github.com/domonda/go-gridtext"
	"github.com/domonda/go-gridtext/csvtable"
	"github.com/domonda/go-gridtext/dialects"
	"github.com/domonda/go-gridtext/htmltable"
	"github.com/domonda/go-gridtext/internal/config"
	"github.com/domonda/go-gridtext/internal/logging"
	"github.com/domonda/go-gridtext/mdtable"
	"github.com/domonda/go-gridtext/sqltable"
	"github.com/domonda/go-gridtext/texttable"
)

var version = "dev"

// outputExtensions are the supported extensions of the -o file.
var outputExtensions = []string{".txt", ".html", ".htm", ".csv", ".md", ".db", ".sqlite"}

type options struct {
	input        string
	output       string
	hint         string
	width        int
	csvSeparator string
	headerRow    bool
	table        string
}

// viewWriter is implemented by all table writers of the module.
type viewWriter interface {
	WriteView(ctx context.Context, dest io.Writer, view gridtext.View) error
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.LoadDotEnv()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	logging.Setup(stderr, cfg.Logging.Level, cfg.Logging.Format)

	var opts options
	flags := flag.NewFlagSet("gridtext", flag.ContinueOnError)
	flags.SetOutput(stderr)
	showVersion := flags.Bool("version", false, "show version")
	flags.StringVar(&opts.input, "i", "", "input file, stdin if empty")
	flags.StringVar(&opts.output, "o", "", "output file with extension "+strings.Join(outputExtensions, ", ")+" (requires -i)")
	flags.StringVar(&opts.hint, "hint", "", "dialect hint like csv or .slk, defaults to the extension of the input file")
	flags.IntVar(&opts.width, "width", cfg.Render.ColumnWidth, "column width of text output")
	flags.StringVar(&opts.csvSeparator, "csv-separator", cfg.Render.CSVSeparator, `CSV field separator or "auto"`)
	flags.BoolVar(&opts.headerRow, "header", false, "write column letters as header row")
	flags.StringVar(&opts.table, "table", "", "SQLite table name, defaults to the input file name")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: gridtext [flags] [-i input] [-o output]")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *showVersion {
		fmt.Fprintln(stdout, version)
		return 0
	}
	if err := validateOptions(&opts); err != nil {
		fmt.Fprintln(stderr, err)
		flags.Usage()
		return 2
	}

	ctx := context.Background()
	if err := convert(ctx, opts, cfg.Render.Encodings, stdin, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func validateOptions(opts *options) error {
	if opts.output != "" {
		if opts.input == "" {
			return errors.New("-o requires -i")
		}
		if !slices.Contains(outputExtensions, strings.ToLower(filepath.Ext(opts.output))) {
			return fmt.Errorf("unsupported output extension %q, use one of %s", filepath.Ext(opts.output), strings.Join(outputExtensions, ", "))
		}
	}
	if opts.width < 1 {
		return fmt.Errorf("-width must be positive, got %d", opts.width)
	}
	if opts.csvSeparator != csvtable.AutoSeparator && len(opts.csvSeparator) != 1 {
		return fmt.Errorf("-csv-separator must be a single character or %q, got %q", csvtable.AutoSeparator, opts.csvSeparator)
	}
	if opts.hint == "" && opts.input != "" {
		opts.hint = filepath.Ext(opts.input)
	}
	if opts.table == "" {
		opts.table = "sheet"
		if opts.input != "" {
			opts.table = strings.TrimSuffix(filepath.Base(opts.input), filepath.Ext(opts.input))
		}
	}
	return nil
}

func convert(ctx context.Context, opts options, encodings []string, stdin io.Reader, stdout io.Writer) error {
	data, title, err := readInput(opts.input, stdin)
	if err != nil {
		return err
	}
	lines, encoding, err := gridtext.DecodeLines(data, encodings...)
	if err != nil {
		return fmt.Errorf("can't decode %s: %w", title, err)
	}
	slog.Debug("decoded input", "input", title, "encoding", encoding, "lines", len(lines))

	parsed, err := dialects.Parse(opts.hint, lines, dialects.WithCSVSeparator(opts.csvSeparator))
	if err != nil {
		return err
	}
	slog.Info(gridtext.Detection{Dialect: parsed.Dialect}.String(), "input", title, "cells", parsed.Grid.Len())
	if parsed.Skipped > 0 {
		slog.Warn("ignored unrecognized records", "dialect", parsed.Dialect, "skipped", parsed.Skipped)
	}

	evaluator := gridtext.NewRawEvaluator(nil)
	gridtext.Load(evaluator, parsed.Grid)
	view := gridtext.NewGridView(title, parsed.Grid, evaluator)

	if opts.output == "" {
		return newTextWriter(opts).WriteView(ctx, stdout, view)
	}
	return writeOutput(ctx, opts, view)
}

func readInput(input string, stdin io.Reader) (data []byte, title string, err error) {
	if input == "" {
		data, err = io.ReadAll(stdin)
		return data, "stdin", err
	}
	file, err := localFile(input)
	if err != nil {
		return nil, "", err
	}
	data, err = file.ReadAll()
	if err != nil {
		return nil, "", fmt.Errorf("can't read %s: %w", input, err)
	}
	return data, file.Name(), nil
}

func writeOutput(ctx context.Context, opts options, view gridtext.View) error {
	ext := strings.ToLower(filepath.Ext(opts.output))
	if ext == ".db" || ext == ".sqlite" {
		return writeSQLite(ctx, opts.output, opts.table, view)
	}

	var writer viewWriter
	switch ext {
	case ".html", ".htm":
		writer = htmltable.NewWriter().WithHeaderRow(opts.headerRow)
	case ".csv":
		writer = csvtable.NewWriter().WithHeaderRow(opts.headerRow)
	case ".md":
		writer = mdtable.NewWriter()
	default:
		writer = newTextWriter(opts)
	}
	var buf bytes.Buffer
	if err := writer.WriteView(ctx, &buf, view); err != nil {
		return err
	}
	file, err := localFile(opts.output)
	if err != nil {
		return err
	}
	if err := file.WriteAll(buf.Bytes()); err != nil {
		return fmt.Errorf("can't write %s: %w", opts.output, err)
	}
	slog.Info("wrote output", "output", opts.output, "bytes", buf.Len())
	return nil
}

func writeSQLite(ctx context.Context, filename, table string, view gridtext.View) error {
	db, err := sql.Open("sqlite", filename)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("can't open %s: %w", filename, err)
	}
	if err := sqltable.WriteView(ctx, db, table, view); err != nil {
		return err
	}
	slog.Info("wrote table", "output", filename, "table", table, "rows", view.NumRows())
	return nil
}

func newTextWriter(opts options) *texttable.Writer {
	return texttable.NewWriter().
		WithColumnWidth(opts.width).
		WithHeaderRow(opts.headerRow)
}

func localFile(path string) (fs.File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return fs.File(abs), nil
}
