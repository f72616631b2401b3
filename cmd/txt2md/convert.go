// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/txt2md/internal/archive"
	"github.com/pdiddy/txt2md/internal/convert"
	"github.com/pdiddy/txt2md/internal/history"
	"github.com/pdiddy/txt2md/internal/synth"
)

var convertCmd = &cobra.Command{
	Use:   "convert [paths...]",
	Short: "Convert text, Word, and HTML files to Markdown",
	Long: `Convert turns each file into a Markdown document. Directories are scanned
one level deep for .txt, .text, .docx, .doc, .html, and .htm files.

Plain text always goes through the line heuristics and HTML through the
HTML converter. The --backend flag chooses how Word documents are handled:
heuristic extracts raw text, rich keeps headings, lists, and emphasis, and
markitdown pipes the file through the markitdown container (docker or podman).

Output goes to --out-dir, or into a single zip with --archive. Existing
output is skipped unless --force is given. A failing file is reported and the
remaining files are still converted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.String("backend", "heuristic", "backend for Word documents: heuristic, rich, or markitdown")
	f.String("out-dir", "markdown", "directory Markdown files are written to")
	f.Bool("force", false, "overwrite existing Markdown output")
	f.String("archive", "", "write all output into this zip file instead of out-dir")
	f.Lookup("archive").NoOptDefVal = archive.DefaultName
	f.Bool("stdout", false, "print the Markdown of a single document to stdout")
	f.Bool("no-history", false, "do not record conversions in the history database")

	_ = viper.BindPFlag("backend", f.Lookup("backend"))
	_ = viper.BindPFlag("out_dir", f.Lookup("out-dir"))
	_ = viper.BindPFlag("force", f.Lookup("force"))
	_ = viper.BindPFlag("archive", f.Lookup("archive"))
	_ = viper.BindPFlag("no_history", f.Lookup("no-history"))

	rootCmd.AddCommand(convertCmd)
}

// stdoutSink prints converted Markdown instead of storing it.
type stdoutSink struct {
	w io.Writer
}

func (s stdoutSink) Exists(string) bool { return false }

func (s stdoutSink) Write(_ string, content string) error {
	_, err := io.WriteString(s.w, content)
	return err
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(viper.GetViper())
	toStdout, _ := cmd.Flags().GetBool("stdout")

	paths, err := convert.CollectPaths(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no convertible files found in %v", args)
	}
	if toStdout && len(paths) != 1 {
		return fmt.Errorf("--stdout converts exactly one document, got %d", len(paths))
	}

	router, err := convert.NewRouter(cfg.Conversion, synth.Synthesizer{})
	if err != nil {
		return err
	}

	opts := convert.Options{Force: cfg.Conversion.Force, Log: os.Stdout}

	var pkg *archive.Packager
	switch {
	case toStdout:
		opts.Sink = stdoutSink{w: os.Stdout}
		opts.Log = os.Stderr
	case cfg.Conversion.Archive != "":
		pkg = archive.NewPackager(time.Now())
		opts.Sink = pkg
	default:
		opts.Sink = convert.DirSink{Dir: cfg.Conversion.OutDir}
	}

	if !cfg.History.Disabled {
		store, err := history.NewStore(cfg.History)
		if err != nil {
			slog.Warn("conversion history unavailable", "error", err)
		} else {
			defer store.Close()
			opts.Recorder = store
		}
	}

	result, err := convert.ConvertPaths(context.Background(), router, paths, opts)
	if err != nil {
		return err
	}

	if pkg != nil && pkg.Len() > 0 {
		if err := pkg.Save(cfg.Conversion.Archive); err != nil {
			return err
		}
		fmt.Fprintf(opts.Log, "archive: %s (%d files)\n", cfg.Conversion.Archive, pkg.Len())
	}

	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed conversion", result.Failed)
	}
	return nil
}
