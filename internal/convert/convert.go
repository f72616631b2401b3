// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives document-to-Markdown conversion with pluggable
// backends. Each document is converted independently: a failure is reported
// for that document and the batch continues.
package convert

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/txt2md/pkg/types"
)

// Converter transforms a source file into a Markdown document, frontmatter
// included. Different backends (heuristic, rich, markitdown) implement this
// interface.
type Converter interface {
	// Convert reads the file at path and returns the Markdown content.
	Convert(path string) (string, error)

	// Name identifies the backend in logs and history records.
	Name() string
}

// Selector is implemented by converters that delegate to another converter
// chosen per document.
type Selector interface {
	Select(doc types.Document) (Converter, error)
}

// Sink receives converted Markdown keyed by output file name.
type Sink interface {
	// Exists reports whether output for name is already present.
	Exists(name string) bool

	// Write stores content under name.
	Write(name, content string) error
}

// Recorder persists one history entry per processed document.
type Recorder interface {
	Record(ctx context.Context, rec types.ConversionRecord) error
}

// DirSink writes Markdown files into a directory.
type DirSink struct {
	Dir string
}

// Exists reports whether Dir/name exists.
func (s DirSink) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.Dir, name))
	return err == nil
}

// Write creates Dir if needed and writes Dir/name.
func (s DirSink) Write(name, content string) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", s.Dir, err)
	}
	return os.WriteFile(filepath.Join(s.Dir, name), []byte(content), 0o644)
}

// Options configures a conversion run.
type Options struct {
	// Sink receives the Markdown output. Required.
	Sink Sink

	// Force converts even when the sink already has output for a document.
	Force bool

	// Recorder, when set, receives a history entry for each document.
	Recorder Recorder

	// Log receives per-document status lines and the batch summary.
	// Nil discards them.
	Log io.Writer

	// Now supplies record timestamps. Nil means time.Now.
	Now func() time.Time
}

func (o Options) log() io.Writer {
	if o.Log == nil {
		return io.Discard
	}
	return o.Log
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of documents processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any documents failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertDocument converts a single document and writes the result to the
// sink. If the sink already holds output for the document and Force is not
// set, it skips conversion and returns ConversionNone.
func ConvertDocument(ctx context.Context, c Converter, doc types.Document, opts Options) types.ConversionStatus {
	w := opts.log()
	name := doc.OutputName()
	rec := types.ConversionRecord{
		Source:  doc.SourcePath,
		Output:  name,
		Format:  doc.Format,
		Backend: c.Name(),
	}

	if !opts.Force && opts.Sink.Exists(name) {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", doc.ID)
		return types.ConversionNone
	}

	fail := func(err error) types.ConversionStatus {
		fmt.Fprintf(w, "failed:  %s (%v)\n", doc.ID, err)
		rec.Status = types.ConversionFailed
		rec.Error = err.Error()
		record(ctx, opts, rec)
		return types.ConversionFailed
	}

	conv := c
	if s, ok := c.(Selector); ok {
		var err error
		if conv, err = s.Select(doc); err != nil {
			return fail(err)
		}
		rec.Backend = conv.Name()
	}
	slog.Debug("converting document", "source", doc.SourcePath, "format", doc.Format, "backend", rec.Backend)

	content, err := conv.Convert(doc.SourcePath)
	if err != nil {
		return fail(err)
	}

	if err := opts.Sink.Write(name, content); err != nil {
		return fail(err)
	}

	fmt.Fprintf(w, "converted: %s\n", doc.ID)
	rec.Status = types.ConversionDone
	rec.Bytes = len(content)
	record(ctx, opts, rec)
	return types.ConversionDone
}

func record(ctx context.Context, opts Options, rec types.ConversionRecord) {
	if opts.Recorder == nil {
		return
	}
	rec.ConvertedAt = opts.now().UTC()
	if err := opts.Recorder.Record(ctx, rec); err != nil {
		slog.Warn("recording conversion history", "source", rec.Source, "error", err)
	}
}

// ConvertBatch processes documents through the converter in order, printing
// per-file status and returning a summary. A cancelled context stops the
// batch before the next document.
func ConvertBatch(ctx context.Context, c Converter, docs []types.Document, opts Options) (BatchResult, error) {
	var result BatchResult
	for _, d := range docs {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		switch ConvertDocument(ctx, c, d, opts) {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionNone:
			result.Skipped++
		case types.ConversionFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(opts.log(), "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result, nil
}

// ConvertPaths builds Documents from source paths and delegates to
// ConvertBatch.
func ConvertPaths(ctx context.Context, c Converter, paths []string, opts Options) (BatchResult, error) {
	docs := make([]types.Document, len(paths))
	for i, p := range paths {
		docs[i] = types.NewDocument(p)
	}
	return ConvertBatch(ctx, c, docs, opts)
}

// CollectPaths expands directories in args into the convertible files they
// contain (one level deep, sorted by name). Files are passed through as given.
func CollectPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("reading directory %s: %w", arg, err)
		}
		for _, e := range entries {
			if e.IsDir() || !types.DetectFormat(e.Name()).Convertible() {
				continue
			}
			paths = append(paths, filepath.Join(arg, e.Name()))
		}
	}
	return paths, nil
}
