// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the txt2md converter:
// source documents, conversion status and history records, and configuration.
package types

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Format identifies a source document format, detected from its extension.
type Format string

const (
	FormatText     Format = "text"
	FormatDocx     Format = "docx"
	FormatDoc      Format = "doc"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatUnknown  Format = "unknown"
)

// DetectFormat returns the format for path based on its extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text":
		return FormatText
	case ".docx":
		return FormatDocx
	case ".doc":
		return FormatDoc
	case ".html", ".htm":
		return FormatHTML
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return FormatUnknown
	}
}

// Convertible reports whether documents of this format can be converted to
// Markdown.
func (f Format) Convertible() bool {
	switch f {
	case FormatText, FormatDocx, FormatDoc, FormatHTML:
		return true
	}
	return false
}

var sourceExt = regexp.MustCompile(`(?i)\.(txt|text|docx?|rtf|html?)$`)

// OutputName returns the Markdown file name for a source path: the base name
// with a known source extension removed, plus ".md".
func OutputName(path string) string {
	return sourceExt.ReplaceAllString(filepath.Base(path), "") + ".md"
}

// Document is one source file queued for conversion.
type Document struct {
	// ID is the output base name without extension (e.g. "notes" for notes.txt).
	ID string `json:"id" yaml:"id"`

	// SourcePath is the local filesystem path of the source file.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// Format is the detected source format.
	Format Format `json:"format" yaml:"format"`
}

// NewDocument builds a Document for path.
func NewDocument(path string) Document {
	return Document{
		ID:         strings.TrimSuffix(OutputName(path), ".md"),
		SourcePath: path,
		Format:     DetectFormat(path),
	}
}

// OutputName returns the Markdown file name for the document.
func (d Document) OutputName() string {
	return d.ID + ".md"
}
