// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus indicates the outcome of converting one document.
type ConversionStatus string

const (
	ConversionNone   ConversionStatus = "none"
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// ConversionRecord is one entry in the conversion history.
type ConversionRecord struct {
	// ID is the database row identifier; zero before the record is stored.
	ID int64 `json:"id" yaml:"id"`

	// Source is the source document path.
	Source string `json:"source" yaml:"source"`

	// Output is the Markdown file name or archive entry written.
	Output string `json:"output" yaml:"output"`

	// Format is the detected source format.
	Format Format `json:"format" yaml:"format"`

	// Backend names the converter that handled the document.
	Backend string `json:"backend" yaml:"backend"`

	// Status is the conversion outcome.
	Status ConversionStatus `json:"status" yaml:"status"`

	// Bytes is the size of the produced Markdown.
	Bytes int `json:"bytes" yaml:"bytes"`

	// Error records the failure message. Empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// ConvertedAt is when the conversion ran.
	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`
}

// Frontmatter is the metadata header every converted document starts with.
type Frontmatter struct {
	Converted bool   `json:"converted" yaml:"converted"`
	Date      string `json:"date" yaml:"date"`
}
