// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionBackend selects how rich documents are converted.
type ConversionBackend string

const (
	// BackendHeuristic extracts raw text and runs the structural heuristics.
	BackendHeuristic ConversionBackend = "heuristic"
	// BackendRich renders documents to HTML and converts the HTML.
	BackendRich ConversionBackend = "rich"
	// BackendMarkitdown pipes documents through the markitdown container.
	BackendMarkitdown ConversionBackend = "markitdown"
)

// Valid reports whether b names a known backend.
func (b ConversionBackend) Valid() bool {
	switch b {
	case BackendHeuristic, BackendRich, BackendMarkitdown:
		return true
	}
	return false
}

// ConversionConfig holds settings for the convert command.
type ConversionConfig struct {
	// Backend selects the converter for .docx and .doc files.
	Backend ConversionBackend `json:"backend" yaml:"backend"`

	// OutDir is the directory Markdown files are written to.
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// Force overwrites existing Markdown output instead of skipping it.
	Force bool `json:"force" yaml:"force"`

	// Archive is the zip path for batch output. Empty writes files to OutDir.
	Archive string `json:"archive,omitempty" yaml:"archive,omitempty"`

	// ContainerRuntime is the preferred runtime for the markitdown backend
	// ("docker" or "podman"). Empty tries docker, then podman.
	ContainerRuntime string `json:"container_runtime,omitempty" yaml:"container_runtime,omitempty"`
}

// HistoryConfig holds settings for the conversion history database.
type HistoryConfig struct {
	// DBPath is the SQLite database file.
	DBPath string `json:"db_path" yaml:"db_path"`

	// Disabled turns off history recording.
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// PreviewConfig holds settings for the preview command.
type PreviewConfig struct {
	// Style is a glamour standard style name (dark, light, notty, ...).
	Style string `json:"style" yaml:"style"`

	// Width is the word-wrap width for terminal rendering.
	Width int `json:"width" yaml:"width"`
}

// Config groups all settings.
type Config struct {
	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`
	History    HistoryConfig    `json:"history" yaml:"history"`
	Preview    PreviewConfig    `json:"preview" yaml:"preview"`
	LogLevel   string           `json:"log_level" yaml:"log_level"`
}
