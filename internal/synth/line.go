// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package synth infers Markdown structure from plain text. It classifies each
// input line with a ranked list of heuristics, groups indented runs into fenced
// code blocks, and emits a Markdown document with a fixed frontmatter header.
//
// The transform is total: every line sequence yields a document and no rule can
// fail. Synthesizer values hold no mutable state, so concurrent conversions of
// different documents never interact.
package synth

import "strings"

// Tag identifies the structural category assigned to a line.
type Tag int

const (
	TagBlank Tag = iota
	TagHeading
	TagNumbered
	TagBullet
	TagCodeStart
	TagCodeContinue
	// TagCodeClose is not a category of its own: it tells the caller to flush
	// the open code block and classify the same line again.
	TagCodeClose
	TagParagraph
)

var tagNames = [...]string{
	TagBlank:        "blank",
	TagHeading:      "heading",
	TagNumbered:     "numbered",
	TagBullet:       "bullet",
	TagCodeStart:    "code-start",
	TagCodeContinue: "code-continue",
	TagCodeClose:    "code-close",
	TagParagraph:    "paragraph",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// Line is one element of the input document.
type Line struct {
	// Index is the zero-based position in the document.
	Index int
	// Raw is the line as read; indentation checks use it.
	Raw string
	// Trimmed has surrounding whitespace removed; content patterns use it.
	Trimmed string
	// Last is true for the final line of the document.
	Last bool
}

// NewLine builds a Line for position i of a document with n lines.
func NewLine(raw string, i, n int) Line {
	return Line{
		Index:   i,
		Raw:     raw,
		Trimmed: strings.TrimSpace(raw),
		Last:    i == n-1,
	}
}

// Classified is the result of classifying one line.
type Classified struct {
	Tag Tag
	// Rule names the rule that produced this classification.
	Rule string
	// Level is the heading level (1 or 2) for TagHeading.
	Level int
	// Number holds the list marker digits verbatim for TagNumbered.
	Number string
	// Text is the payload: heading text, item text, paragraph text, or the
	// de-indented code line.
	Text string
}

// indented reports whether raw opens or continues a code block: four leading
// spaces or a leading tab.
func indented(raw string) bool {
	return strings.HasPrefix(raw, "    ") || strings.HasPrefix(raw, "\t")
}

// deindent strips one leading tab or exactly four leading spaces.
func deindent(raw string) string {
	if strings.HasPrefix(raw, "\t") {
		return raw[1:]
	}
	return strings.TrimPrefix(raw, "    ")
}
