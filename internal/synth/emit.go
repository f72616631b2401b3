// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"regexp"
	"strings"
)

const fence = "```"

var blankRuns = regexp.MustCompile(`\n{3,}`)

// emitter builds the Markdown body in document order.
type emitter struct {
	b strings.Builder
}

func (e *emitter) emit(c Classified) {
	switch c.Tag {
	case TagHeading:
		e.b.WriteString(strings.Repeat("#", c.Level))
		e.b.WriteString(" ")
		e.b.WriteString(c.Text)
		e.b.WriteString("\n\n")
	case TagNumbered:
		e.b.WriteString(c.Number)
		e.b.WriteString(". ")
		e.b.WriteString(c.Text)
		e.b.WriteString("\n")
	case TagBullet:
		e.b.WriteString("* ")
		e.b.WriteString(c.Text)
		e.b.WriteString("\n")
	case TagBlank:
		e.b.WriteString("\n")
	case TagParagraph:
		e.b.WriteString(c.Text)
		e.b.WriteString("\n")
	}
}

// code writes a fenced block. trailing adds the blank line that separates the
// block from following content.
func (e *emitter) code(content string, trailing bool) {
	e.b.WriteString(fence + "\n")
	e.b.WriteString(content)
	e.b.WriteString("\n" + fence + "\n")
	if trailing {
		e.b.WriteString("\n")
	}
}

func (e *emitter) String() string {
	return e.b.String()
}

// collapseBlankRuns reduces every run of three or more newlines to two.
func collapseBlankRuns(s string) string {
	return blankRuns.ReplaceAllString(s, "\n\n")
}
