// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"strings"
	"time"
)

// DateLayout is the frontmatter date format.
const DateLayout = "2006-01-02"

// Synthesizer converts plain-text lines to a Markdown document. The zero value
// uses the system clock.
type Synthesizer struct {
	// Now supplies the conversion time for the frontmatter date. Nil means
	// time.Now.
	Now func() time.Time
}

var defaultSynthesizer = Synthesizer{}

// Convert converts lines using the system clock.
func Convert(lines []string) string {
	return defaultSynthesizer.Convert(lines)
}

// ConvertText splits text on newlines and converts it using the system clock.
func ConvertText(text string) string {
	return defaultSynthesizer.ConvertText(text)
}

// ConvertText splits text on newlines and converts the resulting lines.
func (s Synthesizer) ConvertText(text string) string {
	return s.Convert(strings.Split(text, "\n"))
}

// Convert renders lines as a Markdown document with a frontmatter header. The
// date is read once per call.
func (s Synthesizer) Convert(lines []string) string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return PrependFrontmatter(Body(lines), now())
}

// Body renders lines as a Markdown body without frontmatter. Runs of three or
// more newlines are not yet collapsed.
func Body(lines []string) string {
	var (
		acc accumulator
		out emitter
	)
	for i, raw := range lines {
		l := NewLine(raw, i, len(lines))
		for {
			c := Classify(l, acc.collecting())
			if c.Tag == TagCodeClose {
				out.code(acc.flush(), true)
				continue
			}
			switch c.Tag {
			case TagCodeStart:
				acc.open(c.Text)
			case TagCodeContinue:
				acc.add(c.Text)
			case TagBlank:
				if acc.collecting() {
					acc.add("")
				} else if !l.Last {
					out.emit(c)
				}
			default:
				out.emit(c)
			}
			break
		}
	}
	if acc.collecting() {
		out.code(acc.flush(), false)
	}
	return out.String()
}

// PrependFrontmatter places the fixed metadata header before body and
// collapses blank-line runs across the whole document.
func PrependFrontmatter(body string, now time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("converted: true\n")
	b.WriteString("date: " + now.UTC().Format(DateLayout) + "\n")
	b.WriteString("---\n\n")
	b.WriteString(body)
	return collapseBlankRuns(b.String())
}
