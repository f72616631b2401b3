// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"github.com/pdiddy/txt2md/internal/extract"
	"github.com/pdiddy/txt2md/internal/htmlmd"
	"github.com/pdiddy/txt2md/internal/synth"
	"github.com/pdiddy/txt2md/pkg/types"
)

// HeuristicConverter extracts plain text from text and .docx files and infers
// Markdown structure from it.
type HeuristicConverter struct {
	Synth synth.Synthesizer
}

func (h *HeuristicConverter) Name() string { return string(types.BackendHeuristic) }

// Convert extracts the text of path and synthesizes a Markdown document.
func (h *HeuristicConverter) Convert(path string) (string, error) {
	var (
		text string
		err  error
	)
	switch f := types.DetectFormat(path); f {
	case types.FormatText:
		text, err = extract.Text(path)
	case types.FormatDocx:
		text, err = extract.DocxText(path)
	default:
		return "", fmt.Errorf("%s backend cannot read %s files", h.Name(), f)
	}
	if err != nil {
		return "", err
	}
	return h.Synth.ConvertText(text), nil
}

// RichConverter converts HTML, and .docx files rendered to HTML, without the
// plain-text heuristics.
type RichConverter struct {
	Synth synth.Synthesizer
}

func (r *RichConverter) Name() string { return string(types.BackendRich) }

// Convert renders path to Markdown through the HTML converter.
func (r *RichConverter) Convert(path string) (string, error) {
	var (
		body string
		err  error
	)
	switch f := types.DetectFormat(path); f {
	case types.FormatHTML:
		body, err = convertHTMLFile(path)
	case types.FormatDocx:
		var doc string
		if doc, err = extract.DocxHTML(path); err == nil {
			body, err = htmlmd.ConvertString(doc)
		}
	default:
		return "", fmt.Errorf("%s backend cannot read %s files", r.Name(), f)
	}
	if err != nil {
		return "", err
	}
	return synth.PrependFrontmatter(body, r.now()), nil
}

func (r *RichConverter) now() time.Time {
	if r.Synth.Now != nil {
		return r.Synth.Now()
	}
	return time.Now()
}

func convertHTMLFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return htmlmd.Convert(f)
}
