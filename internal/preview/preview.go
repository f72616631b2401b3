// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preview renders converted Markdown for people to read, either as
// HTML or as styled terminal output. It never modifies the Markdown.
package preview

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/pdiddy/txt2md/pkg/types"
)

// DefaultStyle and DefaultWidth apply when the configuration leaves them unset.
const (
	DefaultStyle = "dark"
	DefaultWidth = 80
)

// Split separates the frontmatter header from the Markdown body. A document
// without frontmatter yields a zero Frontmatter and the whole input as body.
func Split(doc []byte) (types.Frontmatter, []byte, error) {
	var meta types.Frontmatter
	body, err := frontmatter.Parse(bytes.NewReader(doc), &meta)
	if err != nil {
		return types.Frontmatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta, body, nil
}

// HTML renders the document body as an HTML fragment. Frontmatter is dropped.
func HTML(doc []byte) ([]byte, error) {
	_, body, err := Split(doc)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("rendering html: %w", err)
	}
	return buf.Bytes(), nil
}

// Terminal renders the document body with ANSI styling for a terminal.
func Terminal(doc []byte, style string, width int) (string, error) {
	if style == "" {
		style = DefaultStyle
	}
	if width <= 0 {
		width = DefaultWidth
	}

	_, body, err := Split(doc)
	if err != nil {
		return "", err
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating terminal renderer: %w", err)
	}
	out, err := tr.Render(string(body))
	if err != nil {
		return "", fmt.Errorf("rendering terminal output: %w", err)
	}
	return out, nil
}
