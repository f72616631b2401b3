// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package htmlmd converts HTML to Markdown. It serves the rich-document path,
// where word-processor content arrives pre-rendered as HTML and the plain-text
// heuristics are not applied.
package htmlmd

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	blankRuns   = regexp.MustCompile(`\n{3,}`)
	spaceRuns   = regexp.MustCompile(`[ \t\r\n]+`)
	headingAtom = map[atom.Atom]int{
		atom.H1: 1, atom.H2: 2, atom.H3: 3,
		atom.H4: 4, atom.H5: 5, atom.H6: 6,
	}
)

// Convert parses HTML from r and returns the Markdown body.
func Convert(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}
	var w writer
	w.block(doc)
	out := blankRuns.ReplaceAllString(w.b.String(), "\n\n")
	return strings.TrimLeft(out, "\n"), nil
}

// ConvertString is Convert for an in-memory document.
func ConvertString(s string) (string, error) {
	return Convert(strings.NewReader(s))
}

type writer struct {
	b strings.Builder
}

// block renders the children of n as block-level Markdown.
func (w *writer) block(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.node(c)
	}
}

func (w *writer) node(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if t := collapse(n.Data); strings.TrimSpace(t) != "" {
			w.b.WriteString(strings.TrimSpace(t))
			w.b.WriteString("\n\n")
		}
		return
	case html.ElementNode:
	default:
		w.block(n)
		return
	}

	if level, ok := headingAtom[n.DataAtom]; ok {
		w.b.WriteString(strings.Repeat("#", level) + " " + inline(n) + "\n\n")
		return
	}

	switch n.DataAtom {
	case atom.Head, atom.Script, atom.Style, atom.Template:
	case atom.P:
		if t := inline(n); t != "" {
			w.b.WriteString(t + "\n\n")
		}
	case atom.Ul, atom.Ol:
		w.list(n)
	case atom.Pre:
		w.b.WriteString("```\n" + strings.TrimRight(textContent(n), "\n") + "\n```\n\n")
	case atom.Blockquote:
		var inner writer
		inner.block(n)
		body := strings.TrimSpace(blankRuns.ReplaceAllString(inner.b.String(), "\n\n"))
		for _, line := range strings.Split(body, "\n") {
			w.b.WriteString(strings.TrimRight("> "+line, " ") + "\n")
		}
		w.b.WriteString("\n")
	case atom.Hr:
		w.b.WriteString("---\n\n")
	case atom.Br:
		w.b.WriteString("\n")
	case atom.Div, atom.Section, atom.Article, atom.Main, atom.Body, atom.Html,
		atom.Header, atom.Footer, atom.Nav, atom.Table, atom.Tbody, atom.Thead, atom.Tr:
		w.block(n)
	default:
		if t := inline(n); t != "" {
			w.b.WriteString(t + "\n\n")
		}
	}
}

func (w *writer) list(n *html.Node) {
	ordered := n.DataAtom == atom.Ol
	i := 1
	if ordered {
		if start, err := strconv.Atoi(attr(n, "start")); err == nil {
			i = start
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.DataAtom != atom.Li {
			continue
		}
		marker := "* "
		if ordered {
			marker = strconv.Itoa(i) + ". "
			i++
		}
		w.b.WriteString(marker + inline(c) + "\n")
	}
	w.b.WriteString("\n")
}

// inline renders the children of n as a single line of inline Markdown.
func inline(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeInline(&b, c)
	}
	return strings.TrimSpace(spaceRuns.ReplaceAllString(b.String(), " "))
}

func writeInline(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(collapse(n.Data))
		return
	case html.ElementNode:
	default:
		return
	}

	switch n.DataAtom {
	case atom.Strong, atom.B:
		wrap(b, n, "**")
	case atom.Em, atom.I:
		wrap(b, n, "*")
	case atom.Code:
		b.WriteString("`" + textContent(n) + "`")
	case atom.A:
		text := inline(n)
		if href := attr(n, "href"); href != "" {
			b.WriteString("[" + text + "](" + href + ")")
		} else {
			b.WriteString(text)
		}
	case atom.Img:
		b.WriteString("![" + attr(n, "alt") + "](" + attr(n, "src") + ")")
	case atom.Br:
		b.WriteString(" ")
	case atom.Script, atom.Style:
	case atom.Ul, atom.Ol:
		// Nested lists are flattened into the parent item text.
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.DataAtom == atom.Li {
				b.WriteString(" " + inline(c))
			}
		}
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeInline(b, c)
		}
	}
}

func wrap(b *strings.Builder, n *html.Node, marker string) {
	text := inline(n)
	if text == "" {
		return
	}
	b.WriteString(marker + text + marker)
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func collapse(s string) string {
	return spaceRuns.ReplaceAllString(s, " ")
}
