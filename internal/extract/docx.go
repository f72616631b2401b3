// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/klauspost/compress/zip"
	"golang.org/x/net/html"
)

const documentPart = "word/document.xml"

// ErrNoDocumentPart is returned when a .docx archive has no main document.
var ErrNoDocumentPart = errors.New("docx: missing " + documentPart)

type docxRun struct {
	text   strings.Builder
	bold   bool
	italic bool
}

type docxParagraph struct {
	style string
	list  bool
	runs  []*docxRun
}

func (p *docxParagraph) plain() string {
	var b strings.Builder
	for _, r := range p.runs {
		b.WriteString(r.text.String())
	}
	return b.String()
}

// tag returns the HTML element for the paragraph.
func (p *docxParagraph) tag() string {
	style := strings.ToLower(strings.ReplaceAll(p.style, " ", ""))
	switch {
	case style == "title":
		return "h1"
	case strings.HasPrefix(style, "heading") && len(style) == len("heading")+1:
		if n := style[len(style)-1]; n >= '1' && n <= '6' {
			return "h" + string(n)
		}
	case p.list || style == "listparagraph":
		return "li"
	}
	return "p"
}

// DocxText returns the raw text of a .docx file: every paragraph followed by
// a blank line.
func DocxText(path string) (string, error) {
	paras, err := readDocx(path)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, p := range paras {
		b.WriteString(p.plain())
		b.WriteString("\n\n")
	}
	return b.String(), nil
}

// DocxHTML renders a .docx file as HTML. Title and HeadingN styles become
// headings, numbered paragraphs become list items, and bold and italic runs
// keep their emphasis.
func DocxHTML(path string) (string, error) {
	paras, err := readDocx(path)
	if err != nil {
		return "", err
	}
	return renderDocxHTML(paras), nil
}

func readDocx(path string) ([]*docxParagraph, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening docx %s: %w", path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s in %s: %w", documentPart, path, err)
		}
		defer rc.Close()

		paras, err := parseDocument(rc)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		slog.Debug("extracted docx", "path", path, "paragraphs", len(paras))
		return paras, nil
	}
	return nil, fmt.Errorf("%s: %w", path, ErrNoDocumentPart)
}

// parseDocument walks the WordprocessingML token stream of word/document.xml.
func parseDocument(r io.Reader) ([]*docxParagraph, error) {
	dec := xml.NewDecoder(r)

	var (
		paras       []*docxParagraph
		para        *docxParagraph
		run         *docxRun
		inParaProps bool
		inRunProps  bool
		inText      bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				para = &docxParagraph{}
			case "pPr":
				inParaProps = true
			case "pStyle":
				if inParaProps && para != nil {
					para.style = attrVal(t)
				}
			case "numPr":
				if inParaProps && para != nil {
					para.list = true
				}
			case "r":
				run = &docxRun{}
				if para != nil {
					para.runs = append(para.runs, run)
				}
			case "rPr":
				inRunProps = true
			case "b":
				if inRunProps && run != nil {
					run.bold = toggleOn(t)
				}
			case "i":
				if inRunProps && run != nil {
					run.italic = toggleOn(t)
				}
			case "t":
				inText = true
			case "tab":
				if run != nil && !inParaProps {
					run.text.WriteByte('\t')
				}
			case "br", "cr":
				if run != nil && !inParaProps {
					run.text.WriteByte('\n')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if para != nil {
					paras = append(paras, para)
				}
				para = nil
			case "pPr":
				inParaProps = false
			case "r":
				run = nil
			case "rPr":
				inRunProps = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText && run != nil {
				run.text.Write(t)
			}
		}
	}
	return paras, nil
}

func attrVal(e xml.StartElement) string {
	for _, a := range e.Attr {
		if a.Name.Local == "val" {
			return a.Value
		}
	}
	return ""
}

// toggleOn reads an on/off property such as <w:b/> or <w:b w:val="0"/>.
func toggleOn(e xml.StartElement) bool {
	switch attrVal(e) {
	case "0", "false", "off":
		return false
	}
	return true
}

func renderDocxHTML(paras []*docxParagraph) string {
	var b strings.Builder
	inList := false
	for _, p := range paras {
		tag := p.tag()
		if tag == "li" && !inList {
			b.WriteString("<ul>\n")
			inList = true
		}
		if tag != "li" && inList {
			b.WriteString("</ul>\n")
			inList = false
		}
		if p.plain() == "" {
			continue
		}
		b.WriteString("<" + tag + ">")
		for _, r := range p.runs {
			writeRun(&b, r)
		}
		b.WriteString("</" + tag + ">\n")
	}
	if inList {
		b.WriteString("</ul>\n")
	}
	return b.String()
}

func writeRun(b *strings.Builder, r *docxRun) {
	text := r.text.String()
	if text == "" {
		return
	}
	text = strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")
	if r.bold {
		text = "<strong>" + text + "</strong>"
	}
	if r.italic {
		text = "<em>" + text + "</em>"
	}
	b.WriteString(text)
}
