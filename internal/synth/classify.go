// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxHeadingLen is the exclusive upper bound, in characters, for lines the
// heading heuristics will promote.
const maxHeadingLen = 100

var (
	numberedItem = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)
	bulletItem   = regexp.MustCompile(`^[-*+]\s+(.+)$`)
)

// listPrefixes are the markers that exclude a line from the capitalized-line
// heading rule.
var listPrefixes = []string{
	"1. ", "2. ", "3. ", "4. ", "5. ", "6. ", "7. ", "8. ", "9. ",
	"* ", "- ", "+ ",
}

// Rule is one entry in the ranked classification list. Match returns false
// when the rule does not apply to the line.
type Rule struct {
	Name  string
	Match func(l Line, collecting bool) (Classified, bool)
}

// Rules is the ranked rule list. The first matching rule wins; the final
// paragraph rule always matches.
var Rules = []Rule{
	{Name: "first-line-heading", Match: matchFirstLine},
	{Name: "blank", Match: matchBlank},
	{Name: "code-open", Match: matchCodeOpen},
	{Name: "code-continue", Match: matchCodeContinue},
	{Name: "code-close", Match: matchCodeClose},
	{Name: "numbered-item", Match: matchNumbered},
	{Name: "bullet-item", Match: matchBullet},
	{Name: "shout-heading", Match: matchShout},
	{Name: "colon-heading", Match: matchColon},
	{Name: "capitalized-heading", Match: matchCapitalized},
	{Name: "paragraph", Match: matchParagraph},
}

// Classify assigns a category to l. collecting reports whether a code block is
// currently open.
func Classify(l Line, collecting bool) Classified {
	for _, r := range Rules {
		if c, ok := r.Match(l, collecting); ok {
			c.Rule = r.Name
			return c
		}
	}
	// Unreachable: the paragraph rule accepts every line.
	return Classified{Tag: TagParagraph, Rule: "paragraph", Text: l.Trimmed}
}

func matchFirstLine(l Line, _ bool) (Classified, bool) {
	if l.Index != 0 || l.Trimmed == "" {
		return Classified{}, false
	}
	return Classified{Tag: TagHeading, Level: 1, Text: l.Trimmed}, true
}

func matchBlank(l Line, _ bool) (Classified, bool) {
	if l.Trimmed != "" {
		return Classified{}, false
	}
	return Classified{Tag: TagBlank}, true
}

func matchCodeOpen(l Line, collecting bool) (Classified, bool) {
	if collecting || !indented(l.Raw) {
		return Classified{}, false
	}
	return Classified{Tag: TagCodeStart, Text: deindent(l.Raw)}, true
}

func matchCodeContinue(l Line, collecting bool) (Classified, bool) {
	if !collecting || !indented(l.Raw) {
		return Classified{}, false
	}
	return Classified{Tag: TagCodeContinue, Text: deindent(l.Raw)}, true
}

func matchCodeClose(_ Line, collecting bool) (Classified, bool) {
	if !collecting {
		return Classified{}, false
	}
	return Classified{Tag: TagCodeClose}, true
}

func matchNumbered(l Line, _ bool) (Classified, bool) {
	m := numberedItem.FindStringSubmatch(l.Trimmed)
	if m == nil {
		return Classified{}, false
	}
	return Classified{Tag: TagNumbered, Number: m[1], Text: m[2]}, true
}

func matchBullet(l Line, _ bool) (Classified, bool) {
	m := bulletItem.FindStringSubmatch(l.Trimmed)
	if m == nil {
		return Classified{}, false
	}
	return Classified{Tag: TagBullet, Text: m[1]}, true
}

func matchShout(l Line, _ bool) (Classified, bool) {
	t := l.Trimmed
	if t != strings.ToUpper(t) || !short(t) || strings.Contains(t, " ") {
		return Classified{}, false
	}
	return Classified{Tag: TagHeading, Level: 2, Text: t}, true
}

func matchColon(l Line, _ bool) (Classified, bool) {
	t := l.Trimmed
	if !strings.HasSuffix(t, ":") || !short(t) {
		return Classified{}, false
	}
	return Classified{Tag: TagHeading, Level: 2, Text: t}, true
}

// matchCapitalized promotes short capitalized lines without a period. It also
// catches ordinary short sentences that lack punctuation.
func matchCapitalized(l Line, _ bool) (Classified, bool) {
	t := l.Trimmed
	if !short(t) || t == "" || t[0] < 'A' || t[0] > 'Z' || strings.Contains(t, ".") || listLike(t) {
		return Classified{}, false
	}
	return Classified{Tag: TagHeading, Level: 2, Text: t}, true
}

func matchParagraph(l Line, _ bool) (Classified, bool) {
	return Classified{Tag: TagParagraph, Text: l.Trimmed}, true
}

func short(s string) bool {
	return utf8.RuneCountInString(s) < maxHeadingLen
}

func listLike(s string) bool {
	for _, p := range listPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
