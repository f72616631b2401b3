// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "---\nconverted: true\ndate: 2026-10-16\n---\n\n"

func fixedSynth() Synthesizer {
	return Synthesizer{Now: func() time.Time {
		return time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	}}
}

func TestConvertText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "mixed document",
			input: "Report\n\nTODO:\nBuy milk\n- eggs\n1. one\n2. two\n    x = 1\n    y = 2\nend",
			want:  "# Report\n\n## TODO:\n\n## Buy milk\n\n* eggs\n1. one\n2. two\n```\nx = 1\ny = 2\n```\n\nend\n",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only blank lines",
			input: "\n\n  \n\t\n",
			want:  "",
		},
		{
			name:  "single shout case line",
			input: "HELLO",
			want:  "# HELLO\n\n",
		},
		{
			name:  "list markers normalized and numbers kept",
			input: "Title\n3. third\n7.   seventh\n- a\n* b\n+ c",
			want:  "# Title\n\n3. third\n7. seventh\n* a\n* b\n* c\n",
		},
		{
			name:  "code block open at end of input",
			input: "Title\n\tfoo()\n    bar()",
			want:  "# Title\n\n```\nfoo()\nbar()\n```\n",
		},
		{
			name:  "blank line inside code block",
			input: "Title\n    a\n\n    b\nafter",
			want:  "# Title\n\n```\na\n\nb\n```\n\nafter\n",
		},
		{
			name:  "line closing a block is classified again",
			input: "Title\n    x\n- item",
			want:  "# Title\n\n```\nx\n```\n\n* item\n",
		},
		{
			name:  "trailing blank line suppressed",
			input: "Title\nend\n",
			want:  "# Title\n\nend\n",
		},
		{
			name:  "blank first line",
			input: "\nHello",
			want:  "## Hello\n\n",
		},
		{
			name:  "indented first line is a heading",
			input: "    main()\n    more()",
			want:  "# main()\n\n```\nmore()\n```\n",
		},
		{
			name:  "paragraph lines",
			input: "Notes\nthis is text.\nmore text here.",
			want:  "# Notes\n\nthis is text.\nmore text here.\n",
		},
	}

	s := fixedSynth()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ConvertText(tt.input)
			assert.Equal(t, header+tt.want, got)
		})
	}
}

func TestConvertNeverHasBlankRuns(t *testing.T) {
	inputs := []string{
		"A\n\n\n\n\nB",
		"Title\n    a\n\n\n\n    b\n\n\n\nc",
		"\n\n\nX\n\n\n",
		"Head\nSub:\n\n\nSTOP\n\n- x\n\n\n1. y",
	}
	s := fixedSynth()
	for _, in := range inputs {
		got := s.ConvertText(in)
		assert.NotContains(t, got, "\n\n\n", "input %q", in)
		assert.True(t, strings.HasPrefix(got, header), "input %q", in)
	}
}

func TestConvertEquivalentToConvertText(t *testing.T) {
	s := fixedSynth()
	lines := []string{"Intro", "", "- one", "    code"}
	assert.Equal(t, s.ConvertText(strings.Join(lines, "\n")), s.Convert(lines))
}

func TestConvertUsesSystemClock(t *testing.T) {
	got := ConvertText("Hi")
	require.True(t, strings.HasPrefix(got, "---\nconverted: true\ndate: "))

	date := strings.TrimPrefix(strings.SplitN(got, "\n", 4)[2], "date: ")
	_, err := time.Parse(DateLayout, date)
	assert.NoError(t, err)
}

func TestConvertDoesNotMutateInput(t *testing.T) {
	lines := []string{"  Title  ", "\tcode", "end"}
	snapshot := append([]string(nil), lines...)
	fixedSynth().Convert(lines)
	assert.Equal(t, snapshot, lines)
}

func TestPrependFrontmatterUsesUTCDate(t *testing.T) {
	loc := time.FixedZone("east", 10*60*60)
	now := time.Date(2026, 10, 17, 5, 0, 0, 0, loc)
	assert.Equal(t, header+"body\n", PrependFrontmatter("body\n", now))
}
