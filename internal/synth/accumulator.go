// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import "strings"

// accumulator groups consecutive indented lines into one code block. It has
// two states: idle (lines == nil) and collecting.
type accumulator struct {
	lines []string
}

func (a *accumulator) collecting() bool {
	return a.lines != nil
}

// open starts a block with its first de-indented line.
func (a *accumulator) open(first string) {
	a.lines = []string{first}
}

// add appends a line; an empty string records a blank line inside the block.
func (a *accumulator) add(line string) {
	a.lines = append(a.lines, line)
}

// flush returns the block content joined with newlines and returns the
// accumulator to idle. The caller owns the returned content.
func (a *accumulator) flush() string {
	content := strings.Join(a.lines, "\n")
	a.lines = nil
	return content
}
