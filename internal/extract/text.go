// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract reads source documents and returns their content as plain
// text or, for word-processor files, as pre-rendered HTML.
package extract

import (
	"fmt"
	"os"
	"strings"
)

const bom = "\uFEFF"

// Text reads a plain-text file. Invalid UTF-8 sequences are replaced with
// U+FFFD, a leading byte-order mark is dropped, and CRLF line endings become LF.
func Text(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return normalizeText(string(data)), nil
}

func normalizeText(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	s = strings.TrimPrefix(s, bom)
	return strings.ReplaceAll(s, "\r\n", "\n")
}
