// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/txt2md/internal/synth"
	"github.com/pdiddy/txt2md/pkg/types"
)

func fixedSynth() synth.Synthesizer {
	return synth.Synthesizer{Now: func() time.Time {
		return time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	}}
}

func TestRouterSelect(t *testing.T) {
	heuristic := &fakeConverter{output: "h"}
	rich := &fakeConverter{output: "r"}
	markitdown := &fakeConverter{output: "m"}

	newRouter := func(b types.ConversionBackend) *Router {
		return &Router{
			Backend:    b,
			Heuristic:  heuristic,
			Rich:       rich,
			Markitdown: func() (Converter, error) { return markitdown, nil },
		}
	}

	tests := []struct {
		name    string
		backend types.ConversionBackend
		path    string
		want    Converter
		wantErr bool
	}{
		{name: "text always heuristic", backend: types.BackendRich, path: "a.txt", want: heuristic},
		{name: "html always rich", backend: types.BackendHeuristic, path: "a.html", want: rich},
		{name: "docx heuristic", backend: types.BackendHeuristic, path: "a.docx", want: heuristic},
		{name: "docx rich", backend: types.BackendRich, path: "a.docx", want: rich},
		{name: "docx markitdown", backend: types.BackendMarkitdown, path: "a.docx", want: markitdown},
		{name: "doc markitdown", backend: types.BackendMarkitdown, path: "a.doc", want: markitdown},
		{name: "doc without markitdown", backend: types.BackendHeuristic, path: "a.doc", wantErr: true},
		{name: "unsupported", backend: types.BackendHeuristic, path: "a.png", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newRouter(tt.backend).Select(types.NewDocument(tt.path))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Same(t, tt.want, got)
		})
	}
}

func TestRouterMarkitdownBuiltOnce(t *testing.T) {
	builds := 0
	r := &Router{
		Backend: types.BackendMarkitdown,
		Markitdown: func() (Converter, error) {
			builds++
			return nil, errors.New("no container runtime available")
		},
	}
	for i := 0; i < 3; i++ {
		_, err := r.Select(types.NewDocument("x.docx"))
		assert.Error(t, err)
	}
	assert.Equal(t, 1, builds)
}

func TestNewRouterRejectsUnknownBackend(t *testing.T) {
	_, err := NewRouter(types.ConversionConfig{Backend: "grobid"}, fixedSynth())
	assert.Error(t, err)
}

func TestRouterConvertText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.txt")
	require.NoError(t, os.WriteFile(path, []byte("Shopping\r\n- eggs\r\n2. milk\r\n"), 0o644))

	r, err := NewRouter(types.ConversionConfig{}, fixedSynth())
	require.NoError(t, err)

	got, err := r.Convert(path)
	require.NoError(t, err)
	assert.Equal(t, "---\nconverted: true\ndate: 2026-10-16\n---\n\n# Shopping\n\n* eggs\n2. milk\n", got)
}

func TestRouterConvertHTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<h1>Page</h1><p>SHOUT stays a paragraph</p>"), 0o644))

	r, err := NewRouter(types.ConversionConfig{}, fixedSynth())
	require.NoError(t, err)

	got, err := r.Convert(path)
	require.NoError(t, err)
	assert.Equal(t, "---\nconverted: true\ndate: 2026-10-16\n---\n\n# Page\n\nSHOUT stays a paragraph\n\n", got)
}

func TestHeuristicConverterRejectsHTML(t *testing.T) {
	h := &HeuristicConverter{Synth: fixedSynth()}
	_, err := h.Convert("page.html")
	assert.Error(t, err)
}

func TestRichConverterRejectsText(t *testing.T) {
	r := &RichConverter{Synth: fixedSynth()}
	_, err := r.Convert("notes.txt")
	assert.Error(t, err)
}
