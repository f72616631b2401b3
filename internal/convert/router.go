// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"sync"

	"github.com/pdiddy/txt2md/internal/container"
	"github.com/pdiddy/txt2md/internal/synth"
	"github.com/pdiddy/txt2md/pkg/types"
)

// Router picks a converter per document from its format and the configured
// backend. Plain text always goes through the heuristics and HTML always
// through the HTML converter; the backend decides word-processor files.
type Router struct {
	Backend   types.ConversionBackend
	Heuristic Converter
	Rich      Converter

	// Markitdown builds the container-backed converter on first use.
	Markitdown func() (Converter, error)

	once   sync.Once
	mdConv Converter
	mdErr  error
}

// NewRouter returns a Router for cfg.Backend using the given synthesizer. The
// markitdown backend detects a container runtime on first use, trying
// cfg.ContainerRuntime first.
func NewRouter(cfg types.ConversionConfig, s synth.Synthesizer) (*Router, error) {
	backend := cfg.Backend
	if backend == "" {
		backend = types.BackendHeuristic
	}
	if !backend.Valid() {
		return nil, fmt.Errorf("unknown backend %q: use heuristic, rich, or markitdown", backend)
	}
	return &Router{
		Backend:   backend,
		Heuristic: &HeuristicConverter{Synth: s},
		Rich:      &RichConverter{Synth: s},
		Markitdown: func() (Converter, error) {
			rt, err := container.DetectRuntime(cfg.ContainerRuntime)
			if err != nil {
				return nil, err
			}
			m, err := NewMarkitdownConverter(rt)
			if err != nil {
				return nil, err
			}
			return m, nil
		},
	}, nil
}

func (r *Router) Name() string { return string(r.Backend) }

// Select returns the converter for doc.
func (r *Router) Select(doc types.Document) (Converter, error) {
	switch doc.Format {
	case types.FormatText:
		return r.Heuristic, nil
	case types.FormatHTML:
		return r.Rich, nil
	case types.FormatDocx:
		switch r.Backend {
		case types.BackendRich:
			return r.Rich, nil
		case types.BackendMarkitdown:
			return r.markitdown()
		default:
			return r.Heuristic, nil
		}
	case types.FormatDoc:
		if r.Backend == types.BackendMarkitdown {
			return r.markitdown()
		}
		return nil, fmt.Errorf("legacy .doc files require the %s backend", types.BackendMarkitdown)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", doc.SourcePath)
	}
}

// Convert selects a converter for path and runs it.
func (r *Router) Convert(path string) (string, error) {
	c, err := r.Select(types.NewDocument(path))
	if err != nil {
		return "", err
	}
	return c.Convert(path)
}

func (r *Router) markitdown() (Converter, error) {
	r.once.Do(func() {
		if r.Markitdown == nil {
			r.mdErr = fmt.Errorf("%s backend not configured", types.BackendMarkitdown)
			return
		}
		r.mdConv, r.mdErr = r.Markitdown()
	})
	return r.mdConv, r.mdErr
}
