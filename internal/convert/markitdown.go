// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/pdiddy/txt2md/internal/container"
	"github.com/pdiddy/txt2md/internal/synth"
	"github.com/pdiddy/txt2md/pkg/types"
)

const imageMarkitdown = "markitdown:latest"

// MarkitdownConverter converts word-processor files by piping them through
// the markitdown container image. It depends on a container.Runtime (docker
// or podman) injected at construction time.
type MarkitdownConverter struct {
	runtime container.Runtime
	now     func() time.Time
}

// NewMarkitdownConverter creates a converter that uses the given container
// runtime to run the markitdown image. It verifies that the markitdown image
// exists locally before returning.
func NewMarkitdownConverter(rt container.Runtime) (*MarkitdownConverter, error) {
	if err := rt.ImageExists(imageMarkitdown); err != nil {
		return nil, fmt.Errorf("markitdown image not available in %s: %w", rt.Name(), err)
	}
	return &MarkitdownConverter{runtime: rt, now: time.Now}, nil
}

func (m *MarkitdownConverter) Name() string { return string(types.BackendMarkitdown) }

// Convert pipes the file at path through the markitdown container and returns
// the resulting Markdown under the standard frontmatter.
func (m *MarkitdownConverter) Convert(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := m.runtime.Run(imageMarkitdown, f, &out); err != nil {
		return "", fmt.Errorf("converting %s with markitdown: %w", path, err)
	}

	if out.Len() == 0 {
		return "", fmt.Errorf("markitdown produced empty output for %s", path)
	}

	return synth.PrependFrontmatter(out.String(), m.now()), nil
}
