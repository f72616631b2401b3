// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRuntime implements container.Runtime for testing.
type fakeRuntime struct {
	imageErr error
	runErr   error
	output   string
	gotInput string
}

func (f *fakeRuntime) Name() string    { return "docker" }
func (f *fakeRuntime) Available() bool { return true }

func (f *fakeRuntime) ImageExists(image string) error { return f.imageErr }

func (f *fakeRuntime) Run(image string, stdin io.Reader, stdout io.Writer) error {
	data, _ := io.ReadAll(stdin)
	f.gotInput = string(data)
	if f.runErr != nil {
		return f.runErr
	}
	_, err := io.WriteString(stdout, f.output)
	return err
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewMarkitdownConverter_MissingImage(t *testing.T) {
	_, err := NewMarkitdownConverter(&fakeRuntime{imageErr: errors.New("no such image")})
	assert.ErrorContains(t, err, "markitdown image not available in docker")
}

func TestMarkitdownConverter_Convert(t *testing.T) {
	rt := &fakeRuntime{output: "# Report\n\nBody\n"}
	m, err := NewMarkitdownConverter(rt)
	require.NoError(t, err)
	m.now = func() time.Time { return time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC) }

	path := writeSource(t, "report.docx", "docx bytes")
	got, err := m.Convert(path)
	require.NoError(t, err)

	assert.Equal(t, "docx bytes", rt.gotInput)
	assert.Equal(t, "---\nconverted: true\ndate: 2026-10-16\n---\n\n# Report\n\nBody\n", got)
	assert.Equal(t, "markitdown", m.Name())
}

func TestMarkitdownConverter_Errors(t *testing.T) {
	path := writeSource(t, "report.docx", "docx bytes")

	m, err := NewMarkitdownConverter(&fakeRuntime{runErr: errors.New("container crashed")})
	require.NoError(t, err)
	_, err = m.Convert(path)
	assert.ErrorContains(t, err, "container crashed")

	m, err = NewMarkitdownConverter(&fakeRuntime{})
	require.NoError(t, err)
	_, err = m.Convert(path)
	assert.ErrorContains(t, err, "empty output")

	_, err = m.Convert(filepath.Join(t.TempDir(), "missing.docx"))
	assert.Error(t, err)
}
