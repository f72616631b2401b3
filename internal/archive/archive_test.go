// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEntries(t *testing.T, r *zip.Reader) map[string]string {
	t.Helper()
	got := make(map[string]string)
	for _, f := range r.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		got[f.Name] = string(data)
	}
	return got
}

func TestPackagerWriteTo(t *testing.T) {
	p := NewPackager(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, p.Write("b.md", "# B\n"))
	require.NoError(t, p.Write("a.md", "# A\n"))
	require.NoError(t, p.Write("b.md", "# B again\n"))
	assert.False(t, p.Exists("a.md"))
	assert.Equal(t, 2, p.Len())

	var buf bytes.Buffer
	n, err := p.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "a.md", zr.File[0].Name)
	assert.Equal(t, "b.md", zr.File[1].Name)
	assert.Equal(t, map[string]string{"a.md": "# A\n", "b.md": "# B again\n"}, readEntries(t, zr))
}

func TestPackagerSave(t *testing.T) {
	p := NewPackager(time.Now())
	require.NoError(t, p.Write("notes.md", "body"))

	path := filepath.Join(t.TempDir(), "out", DefaultName)
	require.NoError(t, p.Save(path))

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()
	assert.Equal(t, map[string]string{"notes.md": "body"}, readEntries(t, &zr.Reader))
}

func TestPackagerEmpty(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewPackager(time.Now()).WriteTo(&buf)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Empty(t, zr.File)
}
