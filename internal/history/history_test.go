// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/txt2md/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.HistoryConfig{DBPath: filepath.Join(t.TempDir(), "nested", "history.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seed(t *testing.T, s *Store) {
	t.Helper()
	base := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	recs := []types.ConversionRecord{
		{Source: "a.txt", Output: "a.md", Format: types.FormatText, Backend: "heuristic",
			Status: types.ConversionDone, Bytes: 42, ConvertedAt: base},
		{Source: "b.docx", Output: "b.md", Format: types.FormatDocx, Backend: "markitdown",
			Status: types.ConversionFailed, Error: "no runtime", ConvertedAt: base.Add(time.Minute)},
		{Source: "c.html", Output: "c.md", Format: types.FormatHTML, Backend: "rich",
			Status: types.ConversionDone, Bytes: 7, ConvertedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range recs {
		require.NoError(t, s.Record(context.Background(), r))
	}
}

func TestListNewestFirst(t *testing.T) {
	s := testStore(t)
	seed(t, s)

	got, err := s.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "c.html", got[0].Source)
	assert.Equal(t, "b.docx", got[1].Source)
	assert.Equal(t, "a.txt", got[2].Source)

	assert.Equal(t, types.ConversionFailed, got[1].Status)
	assert.Equal(t, "no runtime", got[1].Error)
	assert.Equal(t, types.FormatDocx, got[1].Format)
	assert.Equal(t, 42, got[2].Bytes)
	assert.NotZero(t, got[0].ID)
	assert.True(t, got[2].ConvertedAt.Equal(time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)))
}

func TestListLimit(t *testing.T) {
	s := testStore(t)
	seed(t, s)

	got, err := s.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListEmpty(t *testing.T) {
	got, err := testStore(t).List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecordDefaultsTime(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Record(context.Background(), types.ConversionRecord{
		Source: "x.txt", Output: "x.md", Format: types.FormatText, Status: types.ConversionDone,
	}))
	got, err := s.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].ConvertedAt.IsZero())
}

func TestReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := NewStore(types.HistoryConfig{DBPath: path})
	require.NoError(t, err)
	seed(t, s)
	require.NoError(t, s.Close())

	s, err = NewStore(types.HistoryConfig{DBPath: path})
	require.NoError(t, err)
	defer s.Close()
	got, err := s.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestExportYAML(t *testing.T) {
	s := testStore(t)
	seed(t, s)

	var buf bytes.Buffer
	require.NoError(t, s.Export(context.Background(), &buf, FormatYAML, 0))

	var got []types.ConversionRecord
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "c.md", got[0].Output)
	assert.Contains(t, buf.String(), "status: failed")
}

func TestExportJSON(t *testing.T) {
	s := testStore(t)
	seed(t, s)

	var buf bytes.Buffer
	require.NoError(t, s.Export(context.Background(), &buf, FormatJSON, 1))

	var got []types.ConversionRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "rich", got[0].Backend)
}

func TestExportUnknownFormat(t *testing.T) {
	s := testStore(t)
	err := s.Export(context.Background(), &bytes.Buffer{}, "csv", 0)
	assert.ErrorContains(t, err, "unknown export format")
}
