// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive packages converted Markdown documents into a zip file.
package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/klauspost/compress/zip"
)

// DefaultName is the archive file name used when none is configured.
const DefaultName = "converted-markdown-files.zip"

// Packager collects file name to Markdown pairs in memory and writes them as
// a zip archive. It satisfies the convert.Sink interface. A later Write for
// the same name replaces the earlier content.
type Packager struct {
	mu      sync.Mutex
	files   map[string]string
	modTime time.Time
}

// NewPackager returns an empty Packager stamping entries with modTime.
func NewPackager(modTime time.Time) *Packager {
	return &Packager{files: make(map[string]string), modTime: modTime}
}

// Exists always reports false: an archive is built fresh on every run.
func (p *Packager) Exists(string) bool { return false }

// Write stores content under name.
func (p *Packager) Write(name, content string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.files[name] = content
	return nil
}

// Len returns the number of collected files.
func (p *Packager) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.files)
}

// WriteTo writes the archive to w with entries sorted by name.
func (p *Packager) WriteTo(w io.Writer) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	names := make([]string, 0, len(p.files))
	for name := range p.files {
		names = append(names, name)
	}
	sort.Strings(names)

	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)
	for _, name := range names {
		hdr := &zip.FileHeader{Name: name, Method: zip.Deflate, Modified: p.modTime}
		fw, err := zw.CreateHeader(hdr)
		if err != nil {
			return cw.n, fmt.Errorf("adding %s to archive: %w", name, err)
		}
		if _, err := io.WriteString(fw, p.files[name]); err != nil {
			return cw.n, fmt.Errorf("writing %s to archive: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("finishing archive: %w", err)
	}
	return cw.n, nil
}

// Save writes the archive to path, creating parent directories as needed.
func (p *Packager) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating archive directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating archive %s: %w", path, err)
	}
	if _, err := p.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
