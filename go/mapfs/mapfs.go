// Package mapfs is an in-memory fs.FS backed by a map of file contents,
// used by the root package's tests to exercise table loading without
// touching the real filesystem.
package mapfs

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"time"
)

// MapFS maps a file name to its literal contents.
type MapFS map[string]string

var _ fs.FS = (*MapFS)(nil)

func (m MapFS) Open(filename string) (fs.File, error) {
	if filename == "." {
		entries := make([]fs.DirEntry, 0, len(m))
		for name, content := range m {
			entries = append(entries, fileDirEntry{name: name, size: int64(len(content))})
		}
		return &virtualDir{entries: entries}, nil
	}

	content, ok := m[filename]
	if !ok {
		return nil, fmt.Errorf("%w: %s", fs.ErrNotExist, filename)
	}
	return &memFile{name: filename, Reader: bytes.NewReader([]byte(content)), size: int64(len(content))}, nil
}

// Set stores content under name, overwriting any prior content.
func (m MapFS) Set(name, content string) {
	m[name] = content
}

// memFile implements fs.File over an in-memory byte slice.
type memFile struct {
	*bytes.Reader
	name string
	size int64
}

func (f *memFile) Stat() (fs.FileInfo, error) {
	return fileDirEntry{name: f.name, size: f.size}, nil
}

func (f *memFile) Close() error { return nil }

// virtualDir implements fs.File + fs.ReadDirFile for the "." root listing.
type virtualDir struct {
	entries []fs.DirEntry
	pos     int
}

func (d *virtualDir) Stat() (fs.FileInfo, error) {
	return fileDirEntry{name: ".", mode: fs.ModeDir}, nil
}

func (d *virtualDir) Read([]byte) (int, error) {
	return 0, io.EOF
}

func (d *virtualDir) Close() error { return nil }

func (d *virtualDir) ReadDir(n int) ([]fs.DirEntry, error) {
	if d.pos >= len(d.entries) {
		return nil, io.EOF
	}
	if n <= 0 || d.pos+n > len(d.entries) {
		n = len(d.entries) - d.pos
	}
	entries := d.entries[d.pos : d.pos+n]
	d.pos += n
	return entries, nil
}

// fileDirEntry implements both fs.DirEntry and fs.FileInfo.
type fileDirEntry struct {
	name string
	size int64
	mode fs.FileMode
}

func (e fileDirEntry) Name() string               { return e.name }
func (e fileDirEntry) IsDir() bool                { return e.mode.IsDir() }
func (e fileDirEntry) Type() fs.FileMode          { return e.mode.Type() }
func (e fileDirEntry) Info() (fs.FileInfo, error) { return e, nil }
func (e fileDirEntry) Size() int64                { return e.size }
func (e fileDirEntry) Mode() fs.FileMode          { return e.mode }
func (e fileDirEntry) ModTime() time.Time         { return time.Time{} }
func (e fileDirEntry) Sys() interface{}           { return nil }
