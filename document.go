package tablesed

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid"

	"github.com/nystrom/tablesed/engine"
)

// LoadFile opens path and loads it as a table, per spec.md §6 "File
// format". The file is closed on every exit path (scoped acquisition,
// spec.md §5).
func LoadFile(path string, delims []byte, cfg engine.Config) (*engine.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErr(err)
	}
	defer f.Close()

	t, err := engine.LoadTable(f, delims, cfg)
	if err != nil {
		return nil, wrapEngineError(err)
	}
	return t, nil
}

// LoadFromFS is LoadFile's fs.FS-based counterpart, used by tests to
// exercise the load path against an in-memory mapfs.MapFS instead of
// the real filesystem.
func LoadFromFS(fsys fs.FS, name string, delims []byte, cfg engine.Config) (*engine.Table, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, ioErr(err)
	}
	defer f.Close()

	t, err := engine.LoadTable(f, delims, cfg)
	if err != nil {
		return nil, wrapEngineError(err)
	}
	return t, nil
}

// SaveFile writes t back to path atomically: it writes to a
// uuid-suffixed temp file in the same directory, syncs it, then renames
// it over path. This guarantees a crash mid-write never leaves path
// half-written (spec.md §5's "guaranteed release on every exit path"
// extended to the output file).
func SaveFile(path string, t *engine.Table) (err error) {
	dir := filepath.Dir(path)
	id, err := uuid.NewV4()
	if err != nil {
		return ioErr(err)
	}
	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+".tmp-"+id.String())

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return ioErr(err)
	}

	renamed := false
	defer func() {
		cerr := f.Close()
		if !renamed {
			_ = os.Remove(tmpPath)
		}
		if err == nil && cerr != nil {
			err = ioErr(cerr)
		}
	}()

	if werr := engine.SaveTable(f, t); werr != nil {
		return wrapEngineError(werr)
	}
	if serr := f.Sync(); serr != nil {
		return ioErr(serr)
	}
	if rerr := os.Rename(tmpPath, path); rerr != nil {
		return ioErr(rerr)
	}
	renamed = true
	return nil
}
