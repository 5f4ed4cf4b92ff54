package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AvengeMedia/switcher/internal/log"
	"github.com/spf13/afero"
)

// Output is the conventional artifact location, <dir>/<name>.json.
func Output(dir, name string) string {
	return filepath.Join(dir, name+".json")
}

// Emitter writes theme documents to a filesystem.
type Emitter struct {
	fs afero.Fs
}

func NewEmitter(fs afero.Fs) *Emitter {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Emitter{fs: fs}
}

// Emit encodes doc and replaces path with it. The data goes to a temp file
// in the same directory first and is renamed into place. If any step fails
// the previous artifact at path is removed as well, so a stale build is
// never left looking current.
func (e *Emitter) Emit(doc Document, path string) error {
	data, err := Encode(doc)
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	return e.WriteFile(path, data)
}

func (e *Emitter) WriteFile(path string, data []byte) (err error) {
	defer func() {
		if err == nil {
			return
		}
		if rmErr := e.fs.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Warnf("Failed to remove stale %s: %v", path, rmErr)
		}
	}()

	dir := filepath.Dir(path)
	if err := e.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(e.fs, dir, "."+filepath.Base(path)+".tmp-")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		if rmErr := e.fs.Remove(tmpName); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Debugf("Failed to remove temp file %s: %v", tmpName, rmErr)
		}
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := e.fs.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := e.fs.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("rename %s into place: %w", path, err)
	}

	log.Debugf("Wrote %d bytes to %s", len(data), path)
	return nil
}
