package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"msgmerge/internal/domain"
	"msgmerge/internal/domain/entities"
	"msgmerge/internal/ports/output"
)

// Ensure FileRepository implements the output.StoreRepository port.
var _ output.StoreRepository = (*FileRepository)(nil)

// FileRepository reads and writes the locale store as a single JSON file:
// a top-level object mapping locale code to a key → text object.
//
// Two concurrent runs against the same path are a last-writer-wins race;
// there is no file locking. Acceptable for a human-supervised maintenance
// batch, but do not script parallel invocations.
type FileRepository struct{}

func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// Load deserializes the store at path. The store must already exist: the
// merger only adds to locale tables, it never creates the file.
func (r *FileRepository) Load(path string) (entities.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrStoreNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var store entities.Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStoreParse, path, err)
	}
	if store == nil {
		return nil, fmt.Errorf("%w: %s: document is null", domain.ErrStoreParse, path)
	}
	return store, nil
}

// Save writes the canonical encoding of store to path, replacing the
// previous content. The write goes to a temp file in the same directory
// which is then renamed over the destination, so an interrupted run never
// leaves a truncated store behind.
func (r *FileRepository) Save(store entities.Store, path string) error {
	data, err := Encode(store)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrStoreWrite, path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrStoreWrite, path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %s: %v", domain.ErrStoreWrite, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %s: %v", domain.ErrStoreWrite, path, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %s: %v", domain.ErrStoreWrite, path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %s: %v", domain.ErrStoreWrite, path, err)
	}
	return nil
}

// Encode produces the canonical byte form of a store: locales and keys in
// ascending code-point order, two-space indentation, Unicode verbatim (no
// HTML escaping), trailing newline. Identical stores encode to identical
// bytes regardless of insertion order, which keeps diffs minimal.
func Encode(store entities.Store) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	// encoding/json already sorts map keys; the encoder settings carry the
	// rest of the canonical form.
	if err := enc.Encode(store); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
