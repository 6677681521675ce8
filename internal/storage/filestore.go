package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps generated assets on the local filesystem. The presence of
// a file is the only cache signal: an existing artifact is never regenerated.
type FileStore struct {
	root string
}

// NewFileStore initializes a FileStore that resolves relative paths against
// root. An empty root means the working directory.
func NewFileStore(root string) *FileStore {
	return &FileStore{root: strings.TrimSpace(root)}
}

// Root returns the configured root directory.
func (s *FileStore) Root() string {
	if s == nil {
		return ""
	}
	return s.root
}

// Path resolves p against the store root.
func (s *FileStore) Path(p string) string {
	if filepath.IsAbs(p) || s.root == "" {
		return filepath.Clean(p)
	}
	return filepath.Join(s.root, p)
}

// Exists reports whether a regular file is present at p.
func (s *FileStore) Exists(p string) bool {
	info, err := os.Stat(s.Path(p))
	return err == nil && !info.IsDir()
}

// Size returns the size in bytes of the file at p.
func (s *FileStore) Size(p string) (int64, error) {
	info, err := os.Stat(s.Path(p))
	if err != nil {
		return 0, fmt.Errorf("storage: stat: %w", err)
	}
	return info.Size(), nil
}

// Read returns the contents of the file at p.
func (s *FileStore) Read(p string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(p))
	if err != nil {
		return nil, fmt.Errorf("storage: read file: %w", err)
	}
	return data, nil
}

// Open opens the file at p for reading.
func (s *FileStore) Open(p string) (*os.File, error) {
	f, err := os.Open(s.Path(p))
	if err != nil {
		return nil, fmt.Errorf("storage: open file: %w", err)
	}
	return f, nil
}

// Write persists data at p, creating parent directories.
func (s *FileStore) Write(p string, data []byte) error {
	_, err := s.WriteStream(p, bytes.NewReader(data))
	return err
}

// WriteStream copies r into p and returns the number of bytes written. The
// data lands in a temporary file next to p and is renamed into place only
// after a complete copy, so an interrupted transfer leaves no artifact behind.
func (s *FileStore) WriteStream(p string, r io.Reader) (int64, error) {
	if s == nil {
		return 0, errors.New("storage: no store configured")
	}
	if strings.TrimSpace(p) == "" {
		return 0, errors.New("storage: path is required")
	}
	fullPath := s.Path(p)
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("storage: ensure directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(fullPath)+".*.part")
	if err != nil {
		return 0, fmt.Errorf("storage: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	n, err := io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpName)
		return n, fmt.Errorf("storage: write file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return n, fmt.Errorf("storage: chmod: %w", err)
	}
	if err := os.Rename(tmpName, fullPath); err != nil {
		os.Remove(tmpName)
		return n, fmt.Errorf("storage: rename: %w", err)
	}
	return n, nil
}

// Backup copies p into backupDir under the same base name. An existing
// backup is never overwritten. It returns the backup path and whether a copy
// was made.
func (s *FileStore) Backup(p, backupDir string) (string, bool, error) {
	target := filepath.Join(backupDir, filepath.Base(p))
	if s.Exists(target) {
		return s.Path(target), false, nil
	}

	src, err := s.Open(p)
	if err != nil {
		return "", false, err
	}
	defer src.Close()

	if _, err := s.WriteStream(target, src); err != nil {
		return "", false, fmt.Errorf("storage: backup: %w", err)
	}
	return s.Path(target), true, nil
}
