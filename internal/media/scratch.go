// Package media stores uploaded images on disk for the duration of a
// single request.
package media

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// ScratchStore writes uploads to a local directory (typically /tmp).
// Files live only as long as the request that created them; callers
// remove them via Remove on every exit path.
type ScratchStore struct {
	BaseDir string
}

// NewScratchStore constructs a store rooted at the provided directory.
// If baseDir is empty, os.TempDir() is used.
func NewScratchStore(baseDir string) (*ScratchStore, error) {
	dir := baseDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	return &ScratchStore{BaseDir: dir}, nil
}

// Save writes the incoming content to a temp file and returns its
// absolute path.
func (s *ScratchStore) Save(filename string, body io.Reader) (string, error) {
	if body == nil {
		return "", fmt.Errorf("upload body is required")
	}

	ext := filepath.Ext(filename)
	if len(ext) > 10 {
		ext = ext[:10]
	}

	tmpFile, err := os.CreateTemp(s.BaseDir, "colorui-*"+ext)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer tmpFile.Close()

	if _, err := io.Copy(tmpFile, body); err != nil {
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}
	return tmpFile.Name(), nil
}

// Remove deletes a previously saved file. Missing files are not an
// error; other failures are logged and swallowed so cleanup never
// interrupts a response.
func (s *ScratchStore) Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("scratch cleanup %s: %v", path, err)
	}
}
