package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScratchStoreSaveAndRemove(t *testing.T) {
	store, err := NewScratchStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewScratchStore: %v", err)
	}

	path, err := store.Save("screenshot.png", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Ext(path) != ".png" {
		t.Errorf("saved path %s, want .png extension", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("saved content = %q", data)
	}

	store.Remove(path)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file still exists after Remove")
	}

	// Removing twice is harmless.
	store.Remove(path)
	store.Remove("")
}

func TestScratchStoreNilBody(t *testing.T) {
	store, err := NewScratchStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewScratchStore: %v", err)
	}
	if _, err := store.Save("x.png", nil); err == nil {
		t.Fatal("want error for nil body")
	}
}
