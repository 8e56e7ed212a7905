package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mkarlsen/motioncut/internal/errors"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFindVideoFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.mp4"))
	touch(t, filepath.Join(dir, "A.MKV"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, ".hidden.mp4"))
	if err := os.Mkdir(filepath.Join(dir, "sub.mp4"), 0755); err != nil {
		t.Fatal(err)
	}

	files, err := FindVideoFiles(dir)
	if err != nil {
		t.Fatalf("FindVideoFiles() error = %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}

	// Case-insensitive alphabetical order by filename.
	if filepath.Base(files[0]) != "A.MKV" || filepath.Base(files[1]) != "b.mp4" {
		t.Errorf("unexpected order: %v", files)
	}
}

func TestFindVideoFilesEmpty(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "readme.md"))

	_, err := FindVideoFiles(dir)
	if !errors.IsNoFilesFound(err) {
		t.Errorf("expected no-files-found error, got %v", err)
	}
}

func TestFindVideoFilesMissingDir(t *testing.T) {
	_, err := FindVideoFiles("/does/not/exist")
	if !errors.IsKind(err, errors.KindPath) {
		t.Errorf("expected path error, got %v", err)
	}
}
