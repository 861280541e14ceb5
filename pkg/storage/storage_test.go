package storage

import (
	"path/filepath"
	"testing"
)

func TestSaveAndReadFile(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "nested", "dir", "init.pp")
	content := []byte("class apache {}\n")

	if err := s.SaveFile(path, content); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	got, err := s.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("ReadFile() = %q, want %q", got, content)
	}
}

func TestHasFile(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "present.pp")

	if s.HasFile(path) {
		t.Error("HasFile() = true for missing file")
	}
	if err := s.SaveFile(path, []byte("x")); err != nil {
		t.Fatal(err)
	}
	if !s.HasFile(path) {
		t.Error("HasFile() = false for saved file")
	}
}
