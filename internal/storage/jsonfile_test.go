package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteThenReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")

	in := map[string]int64{"a": 1, "b": -2}
	if err := WriteJSON(path, in); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := map[string]int64{}
	if err := ReadJSON(path, &out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out["a"] != 1 || out["b"] != -2 {
		t.Fatalf("round trip mismatch: %v", out)
	}
}

func TestReadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	var v map[string]any
	err := ReadJSON(path, &v)
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestReadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	var v map[string]any
	err := ReadJSON(path, &v)
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestWriteReplacesExistingDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")

	if err := WriteJSON(path, map[string]string{"v": "one"}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteJSON(path, map[string]string{"v": "two"}); err != nil {
		t.Fatalf("second write: %v", err)
	}

	out := map[string]string{}
	if err := ReadJSON(path, &out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out["v"] != "two" {
		t.Fatalf("expected replaced document, got %v", out)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %d entries", len(entries))
	}
}
