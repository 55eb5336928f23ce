package metadata

import (
	"errors"
	"path/filepath"
	"testing"

	"ragpipe/internal/domain"
)

func openTestStore(t *testing.T) *BoltStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "metadata.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoad(t *testing.T) {
	s := openTestStore(t)

	chunks := []domain.Chunk{
		{ID: "chunk_0", Text: "First passage."},
		{ID: "chunk_1", Text: "Second passage."},
	}
	if err := s.Save(chunks); err != nil {
		t.Fatal(err)
	}

	m, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(m) != 2 {
		t.Fatalf("expected 2 records, got %d", len(m))
	}
	if m["chunk_0"] != "First passage." {
		t.Errorf("unexpected text for chunk_0: %q", m["chunk_0"])
	}
}

func TestLoadBeforeIngestion(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Load()
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound before first save, got %v", err)
	}
}

func TestSaveReplacesPriorContents(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save([]domain.Chunk{{ID: "chunk_0", Text: "old run"}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save([]domain.Chunk{{ID: "chunk_9", Text: "new run"}}); err != nil {
		t.Fatal(err)
	}

	m, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m["chunk_0"]; ok {
		t.Error("prior run's records should be gone after re-ingestion")
	}
	if m["chunk_9"] != "new run" {
		t.Errorf("expected new run's record, got %v", m)
	}
}

func TestLookup(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save([]domain.Chunk{{ID: "chunk_0", Text: "hello"}}); err != nil {
		t.Fatal(err)
	}

	text, err := s.Lookup("chunk_0")
	if err != nil {
		t.Fatal(err)
	}
	if text != "hello" {
		t.Errorf("expected 'hello', got %q", text)
	}

	_, err = s.Lookup("chunk_404")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing id, got %v", err)
	}
}
