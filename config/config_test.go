package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Index.Name != "rag_index" {
		t.Errorf("expected index name 'rag_index', got %q", cfg.Index.Name)
	}
	if cfg.Index.Dimension != 384 {
		t.Errorf("expected dimension 384, got %d", cfg.Index.Dimension)
	}
	if cfg.Index.SpaceType != "cosine" {
		t.Errorf("expected space_type 'cosine', got %q", cfg.Index.SpaceType)
	}
	if cfg.Ingest.SentencesPerChunk != 3 {
		t.Errorf("expected 3 sentences per chunk, got %d", cfg.Ingest.SentencesPerChunk)
	}
	if cfg.Retrieve.TopK != 3 {
		t.Errorf("expected top_k 3, got %d", cfg.Retrieve.TopK)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "ragpipe.yaml")

	content := `
index:
  name: my_index
  dimension: 768
embedding:
  provider: openai
  dimension: 768
retrieve:
  top_k: 5
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Index.Name != "my_index" {
		t.Errorf("expected index name 'my_index', got %q", cfg.Index.Name)
	}
	if cfg.Index.Dimension != 768 {
		t.Errorf("expected dimension 768, got %d", cfg.Index.Dimension)
	}
	if cfg.Retrieve.TopK != 5 {
		t.Errorf("expected top_k 5, got %d", cfg.Retrieve.TopK)
	}
	// Untouched sections keep defaults.
	if cfg.Index.SpaceType != "cosine" {
		t.Errorf("expected default space_type 'cosine', got %q", cfg.Index.SpaceType)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "ragpipe.yaml")

	content := `
server:
  addr: ":9000"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":9000" {
		t.Errorf("expected addr ':9000', got %q", cfg.Server.Addr)
	}
}

func TestValidate_BadSpaceType(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Index.SpaceType = "euclidean"

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid space_type")
	}
}

func TestValidate_DimensionMismatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Embedding.Dimension = 1536

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for embedding/index dimension mismatch")
	}
}

func TestMetadataDBPath(t *testing.T) {
	cfg := DefaultConfig()
	path := MetadataDBPath("/home/user/project", cfg)
	expected := filepath.Join("/home/user/project", ".rag", "metadata.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}

	cfg.Metadata.Path = "/var/lib/rag/meta.db"
	if got := MetadataDBPath("/home/user/project", cfg); got != "/var/lib/rag/meta.db" {
		t.Errorf("absolute path should win, got %s", got)
	}
}
