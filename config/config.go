package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the RAG pipeline. Index name, dimension,
// space type, and model are threaded explicitly through the constructors so
// ingestion and query runs stay provably consistent.
type Config struct {
	Index     IndexConfig     `yaml:"index"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Ingest    IngestConfig    `yaml:"ingest"`
	Retrieve  RetrieveConfig  `yaml:"retrieve"`
	Metadata  MetadataConfig  `yaml:"metadata"`
	Server    ServerConfig    `yaml:"server"`
}

// IndexConfig describes the remote vector index.
type IndexConfig struct {
	BaseURL      string `yaml:"base_url"`
	Name         string `yaml:"name"`
	Dimension    int    `yaml:"dimension"`
	SpaceType    string `yaml:"space_type"` // "cosine", "l2", "ip"
	AuthTokenEnv string `yaml:"auth_token_env"`
	TimeoutSecs  int    `yaml:"timeout_secs"`
}

// EmbeddingConfig holds embedding configuration.
type EmbeddingConfig struct {
	Provider    string `yaml:"provider"` // "openai", "ollama", "mock"
	BaseURL     string `yaml:"base_url"`
	Model       string `yaml:"model"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Dimension   int    `yaml:"dimension"`
	BatchSize   int    `yaml:"batch_size"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// IngestConfig holds ingestion configuration.
type IngestConfig struct {
	Includes          []string `yaml:"includes"`
	Excludes          []string `yaml:"excludes"`
	SentencesPerChunk int      `yaml:"sentences_per_chunk"`
}

// RetrieveConfig holds retrieval configuration.
type RetrieveConfig struct {
	TopK         int `yaml:"top_k"`
	CacheSize    int `yaml:"cache_size"` // 0 disables the answer cache
	CacheTTLSecs int `yaml:"cache_ttl_secs"`
}

// MetadataConfig holds metadata store configuration.
type MetadataConfig struct {
	Path string `yaml:"path"` // relative paths resolve against the root dir
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Index: IndexConfig{
			BaseURL:     "http://localhost:8080",
			Name:        "rag_index",
			Dimension:   384,
			SpaceType:   "cosine",
			TimeoutSecs: 10,
		},
		Embedding: EmbeddingConfig{
			Provider:    "ollama",
			BaseURL:     "http://localhost:11434/v1",
			Model:       "all-minilm",
			APIKeyEnv:   "OPENAI_API_KEY",
			Dimension:   384,
			BatchSize:   32,
			TimeoutSecs: 60,
		},
		Ingest: IngestConfig{
			Includes:          []string{"**/*.txt", "**/*.md"},
			Excludes:          []string{"**/.git/**", "**/.rag/**"},
			SentencesPerChunk: 3,
		},
		Retrieve: RetrieveConfig{
			TopK:         3,
			CacheSize:    100,
			CacheTTLSecs: 300,
		},
		Metadata: MetadataConfig{
			Path: filepath.Join(".rag", "metadata.db"),
		},
		Server: ServerConfig{
			Addr: ":8000",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for ragpipe.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "ragpipe.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".rag", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks invariants that span sections. A dimension mismatch between
// the embedding model and the index is fatal, not recoverable.
func (c *Config) Validate() error {
	switch c.Index.SpaceType {
	case "cosine", "l2", "ip":
	default:
		return fmt.Errorf("invalid space_type %q (want cosine, l2, or ip)", c.Index.SpaceType)
	}
	if c.Index.Dimension <= 0 {
		return fmt.Errorf("index dimension must be positive, got %d", c.Index.Dimension)
	}
	if c.Embedding.Dimension != c.Index.Dimension {
		return fmt.Errorf("embedding dimension %d does not match index dimension %d",
			c.Embedding.Dimension, c.Index.Dimension)
	}
	if c.Retrieve.TopK <= 0 {
		return fmt.Errorf("top_k must be positive, got %d", c.Retrieve.TopK)
	}
	return nil
}

// MetadataDBPath returns the metadata store path resolved against dir.
func MetadataDBPath(dir string, c *Config) string {
	if filepath.IsAbs(c.Metadata.Path) {
		return c.Metadata.Path
	}
	return filepath.Join(dir, c.Metadata.Path)
}

// EnsureRAGDir ensures the .rag directory exists.
func EnsureRAGDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".rag"), 0755)
}
