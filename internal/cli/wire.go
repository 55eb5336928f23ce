package cli

import (
	"fmt"
	"os"
	"time"

	"ragpipe/config"
	"ragpipe/internal/adapter/embedding"
	"ragpipe/internal/adapter/metadata"
	"ragpipe/internal/adapter/vectordb"
	"ragpipe/internal/port"
)

// buildEmbedder constructs the configured embedder and enforces the
// embedding-space invariant: its dimension must match the index dimension.
func buildEmbedder(cfg *config.Config) (port.Embedder, error) {
	timeout := time.Duration(cfg.Embedding.TimeoutSecs) * time.Second

	var embedder port.Embedder
	switch cfg.Embedding.Provider {
	case "openai":
		e, err := embedding.NewOpenAIEmbedder(
			cfg.Embedding.APIKeyEnv,
			cfg.Embedding.Model,
			cfg.Embedding.BaseURL,
			cfg.Embedding.Dimension,
			cfg.Embedding.BatchSize,
			timeout,
		)
		if err != nil {
			return nil, err
		}
		embedder = e
	case "ollama":
		embedder = embedding.NewOllamaEmbedder(
			cfg.Embedding.Model,
			cfg.Embedding.BaseURL,
			cfg.Embedding.Dimension,
			cfg.Embedding.BatchSize,
			timeout,
		)
	case "mock":
		embedder = embedding.NewMockEmbedder(cfg.Embedding.Dimension)
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s", cfg.Embedding.Provider)
	}

	if embedder.Dimension() != cfg.Index.Dimension {
		return nil, fmt.Errorf("embedder dimension %d does not match index dimension %d",
			embedder.Dimension(), cfg.Index.Dimension)
	}
	return embedder, nil
}

func buildIndexClient(cfg *config.Config) *vectordb.RemoteIndex {
	var token string
	if cfg.Index.AuthTokenEnv != "" {
		token = os.Getenv(cfg.Index.AuthTokenEnv)
	}
	return vectordb.NewRemoteIndex(
		cfg.Index.BaseURL,
		token,
		time.Duration(cfg.Index.TimeoutSecs)*time.Second,
	)
}

func openMetadataStore(cfg *config.Config, rootDir string) (*metadata.BoltStore, error) {
	if err := config.EnsureRAGDir(rootDir); err != nil {
		return nil, fmt.Errorf("failed to create .rag directory: %w", err)
	}
	store, err := metadata.Open(config.MetadataDBPath(rootDir, cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open metadata store: %w", err)
	}
	return store, nil
}
