package port

import "ragpipe/internal/domain"

// MetadataStore is the single source of truth for chunk text, keyed by the
// same id space the vector index uses.
type MetadataStore interface {
	// Save persists the full id -> text mapping for one ingestion run,
	// replacing any prior contents.
	Save(chunks []domain.Chunk) error

	// Load returns the complete mapping. Fails with domain.ErrNotFound when
	// no ingestion has been run.
	Load() (map[string]string, error)

	// Lookup returns the text for one chunk id, or domain.ErrNotFound.
	Lookup(id string) (string, error)
}
