package port

import "ragpipe/internal/domain"

// VectorIndex is the narrow capability the pipeline needs from a vector store:
// provision an index, bulk-insert vectors, and run top-k similarity search.
type VectorIndex interface {
	// Create provisions an index. It is not idempotent; creating an existing
	// index is an error surfaced by the store, not masked here.
	Create(name string, dimension int, spaceType string) error

	// Insert bulk-inserts vectors. Partial failure is reported as a single
	// error for the whole batch.
	Insert(name string, items []domain.VectorItem) error

	// Search returns the k best matches ranked by the index's space type.
	Search(name string, vector []float32, k int) ([]domain.SearchResult, error)
}
