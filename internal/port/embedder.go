package port

// Embedder generates vector embeddings for text. The same implementation must
// be used at ingestion and query time so both live in the same geometric space.
type Embedder interface {
	// Embed generates the embedding for a single text.
	Embed(text string) ([]float32, error)

	// EmbedBatch generates embeddings for the given texts, one vector per
	// input, aligned by position regardless of internal batching.
	EmbedBatch(texts []string) ([][]float32, error)

	// Dimension returns the embedding vector dimension.
	Dimension() int

	// ModelName returns the name of the embedding model.
	ModelName() string
}
