package port

// Chunker splits raw document text into short passages suitable for embedding.
type Chunker interface {
	// Split returns the passages in document order. Empty or whitespace-only
	// input yields no passages.
	Split(text string) []string
}
