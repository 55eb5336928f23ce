package domain

// Chunk is the retrieval unit: a short span of source text with a stable id.
// Ids are sequential within one ingestion run (chunk_0, chunk_1, ...).
type Chunk struct {
	ID   string
	Text string
}

// VectorItem pairs a chunk id with its embedding for bulk insertion.
type VectorItem struct {
	ID     string
	Vector []float32
}

// SearchResult is one ranked hit from the vector index. The index stores ids
// and vectors only; chunk text lives in the metadata store.
type SearchResult struct {
	Score float64
	ID    string
}
