package usecase

import (
	"errors"
	"fmt"

	"ragpipe/internal/domain"
	"ragpipe/internal/port"
)

// Retriever turns a question into ranked chunk texts: embed the question,
// search the vector index, map ids through the metadata store in rank order.
// The embedder must be the same model used at ingestion.
type Retriever struct {
	embedder  port.Embedder
	index     port.VectorIndex
	metadata  port.MetadataStore
	indexName string
}

func NewRetriever(embedder port.Embedder, index port.VectorIndex, metadata port.MetadataStore, indexName string) *Retriever {
	return &Retriever{
		embedder:  embedder,
		index:     index,
		metadata:  metadata,
		indexName: indexName,
	}
}

func (r *Retriever) Retrieve(question string, k int) ([]string, error) {
	vector, err := r.embedder.Embed(question)
	if err != nil {
		return nil, fmt.Errorf("failed to embed question: %w", err)
	}

	results, err := r.index.Search(r.indexName, vector, k)
	if err != nil {
		// An undecodable response means "no relevant context", not a failure.
		var decodeErr *domain.DecodeError
		if errors.As(err, &decodeErr) {
			return nil, nil
		}
		return nil, fmt.Errorf("vector search failed: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	meta, err := r.metadata.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load chunk metadata: %w", err)
	}

	// Missing metadata degrades to a visible sentinel instead of dropping the
	// entry, so count and rank positions stay aligned with the search hits.
	texts := make([]string, 0, len(results))
	for _, result := range results {
		if text, ok := meta[result.ID]; ok {
			texts = append(texts, text)
		} else {
			texts = append(texts, fmt.Sprintf("[No text for id: %s]", result.ID))
		}
	}
	return texts, nil
}
