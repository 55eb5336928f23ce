package usecase

import (
	"fmt"
	"os"

	"ragpipe/internal/adapter/fs"
	"ragpipe/internal/domain"
	"ragpipe/internal/port"
)

// IngestUseCase runs one ingestion batch: chunk documents, embed the chunks,
// persist the metadata, and bulk-insert vectors into the remote index. Any
// error aborts the whole run; a one-shot batch job has no partial-success
// concept worth preserving.
type IngestUseCase struct {
	chunker   port.Chunker
	embedder  port.Embedder
	index     port.VectorIndex
	metadata  port.MetadataStore
	indexName string
	batchSize int
	progress  func(done, total int)
}

func NewIngestUseCase(
	chunker port.Chunker,
	embedder port.Embedder,
	index port.VectorIndex,
	metadata port.MetadataStore,
	indexName string,
	batchSize int,
) *IngestUseCase {
	if batchSize <= 0 {
		batchSize = 32
	}
	return &IngestUseCase{
		chunker:   chunker,
		embedder:  embedder,
		index:     index,
		metadata:  metadata,
		indexName: indexName,
		batchSize: batchSize,
	}
}

// SetProgress installs a per-batch embedding progress callback.
func (u *IngestUseCase) SetProgress(fn func(done, total int)) {
	u.progress = fn
}

// IngestResult summarizes one ingestion run.
type IngestResult struct {
	Documents int
	Chunks    int
}

// Ingest reads and ingests the given document files. Chunk ids are sequential
// across the whole run, matching the id space the metadata store and the
// vector index share.
func (u *IngestUseCase) Ingest(paths []string) (*IngestResult, error) {
	var chunks []domain.Chunk
	documents := 0

	for _, path := range paths {
		content, err := fs.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("source document %s: %w", path, domain.ErrNotFound)
			}
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		for _, text := range u.chunker.Split(content) {
			chunks = append(chunks, domain.Chunk{
				ID:   fmt.Sprintf("chunk_%d", len(chunks)),
				Text: text,
			})
		}
		documents++
	}

	if len(chunks) == 0 {
		return nil, fmt.Errorf("nothing to ingest: documents contain no text: %w", domain.ErrEmptyInput)
	}

	vectors, err := u.embedChunks(chunks)
	if err != nil {
		return nil, err
	}

	if err := u.metadata.Save(chunks); err != nil {
		return nil, fmt.Errorf("failed to save chunk metadata: %w", err)
	}

	items := make([]domain.VectorItem, len(chunks))
	for i, chunk := range chunks {
		items[i] = domain.VectorItem{ID: chunk.ID, Vector: vectors[i]}
	}
	if err := u.index.Insert(u.indexName, items); err != nil {
		return nil, fmt.Errorf("failed to insert vectors: %w", err)
	}

	return &IngestResult{Documents: documents, Chunks: len(chunks)}, nil
}

// embedChunks embeds in batches so progress can be reported; chunk-to-vector
// alignment by position holds regardless of the batching.
func (u *IngestUseCase) embedChunks(chunks []domain.Chunk) ([][]float32, error) {
	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	var vectors [][]float32
	for i := 0; i < len(texts); i += u.batchSize {
		end := i + u.batchSize
		if end > len(texts) {
			end = len(texts)
		}

		batch, err := u.embedder.EmbedBatch(texts[i:end])
		if err != nil {
			return nil, fmt.Errorf("failed to embed chunks: %w", err)
		}
		vectors = append(vectors, batch...)

		if u.progress != nil {
			u.progress(end, len(texts))
		}
	}

	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("embedding count mismatch: %d chunks, %d vectors", len(chunks), len(vectors))
	}
	return vectors, nil
}
