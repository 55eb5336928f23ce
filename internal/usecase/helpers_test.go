package usecase

import (
	"fmt"

	"ragpipe/internal/domain"
)

// stubEmbedder maps known texts to fixed vectors so ranking is controllable.
type stubEmbedder struct {
	dim     int
	vectors map[string][]float32
}

func (e *stubEmbedder) Embed(text string) ([]float32, error) {
	if v, ok := e.vectors[text]; ok {
		return v, nil
	}
	return make([]float32, e.dim), nil
}

func (e *stubEmbedder) EmbedBatch(texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := e.Embed(t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (e *stubEmbedder) Dimension() int    { return e.dim }
func (e *stubEmbedder) ModelName() string { return "stub" }

// memMetadata is an in-memory MetadataStore.
type memMetadata struct {
	records map[string]string
}

func newMemMetadata() *memMetadata {
	return &memMetadata{}
}

func (m *memMetadata) Save(chunks []domain.Chunk) error {
	m.records = make(map[string]string, len(chunks))
	for _, c := range chunks {
		m.records[c.ID] = c.Text
	}
	return nil
}

func (m *memMetadata) Load() (map[string]string, error) {
	if len(m.records) == 0 {
		return nil, fmt.Errorf("chunk metadata: %w", domain.ErrNotFound)
	}
	return m.records, nil
}

func (m *memMetadata) Lookup(id string) (string, error) {
	text, ok := m.records[id]
	if !ok {
		return "", fmt.Errorf("chunk %s: %w", id, domain.ErrNotFound)
	}
	return text, nil
}

// stubIndex returns canned search results or a canned error.
type stubIndex struct {
	results []domain.SearchResult
	err     error
}

func (s *stubIndex) Create(name string, dimension int, spaceType string) error { return nil }

func (s *stubIndex) Insert(name string, items []domain.VectorItem) error { return nil }

func (s *stubIndex) Search(name string, vector []float32, k int) ([]domain.SearchResult, error) {
	return s.results, s.err
}

// countingGenerator records invocations.
type countingGenerator struct {
	calls  int
	answer string
}

func (g *countingGenerator) Generate(prompt string) (string, error) {
	g.calls++
	return g.answer, nil
}

func (g *countingGenerator) ModelName() string { return "counting" }
