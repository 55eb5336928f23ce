package vectordb

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"ragpipe/internal/domain"
)

// MemoryIndex implements the VectorIndex port in process, with brute-force
// ranking. It backs tests so retrieval correctness never depends on a running
// index service, and mirrors the remote store's behavior, including the
// duplicate-create error.
type MemoryIndex struct {
	mu      sync.RWMutex
	indexes map[string]*memIndex
}

type memIndex struct {
	dimension int
	spaceType string
	ids       []string
	vectors   map[string][]float32
}

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{indexes: make(map[string]*memIndex)}
}

func (m *MemoryIndex) Create(name string, dimension int, spaceType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.indexes[name]; exists {
		return &domain.ConfigError{Msg: fmt.Sprintf("index %q already exists", name)}
	}
	switch spaceType {
	case "cosine", "l2", "ip":
	default:
		return &domain.ConfigError{Msg: fmt.Sprintf("unknown space type %q", spaceType)}
	}
	if dimension <= 0 {
		return &domain.ConfigError{Msg: fmt.Sprintf("invalid dimension %d", dimension)}
	}

	m.indexes[name] = &memIndex{
		dimension: dimension,
		spaceType: spaceType,
		vectors:   make(map[string][]float32),
	}
	return nil
}

func (m *MemoryIndex) Insert(name string, items []domain.VectorItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx, ok := m.indexes[name]
	if !ok {
		return fmt.Errorf("index %q: %w", name, domain.ErrNotFound)
	}
	for _, item := range items {
		if len(item.Vector) != idx.dimension {
			return &domain.ConfigError{Msg: fmt.Sprintf(
				"vector dimension mismatch for %s: expected %d, got %d",
				item.ID, idx.dimension, len(item.Vector))}
		}
	}
	for _, item := range items {
		if _, seen := idx.vectors[item.ID]; !seen {
			idx.ids = append(idx.ids, item.ID)
		}
		idx.vectors[item.ID] = item.Vector
	}
	return nil
}

func (m *MemoryIndex) Search(name string, vector []float32, k int) ([]domain.SearchResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx, ok := m.indexes[name]
	if !ok {
		return nil, fmt.Errorf("index %q: %w", name, domain.ErrNotFound)
	}
	if len(vector) != idx.dimension {
		return nil, &domain.ConfigError{Msg: fmt.Sprintf(
			"query dimension mismatch: expected %d, got %d", idx.dimension, len(vector))}
	}
	if len(idx.ids) == 0 || k <= 0 {
		return nil, nil
	}

	results := make([]domain.SearchResult, 0, len(idx.ids))
	for _, id := range idx.ids {
		results = append(results, domain.SearchResult{
			ID:    id,
			Score: score(idx.spaceType, vector, idx.vectors[id]),
		})
	}

	// Higher score is always better: l2 stores the negated distance.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k > len(results) {
		k = len(results)
	}
	return results[:k], nil
}

func score(spaceType string, a, b []float32) float64 {
	switch spaceType {
	case "l2":
		var sum float64
		for i := range a {
			d := float64(a[i]) - float64(b[i])
			sum += d * d
		}
		return -math.Sqrt(sum)
	case "ip":
		var dot float64
		for i := range a {
			dot += float64(a[i]) * float64(b[i])
		}
		return dot
	default:
		return cosineSimilarity(a, b)
	}
}

func cosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
