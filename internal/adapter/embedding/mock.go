package embedding

// MockEmbedder produces deterministic vectors from rune values. Same text,
// same vector, every time; useful for tests and offline wiring.
type MockEmbedder struct {
	dimension int
}

func NewMockEmbedder(dimension int) *MockEmbedder {
	return &MockEmbedder{dimension: dimension}
}

func (e *MockEmbedder) Embed(text string) ([]float32, error) {
	vec := make([]float32, e.dimension)
	for i, r := range text {
		vec[i%e.dimension] += float32(r) / 1000.0
	}
	return vec, nil
}

func (e *MockEmbedder) EmbedBatch(texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		v, err := e.Embed(text)
		if err != nil {
			return nil, err
		}
		vectors[i] = v
	}
	return vectors, nil
}

func (e *MockEmbedder) Dimension() int {
	return e.dimension
}

func (e *MockEmbedder) ModelName() string {
	return "mock"
}
