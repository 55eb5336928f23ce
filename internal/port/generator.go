package port

// Generator produces an answer from a fully rendered prompt. Implementations
// must be side-effect free; determinism is not required.
type Generator interface {
	Generate(prompt string) (string, error)

	// ModelName returns the name of the generation backend.
	ModelName() string
}
