package port

// Retriever turns a question into an ordered list of chunk texts, best first.
type Retriever interface {
	// Retrieve returns up to k chunk texts in rank order. A search that yields
	// nothing usable returns an empty slice, not an error.
	Retrieve(question string, k int) ([]string, error)
}
