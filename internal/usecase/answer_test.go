package usecase

import (
	"strings"
	"testing"

	"ragpipe/internal/adapter/chunker"
	"ragpipe/internal/adapter/llm"
	"ragpipe/internal/adapter/vectordb"
)

func TestComposeEmptyContextShortCircuits(t *testing.T) {
	gen := &countingGenerator{answer: "should not appear"}
	c := NewComposer(gen)

	answer, err := c.Compose(nil, "anything")
	if err != nil {
		t.Fatal(err)
	}
	if answer != NoContextAnswer {
		t.Errorf("expected fixed no-context message, got %q", answer)
	}
	if gen.calls != 0 {
		t.Errorf("generator must not run on empty context, ran %d times", gen.calls)
	}
}

func TestComposeJoinsChunksWithBlankLines(t *testing.T) {
	gen := &countingGenerator{answer: "ok"}
	c := NewComposer(gen)

	if _, err := c.Compose([]string{"First chunk.", "Second chunk."}, "q?"); err != nil {
		t.Fatal(err)
	}
	if gen.calls != 1 {
		t.Fatalf("expected one generator call, got %d", gen.calls)
	}
}

func TestBuildPromptLayout(t *testing.T) {
	prompt := BuildPrompt("some context", "some question")
	want := "Context:\nsome context\n\nQuestion:\nsome question\n\nAnswer:"
	if prompt != want {
		t.Errorf("template layout drifted:\n got: %q\nwant: %q", prompt, want)
	}
}

// End-to-end through the core: chunk, index, retrieve, compose.
func TestAnswerPipelineEndToEnd(t *testing.T) {
	document := "Paris is the capital of France. It is known for the Eiffel Tower."
	question := "What is Paris known for?"

	chunks := chunker.NewSentenceChunker(3).Split(document)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk from the document, got %d", len(chunks))
	}

	emb := &stubEmbedder{dim: 2, vectors: map[string][]float32{
		chunks[0]: {1, 0},
		question:  {0.9, 0.1},
	}}

	idx := vectordb.NewMemoryIndex()
	if err := idx.Create("idx", 2, "cosine"); err != nil {
		t.Fatal(err)
	}
	meta := newMemMetadata()

	ingest := NewIngestUseCase(chunker.NewSentenceChunker(3), emb, idx, meta, "idx", 32)
	docPath := writeTempDoc(t, document)
	if _, err := ingest.Ingest([]string{docPath}); err != nil {
		t.Fatal(err)
	}

	retriever := NewRetriever(emb, idx, meta, "idx")
	texts, err := retriever.Retrieve(question, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(texts) != 1 {
		t.Fatalf("expected the single chunk back, got %v", texts)
	}

	answer, err := NewComposer(llm.NewRuleGenerator()).Compose(texts, question)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(answer, "Paris is the capital of France.") {
		t.Errorf("answer should reference the first context sentence, got %q", answer)
	}
	if !strings.Contains(answer, question) {
		t.Errorf("answer should echo the question, got %q", answer)
	}
}
