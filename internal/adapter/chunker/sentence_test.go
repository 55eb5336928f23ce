package chunker

import (
	"strings"
	"testing"
)

func TestSplitGroupsSentences(t *testing.T) {
	c := NewSentenceChunker(3)

	text := "One. Two! Three? Four. Five."
	chunks := c.Split(text)

	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %v", len(chunks), chunks)
	}
	if chunks[0] != "One. Two! Three?" {
		t.Errorf("unexpected first chunk: %q", chunks[0])
	}
	if chunks[1] != "Four. Five." {
		t.Errorf("unexpected second chunk: %q", chunks[1])
	}
}

func TestSplitChunkCount(t *testing.T) {
	c := NewSentenceChunker(3)

	// len(chunks) == ceil(sentences / 3) for a range of sentence counts.
	for n := 1; n <= 10; n++ {
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteString("Sentence here. ")
		}
		chunks := c.Split(sb.String())
		want := (n + 2) / 3
		if len(chunks) != want {
			t.Errorf("%d sentences: expected %d chunks, got %d", n, want, len(chunks))
		}
	}
}

func TestSplitPreservesOrder(t *testing.T) {
	c := NewSentenceChunker(3)

	text := "Alpha one. Beta two. Gamma three. Delta four. Epsilon five. Zeta six. Eta seven."
	chunks := c.Split(text)

	joined := strings.Join(chunks, " ")
	if joined != text {
		t.Errorf("concatenated chunks should reproduce the sentence sequence:\n got: %q\nwant: %q", joined, text)
	}
}

func TestSplitEmptyInput(t *testing.T) {
	c := NewSentenceChunker(3)

	if chunks := c.Split(""); len(chunks) != 0 {
		t.Errorf("expected no chunks for empty input, got %v", chunks)
	}
	if chunks := c.Split("   \n\t  "); len(chunks) != 0 {
		t.Errorf("expected no chunks for whitespace input, got %v", chunks)
	}
}

func TestSplitNoTerminatorInsideToken(t *testing.T) {
	c := NewSentenceChunker(1)

	chunks := c.Split("The release is v1.2 now. It shipped.")
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %v", len(chunks), chunks)
	}
	if chunks[0] != "The release is v1.2 now." {
		t.Errorf("version number should not end a sentence: %q", chunks[0])
	}
}

func TestSplitTrailingTextWithoutTerminator(t *testing.T) {
	c := NewSentenceChunker(3)

	chunks := c.Split("Complete sentence. Trailing fragment")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if !strings.Contains(chunks[0], "Trailing fragment") {
		t.Errorf("trailing fragment should be kept: %q", chunks[0])
	}
}
