package chunker

import (
	"strings"
	"unicode"
)

// SentenceChunker groups consecutive sentences into short passages with no
// overlap. A sentence ends at '.', '!', or '?' followed by whitespace.
type SentenceChunker struct {
	maxSentences int
}

func NewSentenceChunker(maxSentences int) *SentenceChunker {
	if maxSentences <= 0 {
		maxSentences = 3
	}
	return &SentenceChunker{maxSentences: maxSentences}
}

func (c *SentenceChunker) Split(text string) []string {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return nil
	}

	var chunks []string
	for i := 0; i < len(sentences); i += c.maxSentences {
		end := i + c.maxSentences
		if end > len(sentences) {
			end = len(sentences)
		}
		chunks = append(chunks, strings.Join(sentences[i:end], " "))
	}
	return chunks
}

// splitSentences scans for terminators instead of using a regexp because RE2
// has no lookbehind. A terminator inside a token ("3.5", "v1.2") does not end
// a sentence; only terminator-then-whitespace does. Trailing text without a
// terminator still counts as a sentence.
func splitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		b.WriteRune(r)
		if isTerminator(r) && (i+1 == len(runes) || unicode.IsSpace(runes[i+1])) {
			if s := strings.TrimSpace(b.String()); s != "" {
				sentences = append(sentences, s)
			}
			b.Reset()
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
