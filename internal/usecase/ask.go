package usecase

import (
	"fmt"
	"strings"

	"ragpipe/internal/adapter/cache"
	"ragpipe/internal/domain"
	"ragpipe/internal/port"
)

// AskUseCase runs the full question-to-answer pipeline: retrieve then
// compose. Each call is a linear, synchronous pass with no session state.
type AskUseCase struct {
	retriever port.Retriever
	composer  *Composer
	topK      int
	cache     *cache.AnswerCache
}

func NewAskUseCase(retriever port.Retriever, composer *Composer, topK int) *AskUseCase {
	if topK <= 0 {
		topK = 3
	}
	return &AskUseCase{
		retriever: retriever,
		composer:  composer,
		topK:      topK,
	}
}

// WithCache enables answer caching for repeated questions.
func (u *AskUseCase) WithCache(c *cache.AnswerCache) *AskUseCase {
	u.cache = c
	return u
}

func (u *AskUseCase) Ask(question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question is blank: %w", domain.ErrEmptyInput)
	}

	if u.cache != nil {
		if answer, ok := u.cache.Get(question, u.topK); ok {
			return answer, nil
		}
	}

	chunks, err := u.retriever.Retrieve(question, u.topK)
	if err != nil {
		return "", err
	}

	answer, err := u.composer.Compose(chunks, question)
	if err != nil {
		return "", err
	}

	if u.cache != nil {
		u.cache.Put(question, u.topK, answer)
	}
	return answer, nil
}
