package llm

import (
	"fmt"
	"strings"
)

const (
	contextMarker  = "Context:\n"
	questionMarker = "\n\nQuestion:\n"
	answerMarker   = "\n\nAnswer:"

	fallbackAnswer = "I could not generate an answer from the given prompt."
)

// RuleGenerator is a deterministic stand-in for a generative backend. It
// parses the prompt back apart at the template markers and answers from the
// first sentence of the context. Replacements only need to map prompt string
// to answer string with no side effects.
type RuleGenerator struct{}

func NewRuleGenerator() *RuleGenerator {
	return &RuleGenerator{}
}

func (g *RuleGenerator) Generate(prompt string) (string, error) {
	if !strings.Contains(prompt, contextMarker) || !strings.Contains(prompt, questionMarker) {
		return fallbackAnswer, nil
	}

	parts := strings.SplitN(prompt, questionMarker, 2)
	context := strings.TrimSpace(strings.Replace(parts[0], contextMarker, "", 1))
	question := strings.TrimSpace(strings.Replace(parts[1], answerMarker, "", 1))

	first := context
	if idx := strings.Index(context, ". "); idx >= 0 {
		first = context[:idx+1]
	}
	first = strings.TrimSpace(first)
	if !strings.HasSuffix(first, ".") {
		first += "."
	}

	return fmt.Sprintf("Based on the context: %s In answer to %q: The relevant information is in the context above.",
		first, question), nil
}

func (g *RuleGenerator) ModelName() string {
	return "rule-based"
}
