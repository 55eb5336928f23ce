package usecase

import (
	"fmt"
	"strings"

	"ragpipe/internal/port"
)

// NoContextAnswer is returned when retrieval produced nothing usable.
const NoContextAnswer = "No relevant context was found for your question."

const promptTemplate = "Context:\n%s\n\nQuestion:\n%s\n\nAnswer:"

// Composer assembles retrieved chunks and a question into a final answer via
// context assembly, a fixed prompt template, and a pluggable generator.
type Composer struct {
	generator port.Generator
}

func NewComposer(generator port.Generator) *Composer {
	return &Composer{generator: generator}
}

// Compose joins the chunks into a context block and runs the generator over
// the rendered prompt. Empty context short-circuits without invoking the
// generator.
func (c *Composer) Compose(chunks []string, question string) (string, error) {
	context := strings.TrimSpace(strings.Join(chunks, "\n\n"))
	if context == "" {
		return NoContextAnswer, nil
	}

	return c.generator.Generate(BuildPrompt(context, question))
}

// BuildPrompt renders the template a generative backend would consume. The
// layout is stable: swapping in a real model must not require changing it.
func BuildPrompt(context, question string) string {
	return fmt.Sprintf(promptTemplate, context, question)
}
