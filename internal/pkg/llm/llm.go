// Package llm holds the generative-model providers and the three prompt
// pipelines built on them: profile classification, lead analysis and
// prospecting-strategy generation.
package llm

import (
	"context"
	"strings"
)

// TextGenerator is the single call-and-response contract every provider
// satisfies: one prompt in, the model's raw text out. No streaming, no
// function calling, no retry.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// StripCodeFence removes markdown code-fence markers the model tends to wrap
// JSON answers in, leaving the payload untouched otherwise.
func StripCodeFence(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// PromptContext is the seller's product and post framing used to steer the
// model. Caption is empty for strategy generation.
type PromptContext struct {
	Niche   string
	Avatar  string
	Caption string
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
