package llm

import "context"

// GenerateStrategy asks the model for 8 search keywords and 8 hashtags for
// the business context. Same pass-through policy as AnalyzeComments: fences
// are stripped, JSON well-formedness is not checked here.
func GenerateStrategy(ctx context.Context, gen TextGenerator, pctx PromptContext) (string, error) {
	raw, err := gen.Generate(ctx, buildStrategyPrompt(pctx))
	if err != nil {
		return "", err
	}
	return StripCodeFence(raw), nil
}
