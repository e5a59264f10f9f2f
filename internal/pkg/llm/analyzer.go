package llm

import "context"

// AnalyzeComments asks the model to select, score and explain the best
// candidate leads among the comments. The return value is the raw response
// with code fences stripped; whether it is well-formed JSON is the caller's
// responsibility to verify. An error means the provider call itself failed.
func AnalyzeComments(ctx context.Context, gen TextGenerator, comments []string, pctx PromptContext) (string, error) {
	raw, err := gen.Generate(ctx, buildLeadsPrompt(comments, pctx))
	if err != nil {
		return "", err
	}
	return StripCodeFence(raw), nil
}
