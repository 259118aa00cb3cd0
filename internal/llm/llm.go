package llm

import "context"

// TextGenerator is the LLM capability the pipeline consumes. Every call
// site treats it as fallible and latent.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, maxTokens int32, temperature float32) (string, error)
}

// Result makes the best-effort generation path explicit: either the
// model produced Text, or Fallback is set and Text holds the
// substituted placeholder.
type Result struct {
	Text     string
	Fallback bool
}

// GenerateOr runs the generator and substitutes fallback text on any
// failure or empty response. It never returns an error; degraded
// output beats an aborted batch.
func GenerateOr(ctx context.Context, g TextGenerator, prompt, fallback string, maxTokens int32, temperature float32) Result {
	if g == nil {
		return Result{Text: fallback, Fallback: true}
	}
	text, err := g.Generate(ctx, prompt, maxTokens, temperature)
	if err != nil || text == "" {
		return Result{Text: fallback, Fallback: true}
	}
	return Result{Text: text}
}
