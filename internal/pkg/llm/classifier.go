package llm

import (
	"context"
	"encoding/json"
	"log"
	"strings"
)

// Sentinel values the classifier degrades to instead of failing.
const (
	sentinelNoBiography   = "No se pudo determinar (sin biografía)."
	sentinelAnalysisError = "Error en el análisis."
)

// ProfileClassification is the inferred niche and ideal-customer description
// for a profile biography.
type ProfileClassification struct {
	Niche  string `json:"niche"`
	Avatar string `json:"avatar"`
}

// ClassifyProfile infers niche and avatar from a biography. An empty or
// whitespace-only biography short-circuits to the "undeterminable" sentinel
// with no provider call; any call or parse failure degrades to the error
// sentinel. This function never fails.
func ClassifyProfile(ctx context.Context, gen TextGenerator, biography string) ProfileClassification {
	if strings.TrimSpace(biography) == "" {
		return ProfileClassification{Niche: sentinelNoBiography, Avatar: sentinelNoBiography}
	}

	raw, err := gen.Generate(ctx, buildProfilePrompt(biography))
	if err != nil {
		log.Printf("profile classification failed: %v", err)
		return ProfileClassification{Niche: sentinelAnalysisError, Avatar: sentinelAnalysisError}
	}

	var result ProfileClassification
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &result); err != nil {
		log.Printf("profile classification returned invalid JSON: %v", err)
		return ProfileClassification{Niche: sentinelAnalysisError, Avatar: sentinelAnalysisError}
	}

	return result
}
