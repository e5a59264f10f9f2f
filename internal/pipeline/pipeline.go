// Package pipeline composes the extractors and the generative model into the
// two orchestrations the service offers: post analysis and strategy
// generation. Each run is a single synchronous pass; every external call is
// attempted exactly once.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"settermind/internal/models"
	"settermind/internal/pkg/apify"
	"settermind/internal/pkg/llm"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gorm.io/gorm"
)

// PostFetcher is the scraping-provider boundary for post metadata.
type PostFetcher interface {
	FetchPostDetails(ctx context.Context, postURL string) (*apify.PostDetails, error)
	FindPostsByHashtag(ctx context.Context, hashtag string) ([]apify.HashtagPost, error)
}

// CommentFetcher is the comment-extraction boundary.
type CommentFetcher interface {
	FetchComments(ctx context.Context, postURL string) ([]string, error)
}

type Pipeline struct {
	db       *gorm.DB
	posts    PostFetcher
	comments CommentFetcher
	gen      llm.TextGenerator
}

func New(db *gorm.DB, posts PostFetcher, comments CommentFetcher, gen llm.TextGenerator) *Pipeline {
	return &Pipeline{db: db, posts: posts, comments: comments, gen: gen}
}

// EnrichedPostDetails bundles the scraped post metadata with the profile
// classification inferred from the author's biography.
type EnrichedPostDetails struct {
	Post    apify.PostDetails         `json:"post"`
	Profile llm.ProfileClassification `json:"profile"`
}

// PostDetails fetches the post metadata and classifies the author profile.
// Classification is attached but never gates the result: it degrades to its
// sentinels on its own.
func (p *Pipeline) PostDetails(ctx context.Context, postURL string) (*EnrichedPostDetails, error) {
	details, err := p.posts.FetchPostDetails(ctx, postURL)
	if err != nil {
		log.Printf("post details fetch failed for %s: %v", postURL, err)
		return nil, ErrPostDetailsUnavailable
	}

	profile := llm.ClassifyProfile(ctx, p.gen, details.OwnerBiography)

	return &EnrichedPostDetails{Post: *details, Profile: profile}, nil
}

// Prospect finds candidate posts for a hashtag.
func (p *Pipeline) Prospect(ctx context.Context, hashtag string) ([]apify.HashtagPost, error) {
	posts, err := p.posts.FindPostsByHashtag(ctx, hashtag)
	if err != nil {
		log.Printf("hashtag prospecting failed for %q: %v", hashtag, err)
		return nil, ErrProspectFailed
	}
	return posts, nil
}

// Analyze runs the full lead-analysis flow for one post and persists the
// enriched result for the owner. The returned bytes are exactly what was
// stored: the validated leads payload plus the computed summary.
func (p *Pipeline) Analyze(ctx context.Context, ownerID, postURL, niche, avatar string) (json.RawMessage, error) {
	details, err := p.PostDetails(ctx, postURL)
	if err != nil {
		return nil, err
	}

	comments, err := p.comments.FetchComments(ctx, postURL)
	if err != nil {
		log.Printf("comment scraping failed for %s: %v", postURL, err)
		return nil, ErrNoComments
	}
	if len(comments) == 0 {
		return nil, ErrNoComments
	}

	pctx := llm.PromptContext{
		Niche:   niche,
		Avatar:  avatar,
		Caption: details.Post.Caption,
	}

	rawText, err := llm.AnalyzeComments(ctx, p.gen, comments, pctx)
	if err != nil {
		log.Printf("lead analysis failed for %s: %v", postURL, err)
		return nil, ErrAnalysisFailed
	}

	raw := []byte(rawText)
	if err := ValidateLeads(raw); err != nil {
		log.Printf("lead analysis contract violation for %s: %v", postURL, err)
		return nil, err
	}

	leadCount := len(gjson.GetBytes(raw, "leads").Array())
	summary := fmt.Sprintf("Analizados %d com., IA identificó %d prospectos.", len(comments), leadCount)

	enriched, err := sjson.SetBytes(raw, "summary", summary)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContractViolation, err)
	}

	analysis := models.Analysis{
		PostURL:    postURL,
		ResultData: enriched,
		OwnerID:    ownerID,
	}
	if err := p.db.WithContext(ctx).Create(&analysis).Error; err != nil {
		return nil, fmt.Errorf("persist analysis: %w", err)
	}

	return enriched, nil
}

// StrategyResult is the parsed, validated strategy contract.
type StrategyResult struct {
	Keywords []string `json:"keywords"`
	Hashtags []string `json:"hashtags"`
}

// Strategy runs the strategy-generation flow and persists the result for the
// owner.
func (p *Pipeline) Strategy(ctx context.Context, ownerID, niche, avatar string) (*StrategyResult, error) {
	pctx := llm.PromptContext{Niche: niche, Avatar: avatar}

	rawText, err := llm.GenerateStrategy(ctx, p.gen, pctx)
	if err != nil {
		log.Printf("strategy generation failed: %v", err)
		return nil, ErrStrategyFailed
	}

	raw := []byte(rawText)
	if err := ValidateStrategy(raw); err != nil {
		log.Printf("strategy contract violation: %v", err)
		return nil, err
	}

	var result StrategyResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContractViolation, err)
	}

	keywords, _ := json.Marshal(result.Keywords)
	hashtags, _ := json.Marshal(result.Hashtags)

	strategy := models.Strategy{
		Niche:    niche,
		Avatar:   avatar,
		Keywords: keywords,
		Hashtags: hashtags,
		OwnerID:  ownerID,
	}
	if err := p.db.WithContext(ctx).Create(&strategy).Error; err != nil {
		return nil, fmt.Errorf("persist strategy: %w", err)
	}

	return &result, nil
}
