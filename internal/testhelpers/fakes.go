package testhelpers

import (
	"context"

	"settermind/internal/pkg/apify"
)

// FakePostFetcher satisfies pipeline.PostFetcher with canned results.
type FakePostFetcher struct {
	Details      *apify.PostDetails
	DetailsErr   error
	Posts        []apify.HashtagPost
	PostsErr     error
	DetailsCalls int
}

func (f *FakePostFetcher) FetchPostDetails(ctx context.Context, postURL string) (*apify.PostDetails, error) {
	f.DetailsCalls++
	return f.Details, f.DetailsErr
}

func (f *FakePostFetcher) FindPostsByHashtag(ctx context.Context, hashtag string) ([]apify.HashtagPost, error) {
	return f.Posts, f.PostsErr
}

// FakeCommentFetcher satisfies pipeline.CommentFetcher.
type FakeCommentFetcher struct {
	Comments []string
	Err      error
	Calls    int
}

func (f *FakeCommentFetcher) FetchComments(ctx context.Context, postURL string) ([]string, error) {
	f.Calls++
	return f.Comments, f.Err
}

// FakeGenerator satisfies llm.TextGenerator. Responses are returned in
// order; the last one repeats once exhausted. Prompts records every call.
type FakeGenerator struct {
	Responses []string
	Err       error
	Prompts   []string
}

func (f *FakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.Prompts = append(f.Prompts, prompt)
	if f.Err != nil {
		return "", f.Err
	}
	if len(f.Responses) == 0 {
		return "", nil
	}
	resp := f.Responses[0]
	if len(f.Responses) > 1 {
		f.Responses = f.Responses[1:]
	}
	return resp, nil
}
