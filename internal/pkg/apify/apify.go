package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const baseURL = "https://api.apify.com/v2"

// Actor IDs in the provider's URL form (owner~name).
const (
	postScraperActor    = "apify~instagram-scraper"
	hashtagScraperActor = "apify~instagram-hashtag-scraper"
)

// ErrNoItems is returned when an actor run succeeds but its dataset is empty.
var ErrNoItems = errors.New("apify: dataset returned no items")

type Client struct {
	token  string
	client *http.Client
}

func New(token string) *Client {
	return &Client{
		token: token,
		client: &http.Client{
			Timeout: 120 * time.Second, // actor runs are slow
		},
	}
}

// UseDefaultClient switches to http.DefaultClient so tests can intercept
// requests through the shared mock transport.
func (c *Client) UseDefaultClient() {
	c.client = http.DefaultClient
}

// item carries the provider-defined fields of one dataset entry.
type item struct {
	URL            string `json:"url"`
	Caption        string `json:"caption"`
	LikesCount     int    `json:"likesCount"`
	CommentsCount  int    `json:"commentsCount"`
	OwnerUsername  string `json:"ownerUsername"`
	OwnerBiography string `json:"ownerBiography"`
}

// PostDetails is the post metadata plus the author's biography for one URL.
type PostDetails struct {
	Caption        string `json:"caption"`
	OwnerUsername  string `json:"owner_username"`
	LikesCount     int    `json:"likes_count"`
	CommentsCount  int    `json:"comments_count"`
	OwnerBiography string `json:"-"`
}

// HashtagPost is one candidate post found during hashtag prospecting.
type HashtagPost struct {
	URL           string `json:"url"`
	Caption       string `json:"caption"`
	LikesCount    int    `json:"likesCount"`
	CommentsCount int    `json:"commentsCount"`
	OwnerUsername string `json:"ownerUsername"`
}

// runActorSync runs one actor and returns its default dataset items. One
// attempt per call; the provider enforces its own run timeout.
func (c *Client) runActorSync(ctx context.Context, actorID string, input any) ([]item, error) {
	u, _ := url.Parse(baseURL + "/acts/" + actorID + "/run-sync-get-dataset-items")
	q := u.Query()
	q.Set("token", c.token)
	u.RawQuery = q.Encode()

	body, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("apify error %d: %s", resp.StatusCode, strings.TrimSpace(string(buf)))
	}

	var items []item
	if err := json.Unmarshal(buf, &items); err != nil {
		return nil, fmt.Errorf("apify: decode dataset: %w", err)
	}

	return items, nil
}

// FetchPostDetails returns the post metadata and author biography for one
// post URL, or an error when the provider fails or yields nothing.
func (c *Client) FetchPostDetails(ctx context.Context, postURL string) (*PostDetails, error) {
	input := map[string]any{
		"directUrls":   []string{postURL},
		"resultsType":  "posts",
		"resultsLimit": 1,
	}

	items, err := c.runActorSync(ctx, postScraperActor, input)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	it := items[0]
	details := &PostDetails{
		Caption:        it.Caption,
		OwnerUsername:  it.OwnerUsername,
		LikesCount:     it.LikesCount,
		CommentsCount:  it.CommentsCount,
		OwnerBiography: it.OwnerBiography,
	}
	if details.Caption == "" {
		details.Caption = "Sin descripción."
	}
	if details.OwnerUsername == "" {
		details.OwnerUsername = "N/A"
	}

	return details, nil
}

// FindPostsByHashtag returns up to three candidate posts for a hashtag. The
// leading '#' is stripped before the actor run.
func (c *Client) FindPostsByHashtag(ctx context.Context, hashtag string) ([]HashtagPost, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(hashtag), "#", "")

	input := map[string]any{
		"hashtags":     []string{cleaned},
		"resultsLimit": 3,
	}

	items, err := c.runActorSync(ctx, hashtagScraperActor, input)
	if err != nil {
		return nil, err
	}

	posts := make([]HashtagPost, 0, len(items))
	for _, it := range items {
		if it.URL == "" {
			continue
		}

		caption := it.Caption
		if caption == "" {
			caption = "Sin descripción."
		}
		posts = append(posts, HashtagPost{
			URL:           it.URL,
			Caption:       caption,
			OwnerUsername: "N/A",
		})
	}

	return posts, nil
}
