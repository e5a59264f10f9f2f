package instagram

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// commentSelector targets the span elements the comment column renders its
// text into. The class names are obfuscated but stable across page builds.
const commentSelector = "div.x78zum5 div.x1cy8zhl span"

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0 Safari/537.36"

type Scraper struct {
	client *http.Client
}

func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// UseDefaultClient switches to http.DefaultClient so tests can intercept
// requests through the shared mock transport.
func (s *Scraper) UseDefaultClient() {
	s.client = http.DefaultClient
}

// FetchComments loads the post page and extracts the visible comment texts
// in document order. A page with no matching elements yields an empty slice
// and no error; callers treat both the same way. The page session is a
// single request/response and is always released.
func (s *Scraper) FetchComments(ctx context.Context, postURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, postURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "es-ES,es;q=0.9,en;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("instagram: unexpected status %d fetching %s", resp.StatusCode, postURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	var comments []string
	doc.Find(commentSelector).Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			comments = append(comments, text)
		}
	})

	return comments, nil
}
