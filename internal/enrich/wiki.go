package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const noDescription = "No description available."

// WikiSource queries a MediaWiki action API. It tries the "<name> (road
// sign)" article first and falls back to a full-text search.
type WikiSource struct {
	cfg  Config
	http *http.Client
}

// NewWikiSource creates a source for cfg.
func NewWikiSource(cfg Config) *WikiSource {
	return &WikiSource{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

type queryResponse struct {
	Query struct {
		Pages  map[string]wikiPage `json:"pages"`
		Search []searchHit         `json:"search"`
	} `json:"query"`
}

type wikiPage struct {
	PageID    int     `json:"pageid"`
	Title     string  `json:"title"`
	Extract   string  `json:"extract"`
	FullURL   string  `json:"fullurl"`
	Missing   *string `json:"missing"`
	Invalid   *string `json:"invalid"`
	Thumbnail *struct {
		Source string `json:"source"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	} `json:"thumbnail"`
}

type searchHit struct {
	Title  string `json:"title"`
	PageID int    `json:"pageid"`
}

func (s *WikiSource) Lookup(ctx context.Context, name string) (*Page, error) {
	page, err := s.byTitle(ctx, name+" (road sign)")
	if err == nil {
		return page, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hits, err := s.search(ctx, name+" road sign traffic")
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, ErrNotFound
	}
	return s.byID(ctx, hits[0].PageID)
}

func (s *WikiSource) pageParams() url.Values {
	return url.Values{
		"action":      {"query"},
		"prop":        {"extracts|pageimages|info"},
		"exintro":     {"true"},
		"explaintext": {"true"},
		"piprop":      {"thumbnail"},
		"pithumbsize": {strconv.Itoa(s.cfg.ThumbSize)},
		"inprop":      {"url"},
		"format":      {"json"},
	}
}

func (s *WikiSource) byTitle(ctx context.Context, title string) (*Page, error) {
	params := s.pageParams()
	params.Set("titles", title)

	var resp queryResponse
	if err := s.get(ctx, params, &resp); err != nil {
		return nil, err
	}
	for _, p := range resp.Query.Pages {
		return toPage(p)
	}
	return nil, ErrNotFound
}

func (s *WikiSource) byID(ctx context.Context, id int) (*Page, error) {
	params := s.pageParams()
	params.Set("pageids", strconv.Itoa(id))

	var resp queryResponse
	if err := s.get(ctx, params, &resp); err != nil {
		return nil, err
	}
	p, ok := resp.Query.Pages[strconv.Itoa(id)]
	if !ok {
		return nil, ErrNotFound
	}
	return toPage(p)
}

func (s *WikiSource) search(ctx context.Context, query string) ([]searchHit, error) {
	params := url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {query},
		"srlimit":  {strconv.Itoa(s.cfg.SearchLimit)},
		"format":   {"json"},
	}

	var resp queryResponse
	if err := s.get(ctx, params, &resp); err != nil {
		return nil, err
	}
	return resp.Query.Search, nil
}

func toPage(p wikiPage) (*Page, error) {
	if p.Missing != nil || p.Invalid != nil || p.PageID <= 0 {
		return nil, ErrNotFound
	}

	page := &Page{
		Title:   p.Title,
		PageID:  p.PageID,
		Extract: p.Extract,
		URL:     p.FullURL,
	}
	if page.Extract == "" {
		page.Extract = noDescription
	}
	if page.URL == "" {
		page.URL = fmt.Sprintf("https://en.wikipedia.org/?curid=%d", p.PageID)
	}
	if p.Thumbnail != nil && p.Thumbnail.Source != "" {
		page.Thumbnail = &Thumbnail{
			Source: p.Thumbnail.Source,
			Width:  p.Thumbnail.Width,
			Height: p.Thumbnail.Height,
		}
	}
	return page, nil
}

func (s *WikiSource) get(ctx context.Context, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", s.cfg.UserAgent)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &ErrUnavailable{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &ErrRateLimit{
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("status %d", resp.StatusCode),
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &ErrUnavailable{StatusCode: resp.StatusCode, Err: errors.New(strings.TrimSpace(string(body)))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseRetryAfter(v string) time.Duration {
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
