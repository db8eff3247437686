// Package scrape ingests pages from official Indian legal sources into the
// document schema consumed by the retrieval store.
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/nyaya-ai/legal-engine/internal/observability"
)

// Document is one scraped page.
type Document struct {
	URL       string            `json:"url"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Metadata  map[string]string `json:"metadata"`
	QAPairs   []QAPair          `json:"qa_pairs"`
	ScrapedAt time.Time         `json:"scraped_at"`
}

// QAPair is a question heading with its answer text, harvested from FAQ-style
// pages.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Config holds scraper settings.
type Config struct {
	UserAgent      string
	RequestTimeout time.Duration
	RatePerSecond  float64 // per-host token bucket
	MaxConcurrent  int
}

// Scraper fetches and parses pages politely: per-host rate limiting and a
// bounded worker group.
type Scraper struct {
	httpClient *http.Client
	userAgent  string
	maxWorkers int
	log        *observability.Logger

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// New creates a Scraper.
func New(cfg Config, log *observability.Logger) *Scraper {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 20 * time.Second
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = 0.5
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 4
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "nyaya-legal-engine/1.0"
	}
	if log == nil {
		log = observability.Nop()
	}
	return &Scraper{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		userAgent:  cfg.UserAgent,
		maxWorkers: cfg.MaxConcurrent,
		log:        log,
		limiters:   make(map[string]*rate.Limiter),
		rps:        cfg.RatePerSecond,
	}
}

// ScrapeAll fetches every URL, skipping pages that fail and reporting each
// failure. The returned slice preserves input order for the pages that
// succeeded.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string) ([]Document, error) {
	docs := make([]*Document, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)

	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			doc, err := s.Scrape(ctx, u)
			if err != nil {
				s.log.Warn().Err(err).Str("url", u).Msg("page skipped")
				return nil
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Document, 0, len(urls))
	for _, d := range docs {
		if d != nil {
			out = append(out, *d)
		}
	}
	return out, nil
}

// Scrape fetches and parses a single page.
func (s *Scraper) Scrape(ctx context.Context, pageURL string) (*Document, error) {
	if err := s.wait(ctx, pageURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", pageURL, resp.StatusCode)
	}

	parsed, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}

	doc := &Document{
		URL:       pageURL,
		Title:     pageTitle(parsed),
		Content:   pageContent(parsed),
		Metadata:  pageMetadata(parsed),
		QAPairs:   qaPairs(parsed),
		ScrapedAt: time.Now().UTC(),
	}
	if strings.TrimSpace(doc.Content) == "" {
		return nil, fmt.Errorf("parse %s: no textual content", pageURL)
	}
	return doc, nil
}

// wait blocks on the per-host token bucket.
func (s *Scraper) wait(ctx context.Context, pageURL string) error {
	u, err := url.Parse(pageURL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", pageURL, err)
	}

	s.mu.Lock()
	limiter, ok := s.limiters[u.Host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(s.rps), 1)
		s.limiters[u.Host] = limiter
	}
	s.mu.Unlock()

	return limiter.Wait(ctx)
}

func pageTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("h1").First().Text()); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// pageContent collects headings, paragraphs, and list items in document
// order, dropping navigation and script noise.
func pageContent(doc *goquery.Document) string {
	doc.Find("script, style, nav, header, footer").Remove()

	var parts []string
	doc.Find("h1, h2, h3, h4, p, li").Each(func(_ int, sel *goquery.Selection) {
		text := strings.Join(strings.Fields(sel.Text()), " ")
		if len(text) > 2 {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, "\n")
}

func pageMetadata(doc *goquery.Document) map[string]string {
	meta := make(map[string]string)
	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		name, _ := sel.Attr("name")
		if name == "" {
			name, _ = sel.Attr("property")
		}
		content, _ := sel.Attr("content")
		switch name {
		case "description", "keywords", "author", "og:title", "og:description":
			if content != "" {
				meta[name] = content
			}
		}
	})
	return meta
}

// qaPairs pairs question-shaped headings with the text that follows them.
func qaPairs(doc *goquery.Document) []QAPair {
	var pairs []QAPair
	doc.Find("h2, h3, h4").Each(func(_ int, sel *goquery.Selection) {
		question := strings.TrimSpace(sel.Text())
		if !strings.HasSuffix(question, "?") {
			return
		}
		answer := strings.TrimSpace(sel.NextFilteredUntil("p, ul, ol", "h1, h2, h3, h4").Text())
		answer = strings.Join(strings.Fields(answer), " ")
		if answer != "" {
			pairs = append(pairs, QAPair{Question: question, Answer: answer})
		}
	})
	return pairs
}
