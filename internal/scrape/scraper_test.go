package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const faqPage = `<!DOCTYPE html>
<html>
<head>
  <title>Consumer FAQ Portal</title>
  <meta name="description" content="Consumer complaint guidance">
  <meta name="keywords" content="consumer, complaint, refund">
  <meta name="tracking-pixel" content="ignored">
</head>
<body>
  <nav><a href="/">Home</a><a href="/about">About</a></nav>
  <header>Site banner text</header>
  <h1>Consumer Complaints</h1>
  <p>A consumer can file a complaint for defective goods or deficient services.</p>
  <h2>Where do I file a complaint?</h2>
  <p>File before the District Commission for claims up to fifty lakh rupees.</p>
  <h2>Filing Fees</h2>
  <ul><li>No fee for claims up to five lakh rupees.</li></ul>
  <h3>Can I claim a refund?</h3>
  <p>Yes, the commission can order a refund with compensation.</p>
  <script>trackVisit();</script>
  <footer>Copyright notice</footer>
</body>
</html>`

func fastScraper() *Scraper {
	return New(Config{RatePerSecond: 1000, MaxConcurrent: 4}, nil)
}

func TestScrape(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(faqPage))
	}))
	defer srv.Close()

	doc, err := fastScraper().Scrape(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, srv.URL, doc.URL)
	assert.Equal(t, "Consumer Complaints", doc.Title)
	assert.Equal(t, "nyaya-legal-engine/1.0", gotUA)
	assert.WithinDuration(t, time.Now().UTC(), doc.ScrapedAt, time.Minute)

	assert.Contains(t, doc.Content, "defective goods or deficient services")
	assert.Contains(t, doc.Content, "District Commission")
	assert.Contains(t, doc.Content, "No fee for claims")
	assert.NotContains(t, doc.Content, "trackVisit")
	assert.NotContains(t, doc.Content, "Site banner text")
	assert.NotContains(t, doc.Content, "Copyright notice")

	assert.Equal(t, map[string]string{
		"description": "Consumer complaint guidance",
		"keywords":    "consumer, complaint, refund",
	}, doc.Metadata)
}

func TestScrape_QAPairs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(faqPage))
	}))
	defer srv.Close()

	doc, err := fastScraper().Scrape(context.Background(), srv.URL)
	require.NoError(t, err)

	// Only question-shaped headings become pairs; "Filing Fees" does not.
	require.Len(t, doc.QAPairs, 2)
	assert.Equal(t, "Where do I file a complaint?", doc.QAPairs[0].Question)
	assert.Contains(t, doc.QAPairs[0].Answer, "District Commission")
	assert.Equal(t, "Can I claim a refund?", doc.QAPairs[1].Question)
	assert.Contains(t, doc.QAPairs[1].Answer, "refund with compensation")
}

func TestScrape_TitleFallsBackToTitleTag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Portal Title</title></head><body><p>Some body text here.</p></body></html>`))
	}))
	defer srv.Close()

	doc, err := fastScraper().Scrape(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Portal Title", doc.Title)
}

func TestScrape_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := fastScraper().Scrape(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestScrape_EmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><script>only();</script></body></html>`))
	}))
	defer srv.Close()

	_, err := fastScraper().Scrape(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no textual content")
}

func TestScrapeAll_SkipsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(faqPage))
	}))
	defer srv.Close()

	urls := []string{srv.URL + "/first", srv.URL + "/broken", srv.URL + "/second"}
	docs, err := fastScraper().ScrapeAll(context.Background(), urls)
	require.NoError(t, err)

	// Failed pages are skipped; survivors keep input order.
	require.Len(t, docs, 2)
	assert.Equal(t, srv.URL+"/first", docs[0].URL)
	assert.Equal(t, srv.URL+"/second", docs[1].URL)
}
