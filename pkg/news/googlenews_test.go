package news

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

const feedTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>"artificial intelligence when:7d" - Google News</title>
<link>https://news.google.com/search</link>
%s
</channel>
</rss>`

const feedItems = `
<item>
<title>AI Model Sets New Benchmark Record - TechCrunch</title>
<link>https://example.com/ai-benchmark</link>
<pubDate>Fri, 27 Feb 2026 09:15:00 GMT</pubDate>
</item>
<item>
<title>Regulators Weigh New AI Rules - Reuters</title>
<link>https://example.com/ai-rules</link>
<pubDate>Thu, 26 Feb 2026 18:40:00 GMT</pubDate>
</item>
<item>
<title>Chip Demand Surges on AI Spending - Bloomberg</title>
<link>https://example.com/chip-demand</link>
<pubDate>Wed, 25 Feb 2026 07:05:00 GMT</pubDate>
</item>`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*GoogleNewsClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := &GoogleNewsClient{httpClient: srv.Client()}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}
	return client, srv
}

func TestSearch(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprintf(w, feedTemplate, feedItems)
	})

	headlines, err := client.Search(context.Background(), "artificial intelligence", 7)

	assert.Equal(t, nil, err)
	assert.Equal(t, "artificial intelligence when:7d", gotQuery)
	assert.Equal(t, 3, len(headlines))

	first := headlines[0]
	assert.Equal(t, "AI Model Sets New Benchmark Record", first.Title)
	assert.Equal(t, "TechCrunch", first.Source)
	assert.Equal(t, "https://example.com/ai-benchmark", first.Link)
	assert.Equal(t, 2026, first.PublishedAt.Year())
	assert.Equal(t, time.February, first.PublishedAt.Month())
	assert.Equal(t, 27, first.PublishedAt.Day())

	// Feed order is preserved.
	assert.Equal(t, "Regulators Weigh New AI Rules", headlines[1].Title)
	assert.Equal(t, "Reuters", headlines[1].Source)
	assert.Equal(t, "Chip Demand Surges on AI Spending", headlines[2].Title)
	assert.Equal(t, "Bloomberg", headlines[2].Source)
}

func TestSearch_EmptyFeed(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprintf(w, feedTemplate, "")
	})

	headlines, err := client.Search(context.Background(), "no such topic", 7)

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(headlines))
}

func TestSearch_ServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	headlines, err := client.Search(context.Background(), "anything", 7)

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(headlines))
}

func TestSearch_MalformedFeed(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not a feed")
	})

	_, err := client.Search(context.Background(), "anything", 7)

	assert.NotEqual(t, nil, err)
}

func TestSplitSourceSuffix(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantTitle  string
		wantSource string
	}{
		{
			name:       "publisher suffix stripped",
			input:      "AI Model Sets New Benchmark Record - TechCrunch",
			wantTitle:  "AI Model Sets New Benchmark Record",
			wantSource: "TechCrunch",
		},
		{
			name:       "last separator wins",
			input:      "Earnings - and what comes next - Reuters",
			wantTitle:  "Earnings - and what comes next",
			wantSource: "Reuters",
		},
		{
			name:       "no separator",
			input:      "Plain headline",
			wantTitle:  "Plain headline",
			wantSource: "",
		},
		{
			name:       "trailing separator",
			input:      "Headline - ",
			wantTitle:  "Headline - ",
			wantSource: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, source := splitSourceSuffix(tt.input)
			if title != tt.wantTitle || source != tt.wantSource {
				t.Errorf("got (%q, %q), want (%q, %q)", title, source, tt.wantTitle, tt.wantSource)
			}
		})
	}
}

type rewriteTransport struct {
	base  string
	inner http.RoundTripper
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	parsed, _ := http.NewRequest("GET", rt.base, nil)
	req2.URL.Host = parsed.URL.Host
	req2.URL.Scheme = parsed.URL.Scheme
	return rt.inner.RoundTrip(req2)
}
