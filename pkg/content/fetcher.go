package content

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"
	"golang.org/x/sync/singleflight"

	"github.com/ytgebes/biospace/pkg/domain"
)

// extraction modes
const (
	ModeParagraphs  = "paragraphs"
	ModeTrafilatura = "trafilatura"
)

// Options configures a Fetcher
type Options struct {
	Timeout      time.Duration
	UserAgent    string
	MaxChars     int
	MaxBodyBytes int64
	Mode         string
	CacheSize    int
	CacheTTL     time.Duration
}

// Fetcher retrieves documents by URL and extracts their plain text.
// Results, including failures, are memoized per exact URL in a bounded LRU cache.
type Fetcher struct {
	client  *http.Client
	opts    Options
	results cache.Cache[string, domain.FetchResult]
	group   singleflight.Group
}

// NewFetcher creates a new document fetcher
func NewFetcher(opts Options) *Fetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 20 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "Mozilla/5.0 (compatible; BioSpace/1.0)"
	}
	if opts.MaxChars == 0 {
		opts.MaxChars = 20000
	}
	if opts.MaxBodyBytes == 0 {
		opts.MaxBodyBytes = 20 << 20
	}
	if opts.Mode == "" {
		opts.Mode = ModeParagraphs
	}
	if opts.CacheSize == 0 {
		opts.CacheSize = 256
	}

	results := cache.NewCache[string, domain.FetchResult]().WithMaxKeys(opts.CacheSize).WithLRU()
	if opts.CacheTTL > 0 {
		results = results.WithTTL(opts.CacheTTL)
	}

	return &Fetcher{
		client:  &http.Client{Timeout: opts.Timeout},
		opts:    opts,
		results: results,
	}
}

// Fetch returns the extracted text of the document at urlStr. It never returns an error,
// failures are reported as FetchResult with KindFetch or KindParse.
// Concurrent calls for the same URL share a single request, which outlives a cancelled caller
// and is bounded by the client timeout only. A cancelled caller gets an uncached KindFetch result.
func (f *Fetcher) Fetch(ctx context.Context, urlStr string) domain.FetchResult {
	if res, ok := f.results.Get(urlStr); ok {
		log.Printf("[DEBUG] fetch cache hit for %s", urlStr)
		return res
	}
	if ctx.Err() != nil {
		return cancelled(urlStr, ctx.Err())
	}

	shared := context.WithoutCancel(ctx)
	ch := f.group.DoChan(urlStr, func() (interface{}, error) {
		if res, ok := f.results.Get(urlStr); ok {
			return res, nil
		}
		res := f.fetch(shared, urlStr)
		f.results.Set(urlStr, res, 0)
		return res, nil
	})

	select {
	case r := <-ch:
		return r.Val.(domain.FetchResult)
	case <-ctx.Done():
		return cancelled(urlStr, ctx.Err())
	}
}

func cancelled(urlStr string, err error) domain.FetchResult {
	return domain.FetchResult{URL: urlStr, Kind: domain.KindFetch, Err: fmt.Sprintf("request cancelled: %v", err)}
}

// Invalidate drops the cached result for urlStr
func (f *Fetcher) Invalidate(urlStr string) {
	f.results.Invalidate(urlStr)
}

// Purge drops all cached results
func (f *Fetcher) Purge() {
	f.results.Purge()
}

// Stat returns cache statistics
func (f *Fetcher) Stat() cache.Stats {
	return f.results.Stat()
}

func (f *Fetcher) fetch(ctx context.Context, urlStr string) domain.FetchResult {
	res := domain.FetchResult{URL: urlStr}
	failed := func(kind domain.ErrorKind, format string, args ...interface{}) domain.FetchResult {
		res.Kind, res.Err = kind, fmt.Sprintf(format, args...)
		log.Printf("[WARN] fetch %s: %s", urlStr, res.Err)
		return res
	}

	// validate URL
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return failed(domain.KindFetch, "parse URL: %v", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return failed(domain.KindFetch, "invalid URL: %q", urlStr)
	}

	// create request with context
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return failed(domain.KindFetch, "create request: %v", err)
	}
	addBrowserHeaders(req, f.opts.UserAgent)

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return failed(domain.KindFetch, "request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failed(domain.KindFetch, "unexpected status %s for URL %s", resp.Status, urlStr)
	}

	res.ContentType = resp.Header.Get("Content-Type")
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.opts.MaxBodyBytes))
	if err != nil {
		return failed(domain.KindFetch, "read body: %v", err)
	}
	log.Printf("[DEBUG] fetched %s, %d bytes of %q in %v", urlStr, len(body), res.ContentType, time.Since(start))

	var text string
	switch {
	case isPDF(res.ContentType, urlStr):
		text, err = ExtractPDF(bytes.NewReader(body), int64(len(body)))
	case f.opts.Mode == ModeTrafilatura:
		text, err = extractMainContent(bytes.NewReader(body), res.ContentType, parsedURL)
	default:
		text, err = extractParagraphs(bytes.NewReader(body), res.ContentType)
	}
	if err != nil {
		return failed(domain.KindParse, "%v", err)
	}

	res.Text = Truncate(text, f.opts.MaxChars)
	return res
}

// isPDF decides the document type by content type or URL suffix
func isPDF(contentType, urlStr string) bool {
	return strings.Contains(strings.ToLower(contentType), "pdf") || strings.HasSuffix(strings.ToLower(urlStr), ".pdf")
}

// Truncate cuts s to at most n runes, mid-sentence cuts are fine. n <= 0 keeps s whole.
func Truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
