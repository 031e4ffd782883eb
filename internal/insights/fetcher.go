package insights

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/brandsight/shopify-insights/internal/metrics"
)

// FetchResult is the body/status pair for one fetched URL. Non-2xx
// statuses are returned here as data, not as errors, so callers can
// treat a 404 as "feature absent".
type FetchResult struct {
	Body       string
	StatusCode int
}

// Fetcher retrieves a single URL, following redirects. Implementations
// own a connection resource scoped to one extraction run; Close
// releases it and must be safe to call more than once.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (FetchResult, error)
	Close()
}

// FetcherConfig controls per-run collector behavior.
type FetcherConfig struct {
	UserAgent string
	Timeout   time.Duration
}

// CollyFetcher implements Fetcher with a Colly collector backed by a
// dedicated transport per run.
type CollyFetcher struct {
	baseCollector *colly.Collector
	transport     *http.Transport
	closeOnce     sync.Once
}

// NewCollyFetcher builds a Fetcher for a single extraction run.
func NewCollyFetcher(cfg FetcherConfig) *CollyFetcher {
	opts := []colly.CollectorOption{
		colly.AllowURLRevisit(),
		colly.IgnoreRobotsTxt(),
	}
	if cfg.UserAgent != "" {
		opts = append(opts, colly.UserAgent(cfg.UserAgent))
	}
	c := colly.NewCollector(opts...)
	// Non-2xx responses must reach OnResponse instead of OnError.
	c.ParseHTTPErrorResponse = true

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        8,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     30 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		ForceAttemptHTTP2:   true,
	}
	c.WithTransport(transport)

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	c.SetRequestTimeout(timeout)

	return &CollyFetcher{
		baseCollector: c,
		transport:     transport,
	}
}

// Fetch performs one GET with redirect following. The only failure mode
// is a transport-level error (DNS, refused connection, timeout, TLS),
// surfaced as a SiteUnreachableError.
func (f *CollyFetcher) Fetch(ctx context.Context, rawURL string) (FetchResult, error) {
	var (
		result   FetchResult
		fetchErr error
		received bool
	)

	collector := f.baseCollector.Clone()
	collector.OnResponse(func(r *colly.Response) {
		result = FetchResult{
			Body:       string(r.Body),
			StatusCode: r.StatusCode,
		}
		received = true
	})
	collector.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	if err := collector.Visit(rawURL); err != nil && fetchErr == nil {
		fetchErr = err
	}
	collector.Wait()

	if err := ctx.Err(); err != nil {
		return FetchResult{}, &SiteUnreachableError{URL: rawURL, Err: err}
	}
	if fetchErr != nil {
		return FetchResult{}, &SiteUnreachableError{URL: rawURL, Err: fetchErr}
	}
	if !received {
		return FetchResult{}, &SiteUnreachableError{URL: rawURL, Err: errors.New("no response received")}
	}
	metrics.ObservePageFetch(result.StatusCode)
	return result, nil
}

// Close releases the run's pooled connections. Safe to call repeatedly.
func (f *CollyFetcher) Close() {
	f.closeOnce.Do(func() {
		f.transport.CloseIdleConnections()
	})
}
