package insights

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/brandsight/shopify-insights/internal/metrics"
)

// Config governs extraction runs.
type Config struct {
	UserAgent        string
	FetchTimeout     time.Duration
	ProductPageLimit int
}

// DefaultProductPageLimit caps the product feed page size.
const DefaultProductPageLimit = 250

// Scraper runs brand-context extractions against Shopify storefronts.
// It is safe for concurrent use: each run owns its own fetcher and
// homepage document, with no cross-run shared state.
type Scraper struct {
	cfg        Config
	logger     *zap.Logger
	newFetcher func() Fetcher
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithFetcherFactory overrides the per-run fetcher constructor.
func WithFetcherFactory(factory func() Fetcher) Option {
	return func(s *Scraper) {
		s.newFetcher = factory
	}
}

// NewScraper constructs a Scraper.
func NewScraper(cfg Config, logger *zap.Logger, opts ...Option) *Scraper {
	if cfg.ProductPageLimit <= 0 {
		cfg.ProductPageLimit = DefaultProductPageLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Scraper{
		cfg:    cfg,
		logger: logger,
	}
	s.newFetcher = func() Fetcher {
		return NewCollyFetcher(FetcherConfig{
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.FetchTimeout,
		})
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BrandContext runs one extraction: homepage fetch, Shopify gate, then
// the eight field extractors in sequence. Individual extractor gaps
// degrade to empty fields; only an unreachable site or a failed
// platform check abort the run. The run's fetcher is released before
// the result or failure is surfaced.
func (s *Scraper) BrandContext(ctx context.Context, websiteURL string) (*BrandContext, error) {
	start := time.Now()
	base := NormalizeURL(websiteURL)

	fetcher := s.newFetcher()
	defer fetcher.Close()

	home, err := fetcher.Fetch(ctx, base)
	if err != nil {
		metrics.ObserveRun("unreachable", time.Since(start))
		return nil, err
	}
	if home.StatusCode != http.StatusOK {
		metrics.ObserveRun("unreachable", time.Since(start))
		return nil, &SiteUnreachableError{
			URL: base,
			Err: fmt.Errorf("homepage returned status %d", home.StatusCode),
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(home.Body))
	if err != nil {
		metrics.ObserveRun("error", time.Since(start))
		return nil, fmt.Errorf("parse homepage: %w", err)
	}

	// Gate before any further network calls: non-Shopify sites are
	// rejected after a single fetch.
	if !IsShopifyStore(home.Body, doc) {
		metrics.ObserveRun("not_shopify", time.Since(start))
		return nil, &NotShopifyStoreError{URL: base}
	}

	products := extractProducts(ctx, fetcher, base, s.cfg.ProductPageLimit)
	hero := extractHeroProducts(doc, products)
	policies := extractPolicies(ctx, fetcher, base)
	faqs := extractFAQs(ctx, fetcher, base)
	socials := extractSocials(doc)
	contact := extractContact(ctx, fetcher, base, doc)
	about := extractAbout(ctx, fetcher, base)
	links := extractLinks(doc, base)

	bc := &BrandContext{
		Brand:        hostOf(base),
		Products:     products,
		HeroProducts: hero,
		Policies:     policies,
		FAQs:         faqs,
		Socials:      socials,
		Contact:      contact,
		About:        about,
		Links:        links,
	}

	s.logger.Info("extraction complete",
		zap.String("brand", bc.Brand),
		zap.Int("products", len(bc.Products)),
		zap.Int("hero_products", len(bc.HeroProducts)),
		zap.Int("faqs", len(bc.FAQs)),
		zap.Duration("duration", time.Since(start)),
	)
	metrics.ObserveRun("ok", time.Since(start))
	return bc, nil
}

func hostOf(base string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	return u.Host
}
