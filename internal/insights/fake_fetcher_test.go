package insights

import (
	"context"
	"net/http"
)

// fakeFetcher serves canned pages keyed by full URL. URLs without an
// entry answer 404, mirroring a storefront with the feature absent.
type fakeFetcher struct {
	pages      map[string]FetchResult
	errs       map[string]error
	fetched    []string
	closeCount int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		pages: map[string]FetchResult{},
		errs:  map[string]error{},
	}
}

func (f *fakeFetcher) page(url, body string) *fakeFetcher {
	f.pages[url] = FetchResult{Body: body, StatusCode: http.StatusOK}
	return f
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (FetchResult, error) {
	f.fetched = append(f.fetched, url)
	if err, ok := f.errs[url]; ok {
		return FetchResult{}, err
	}
	if res, ok := f.pages[url]; ok {
		return res, nil
	}
	return FetchResult{Body: "not found", StatusCode: http.StatusNotFound}, nil
}

func (f *fakeFetcher) Close() {
	f.closeCount++
}
