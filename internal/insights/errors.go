package insights

import "fmt"

// SiteUnreachableError indicates the storefront could not be fetched:
// a transport failure, or a non-200 response on the mandatory homepage
// request. It is fatal to the run.
type SiteUnreachableError struct {
	URL string
	Err error
}

func (e *SiteUnreachableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("site unreachable: %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("site unreachable: %s", e.URL)
}

func (e *SiteUnreachableError) Unwrap() error { return e.Err }

// NotShopifyStoreError indicates the homepage was fetched but carried
// no Shopify signature. It is raised before any further page is fetched.
type NotShopifyStoreError struct {
	URL string
}

func (e *NotShopifyStoreError) Error() string {
	return fmt.Sprintf("not a Shopify store: %s", e.URL)
}
