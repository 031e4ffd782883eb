// Package insights defines the brand-context extraction engine and the
// document types it produces.
package insights

// Product is one entry from a storefront product feed.
type Product struct {
	ID          string           `json:"id,omitempty"`
	Title       string           `json:"title"`
	Handle      string           `json:"handle,omitempty"`
	Description string           `json:"description,omitempty"`
	Price       string           `json:"price,omitempty"`
	Image       string           `json:"image,omitempty"`
	URL         string           `json:"url,omitempty"`
	Tags        []string         `json:"tags"`
	Variants    []map[string]any `json:"variants,omitempty"`
}

// FAQ is a single question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Socials holds one handle (or raw link) per recognized platform.
// Empty means the platform was not found on the homepage.
type Socials struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Pinterest string `json:"pinterest,omitempty"`
}

// Contact lists deduplicated email addresses and phone numbers.
type Contact struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

// Policies holds the text of store policy pages. Each field is
// independently populated or left empty.
type Policies struct {
	Privacy      string `json:"privacy,omitempty"`
	ReturnPolicy string `json:"return_policy,omitempty"`
	Refund       string `json:"refund,omitempty"`
	Terms        string `json:"terms,omitempty"`
}

// Links holds named navigation links discovered on the homepage.
type Links struct {
	OrderTracking string `json:"order_tracking,omitempty"`
	ContactUs     string `json:"contact_us,omitempty"`
	Blogs         string `json:"blogs,omitempty"`
	Shipping      string `json:"shipping,omitempty"`
	Careers       string `json:"careers,omitempty"`
}

// BrandContext is the document assembled from one extraction run.
// HeroProducts is always a subset of Products, matched by handle.
type BrandContext struct {
	Brand        string    `json:"brand"`
	Products     []Product `json:"products"`
	HeroProducts []Product `json:"hero_products"`
	Policies     Policies  `json:"policies"`
	FAQs         []FAQ     `json:"faqs"`
	Socials      Socials   `json:"socials"`
	Contact      Contact   `json:"contact"`
	About        string    `json:"about,omitempty"`
	Links        Links     `json:"links"`
}
