package seoaudit

import "context"

// Fetcher retrieves raw HTML from URLs. The engine never fetches content
// itself; fetching belongs to the input boundary.
type Fetcher interface {
	// Fetch retrieves the raw markup at the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// Loader reads raw HTML from a local file. The returned sourceID is the
// cleaned file path and serves as the document's identity.
type Loader interface {
	Load(path string) (html string, sourceID string, err error)
}
