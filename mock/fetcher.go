package mock

import (
	"context"

	"github.com/fwojciec/seoaudit"
)

var _ seoaudit.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of seoaudit.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ seoaudit.Loader = (*Loader)(nil)

// Loader is a mock implementation of seoaudit.Loader.
type Loader struct {
	LoadFn func(path string) (html string, sourceID string, err error)
}

func (l *Loader) Load(path string) (string, string, error) {
	return l.LoadFn(path)
}
