// Package mock provides mock implementations of seoaudit interfaces for
// testing.
package mock

import "github.com/fwojciec/seoaudit"

var _ seoaudit.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of seoaudit.Normalizer.
type Normalizer struct {
	NormalizeFn func(rawMarkup string, sourceID string) (*seoaudit.Document, error)
}

func (n *Normalizer) Normalize(rawMarkup string, sourceID string) (*seoaudit.Document, error) {
	return n.NormalizeFn(rawMarkup, sourceID)
}
