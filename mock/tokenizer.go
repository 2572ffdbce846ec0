package mock

import (
	"context"

	"github.com/fwojciec/seoaudit"
)

var _ seoaudit.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is a mock implementation of seoaudit.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(ctx context.Context, text string) (*seoaudit.TokenizedText, error)
}

func (t *Tokenizer) Tokenize(ctx context.Context, text string) (*seoaudit.TokenizedText, error) {
	return t.TokenizeFn(ctx, text)
}
