package seoaudit

import "context"

// Token is a single token produced by the text-analysis backend.
type Token struct {
	Surface string // token as it appears in the text
	Lemma   string // base form; equals Surface for backends without lemmas
	POS     string // coarse part-of-speech tag, e.g. "WORD", "PUNCT"
}

// Part-of-speech tags the engine relies on. Backends may emit finer tags;
// only these affect metric computation. Stop words count toward word
// totals but are excluded from keyword frequencies.
const (
	POSWord  = "WORD"
	POSStop  = "STOP"
	POSPunct = "PUNCT"
)

// TokenizedText is the output of tokenizing a document's raw text.
type TokenizedText struct {
	Tokens        []Token
	SentenceCount int
}

// Tokenizer segments text into tokens and sentences. Any NLP backend can be
// substituted as long as this contract holds; the engine treats the
// tokenizer as a black box.
type Tokenizer interface {
	Tokenize(ctx context.Context, text string) (*TokenizedText, error)
}
