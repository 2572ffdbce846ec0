// Package text provides a rule-based implementation of seoaudit.Tokenizer.
// It segments raw text into word and punctuation tokens, counts sentences,
// and tags English stop words. It is deterministic and dependency-free;
// a real NLP backend can replace it behind the same interface.
package text

import (
	"context"
	"strings"
	"unicode"

	"github.com/fwojciec/seoaudit"
)

// Ensure Tokenizer implements seoaudit.Tokenizer at compile time.
var _ seoaudit.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is the default text-analysis backend.
type Tokenizer struct {
	stopWords map[string]bool
}

// NewTokenizer creates a Tokenizer with the built-in English stop word
// list.
func NewTokenizer() *Tokenizer {
	stop := make(map[string]bool, len(englishStopWords))
	for _, w := range englishStopWords {
		stop[w] = true
	}
	return &Tokenizer{stopWords: stop}
}

// Tokenize segments text into tokens and sentences. Words are runs of
// letters, digits, apostrophes, and internal hyphens; everything else
// non-space becomes punctuation tokens. The lemma is the lowercased
// surface form.
func (t *Tokenizer) Tokenize(_ context.Context, text string) (*seoaudit.TokenizedText, error) {
	result := &seoaudit.TokenizedText{}

	for _, para := range strings.Split(text, "\n\n") {
		tokens, sentences := t.tokenizeParagraph(para)
		result.Tokens = append(result.Tokens, tokens...)
		result.SentenceCount += sentences
	}

	return result, nil
}

// tokenizeParagraph tokenizes one paragraph and counts its sentences.
// A paragraph with words but no sentence-terminating punctuation counts
// as one sentence; paragraph boundaries always end a sentence.
func (t *Tokenizer) tokenizeParagraph(para string) ([]seoaudit.Token, int) {
	var tokens []seoaudit.Token
	var sentences int
	var hasWords bool
	var terminated bool

	runes := []rune(para)
	for i := 0; i < len(runes); {
		r := runes[i]

		switch {
		case unicode.IsSpace(r):
			i++

		case isWordRune(r):
			start := i
			for i < len(runes) && (isWordRune(runes[i]) || isWordInternal(runes[i], runes, i)) {
				i++
			}
			surface := string(runes[start:i])
			lemma := strings.ToLower(surface)

			pos := seoaudit.POSWord
			if t.stopWords[lemma] {
				pos = seoaudit.POSStop
			}
			tokens = append(tokens, seoaudit.Token{Surface: surface, Lemma: lemma, POS: pos})
			hasWords = true
			terminated = false

		default:
			start := i
			for i < len(runes) && !unicode.IsSpace(runes[i]) && !isWordRune(runes[i]) {
				i++
			}
			surface := string(runes[start:i])
			tokens = append(tokens, seoaudit.Token{Surface: surface, Lemma: surface, POS: seoaudit.POSPunct})

			if hasWords && !terminated && strings.ContainsAny(surface, ".!?") {
				sentences++
				terminated = true
			}
		}
	}

	if hasWords && !terminated {
		sentences++
	}

	return tokens, sentences
}

// isWordRune reports whether r starts or continues a word token.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isWordInternal reports whether r continues a word when surrounded by
// word runes, covering apostrophes (don't) and hyphens (well-known).
func isWordInternal(r rune, runes []rune, i int) bool {
	if r != '\'' && r != '-' && r != '’' {
		return false
	}
	return i > 0 && isWordRune(runes[i-1]) && i+1 < len(runes) && isWordRune(runes[i+1])
}

// englishStopWords is a compact English stop word list, matching the
// filtering behavior of common NLP toolkits closely enough for keyword
// extraction.
var englishStopWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "aren't", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can",
	"can't", "cannot", "could", "couldn't", "did", "didn't", "do", "does",
	"doesn't", "doing", "don't", "down", "during", "each", "few", "for",
	"from", "further", "had", "hadn't", "has", "hasn't", "have", "haven't",
	"having", "he", "her", "here", "hers", "herself", "him", "himself",
	"his", "how", "i", "if", "in", "into", "is", "isn't", "it", "its",
	"itself", "just", "me", "more", "most", "my", "myself", "no", "nor",
	"not", "now", "of", "off", "on", "once", "only", "or", "other", "our",
	"ours", "ourselves", "out", "over", "own", "same", "she", "should",
	"shouldn't", "so", "some", "such", "than", "that", "the", "their",
	"theirs", "them", "themselves", "then", "there", "these", "they",
	"this", "those", "through", "to", "too", "under", "until", "up",
	"very", "was", "wasn't", "we", "were", "weren't", "what", "when",
	"where", "which", "while", "who", "whom", "why", "will", "with",
	"won't", "would", "wouldn't", "you", "your", "yours", "yourself",
	"yourselves",
}
