// Package audit implements the SEO audit engine: metric computation, link
// analysis, suggestion derivation, approval reconciliation, and the
// single-source and batch pipelines that tie them together.
package audit

import (
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/seoaudit"
)

// minKeywordLength excludes very short tokens from keyword frequencies.
const minKeywordLength = 3

// ComputeMetrics computes content metrics from a normalized document and
// its tokenization. The result is immutable for a given document snapshot:
// identical inputs always produce identical metrics. Link counts are
// filled in separately by the link analyzer.
func ComputeMetrics(doc *seoaudit.Document, tok *seoaudit.TokenizedText) *seoaudit.Metrics {
	m := &seoaudit.Metrics{
		SentenceCount:      tok.SentenceCount,
		HeadingCounts:      make(map[int]int),
		KeywordFrequencies: make(map[string]int),
	}

	for _, token := range tok.Tokens {
		if token.POS == seoaudit.POSPunct {
			continue
		}
		m.WordCount++

		if token.POS != seoaudit.POSWord {
			continue
		}
		if !isKeyword(token.Lemma) {
			continue
		}
		if _, seen := m.KeywordFrequencies[token.Lemma]; !seen {
			m.KeywordOrder = append(m.KeywordOrder, token.Lemma)
		}
		m.KeywordFrequencies[token.Lemma]++
	}

	// Average sentence length is defined as 0 when there are no
	// sentences; the condition is flagged, never a division by zero.
	if tok.SentenceCount > 0 {
		m.AvgSentenceLength = float64(m.WordCount) / float64(tok.SentenceCount)
	} else {
		m.InsufficientText = true
	}

	for _, heading := range doc.Headings {
		m.HeadingCounts[heading.Level]++
	}

	return m
}

// isKeyword reports whether a case-folded lemma qualifies as a keyword:
// alphabetic and longer than two runes.
func isKeyword(lemma string) bool {
	if utf8.RuneCountInString(lemma) < minKeywordLength {
		return false
	}
	for _, r := range lemma {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
