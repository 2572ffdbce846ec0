package seoaudit

import "sort"

// KeywordCount is a keyword with its frequency, used for ranked views.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// Metrics holds the computed content metrics for a Document snapshot.
// Metrics are immutable once computed; re-running the calculator on the
// same snapshot yields an identical value.
type Metrics struct {
	WordCount         int     `json:"wordCount"`
	SentenceCount     int     `json:"sentenceCount"`
	AvgSentenceLength float64 `json:"avgSentenceLength"`

	// HeadingCounts tallies heading occurrences per level (1-6).
	// Levels with no headings are absent from the map.
	HeadingCounts map[int]int `json:"headingCounts"`

	// KeywordFrequencies counts lemmatized, stop-word-filtered, case-folded
	// keyword tokens. KeywordOrder records first-occurrence order and is
	// used to break frequency ties in ranked views.
	KeywordFrequencies map[string]int `json:"keywordFrequencies"`
	KeywordOrder       []string       `json:"keywordOrder"`

	InternalLinkCount int `json:"internalLinkCount"`
	ExternalLinkCount int `json:"externalLinkCount"`

	// InsufficientText is set when the tokenizer found no sentences, in
	// which case AvgSentenceLength is defined as 0.
	InsufficientText bool `json:"insufficientText,omitempty"`
}

// TopKeywords returns the n most frequent keywords, ties broken by
// first-occurrence order. Returns fewer than n when the document has
// fewer distinct keywords.
func (m *Metrics) TopKeywords(n int) []KeywordCount {
	if n <= 0 || len(m.KeywordFrequencies) == 0 {
		return nil
	}

	rank := make(map[string]int, len(m.KeywordOrder))
	for i, kw := range m.KeywordOrder {
		rank[kw] = i
	}

	counts := make([]KeywordCount, 0, len(m.KeywordOrder))
	for _, kw := range m.KeywordOrder {
		counts = append(counts, KeywordCount{Keyword: kw, Count: m.KeywordFrequencies[kw]})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return rank[counts[i].Keyword] < rank[counts[j].Keyword]
	})

	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// PrimaryKeyword returns the top-ranked keyword, or "" when the document
// has none. Used for density-band checks when no target keyword is
// configured.
func (m *Metrics) PrimaryKeyword() string {
	top := m.TopKeywords(1)
	if len(top) == 0 {
		return ""
	}
	return top[0].Keyword
}

// LinkStats holds the link analyzer's output for a Document.
type LinkStats struct {
	InternalCount int `json:"internalCount"`
	ExternalCount int `json:"externalCount"`

	// Malformed lists hrefs that could not be parsed as URLs. They are
	// counted as external and surfaced as suggestions, never as errors.
	Malformed []string `json:"malformed,omitempty"`

	// MissingNoFollow lists external links without a nofollow marker.
	MissingNoFollow []Link `json:"missingNoFollow,omitempty"`
}

// TotalCount returns the combined internal and external link count.
func (s *LinkStats) TotalCount() int {
	return s.InternalCount + s.ExternalCount
}
