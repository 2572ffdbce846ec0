package seoaudit

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Rule identifies the heuristic that produced a suggestion.
type Rule string

// Rule values, in enum order. Deterministic suggestion ordering sorts by
// severity first and by this declaration order second.
const (
	RuleThinContent           Rule = "THIN_CONTENT"
	RuleHeadingGap            Rule = "HEADING_GAP"
	RuleKeywordUnderOptimized Rule = "KEYWORD_UNDER_OPTIMIZED"
	RuleKeywordOverOptimized  Rule = "KEYWORD_OVER_OPTIMIZED"
	RuleLinkImbalance         Rule = "LINK_IMBALANCE"
	RuleMalformedLink         Rule = "MALFORMED_LINK"
	RuleLongSentences         Rule = "LONG_SENTENCES"
)

var ruleOrder = map[Rule]int{
	RuleThinContent:           0,
	RuleHeadingGap:            1,
	RuleKeywordUnderOptimized: 2,
	RuleKeywordOverOptimized:  3,
	RuleLinkImbalance:         4,
	RuleMalformedLink:         5,
	RuleLongSentences:         6,
}

// Ordinal returns the rule's position in the enum order. Unknown rules
// sort last.
func (r Rule) Ordinal() int {
	if ord, ok := ruleOrder[r]; ok {
		return ord
	}
	return len(ruleOrder)
}

// Severity grades how urgent a suggestion is.
type Severity string

// Severity values.
const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Rank returns a numeric weight for ordering; higher is more severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	}
	return 0
}

// Suggestion is a single actionable diagnostic derived from metrics and
// link analysis. Its ID is a deterministic hash of the rule and target, so
// regenerating suggestions from identical inputs yields identical IDs.
type Suggestion struct {
	ID       string   `json:"id"`
	Rule     Rule     `json:"rule"`
	Target   string   `json:"target,omitempty"` // violating span, e.g. an href or keyword; empty for document-level rules
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// SuggestionID computes the deterministic identity of a suggestion from
// its rule and target span.
func SuggestionID(rule Rule, target string) string {
	h := xxhash.New()
	_, _ = h.WriteString(string(rule))
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(target)
	return fmt.Sprintf("%016x", h.Sum64())
}

// NewSuggestion constructs a suggestion with its derived ID.
func NewSuggestion(rule Rule, target, message string, severity Severity) Suggestion {
	return Suggestion{
		ID:       SuggestionID(rule, target),
		Rule:     rule,
		Target:   target,
		Message:  message,
		Severity: severity,
	}
}
