package audit

import (
	"fmt"
	"sort"

	"github.com/fwojciec/seoaudit"
)

// Derive applies the threshold and heuristic rules to the computed metrics
// and link stats and returns the resulting suggestions. It is a pure
// function of its inputs: identical inputs always yield an identical,
// identically ordered sequence. Ordering is severity descending, then rule
// enum order, then first-seen target.
func Derive(metrics *seoaudit.Metrics, stats *seoaudit.LinkStats, doc *seoaudit.Document, cfg seoaudit.Config) []seoaudit.Suggestion {
	var out []seoaudit.Suggestion

	out = append(out, thinContent(metrics, cfg)...)
	out = append(out, headingGaps(doc, metrics)...)
	out = append(out, keywordOptimization(metrics, cfg)...)
	out = append(out, linkImbalance(stats, cfg)...)
	out = append(out, malformedLinks(stats)...)
	out = append(out, longSentences(metrics, cfg)...)

	// Stable sort keeps first-seen target order within equal
	// severity/rule groups.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Severity.Rank() != out[j].Severity.Rank() {
			return out[i].Severity.Rank() > out[j].Severity.Rank()
		}
		return out[i].Rule.Ordinal() < out[j].Rule.Ordinal()
	})

	return out
}

// thinContent fires when the word count is strictly below the configured
// minimum; a count exactly equal to the minimum does not trigger.
func thinContent(metrics *seoaudit.Metrics, cfg seoaudit.Config) []seoaudit.Suggestion {
	if metrics.WordCount >= cfg.MinWords {
		return nil
	}
	return []seoaudit.Suggestion{seoaudit.NewSuggestion(
		seoaudit.RuleThinContent,
		"",
		fmt.Sprintf("Content has %d words; aim for at least %d words for better SEO performance.", metrics.WordCount, cfg.MinWords),
		seoaudit.SeverityWarning,
	)}
}

// headingGaps fires once when the document has no level-1 heading, and
// once per heading that jumps more than one level deeper than its
// predecessor.
func headingGaps(doc *seoaudit.Document, metrics *seoaudit.Metrics) []seoaudit.Suggestion {
	var out []seoaudit.Suggestion

	if metrics.HeadingCounts[1] == 0 {
		out = append(out, seoaudit.NewSuggestion(
			seoaudit.RuleHeadingGap,
			"missing-h1",
			"Document has no level-1 heading; add an H1 to anchor the heading hierarchy.",
			seoaudit.SeverityWarning,
		))
	}

	for i := 1; i < len(doc.Headings); i++ {
		prev, cur := doc.Headings[i-1].Level, doc.Headings[i].Level
		if cur > prev+1 {
			out = append(out, seoaudit.NewSuggestion(
				seoaudit.RuleHeadingGap,
				fmt.Sprintf("h%d>h%d#%d", prev, cur, i),
				fmt.Sprintf("Heading level jumps from H%d to H%d at %q; keep heading levels sequential.", prev, cur, doc.Headings[i].Text),
				seoaudit.SeverityWarning,
			))
		}
	}

	return out
}

// keywordOptimization checks the primary keyword's density against the
// configured band. The primary keyword is the top-ranked keyword by
// frequency, first-occurrence order breaking ties.
func keywordOptimization(metrics *seoaudit.Metrics, cfg seoaudit.Config) []seoaudit.Suggestion {
	primary := metrics.PrimaryKeyword()
	if primary == "" || metrics.WordCount == 0 {
		return nil
	}

	density := float64(metrics.KeywordFrequencies[primary]) / float64(metrics.WordCount)

	switch {
	case density < cfg.KeywordDensityLow:
		return []seoaudit.Suggestion{seoaudit.NewSuggestion(
			seoaudit.RuleKeywordUnderOptimized,
			primary,
			fmt.Sprintf("Primary keyword %q density is %.4f, below the %.4f target; use it more consistently.", primary, density, cfg.KeywordDensityLow),
			seoaudit.SeverityInfo,
		)}
	case density > cfg.KeywordDensityHigh:
		return []seoaudit.Suggestion{seoaudit.NewSuggestion(
			seoaudit.RuleKeywordOverOptimized,
			primary,
			fmt.Sprintf("Primary keyword %q density is %.4f, above the %.4f ceiling; reduce repetition to avoid keyword stuffing.", primary, density, cfg.KeywordDensityHigh),
			seoaudit.SeverityCritical,
		)}
	}
	return nil
}

// linkImbalance covers internal/external skew and the total link ceiling.
// Each violated condition yields one suggestion with its own target.
func linkImbalance(stats *seoaudit.LinkStats, cfg seoaudit.Config) []seoaudit.Suggestion {
	var out []seoaudit.Suggestion

	switch {
	case stats.ExternalCount > 0 && stats.InternalCount == 0:
		out = append(out, seoaudit.NewSuggestion(
			seoaudit.RuleLinkImbalance,
			"no-internal-links",
			fmt.Sprintf("Document has %d external links but no internal links; add internal links to improve site structure.", stats.ExternalCount),
			seoaudit.SeverityInfo,
		))
	case stats.TotalCount() > 0 && stats.InternalCount < cfg.MinInternalLinks:
		out = append(out, seoaudit.NewSuggestion(
			seoaudit.RuleLinkImbalance,
			"few-internal-links",
			fmt.Sprintf("Document has only %d internal links; aim for at least %d.", stats.InternalCount, cfg.MinInternalLinks),
			seoaudit.SeverityInfo,
		))
	}

	if stats.TotalCount() > 0 && stats.ExternalCount == 0 {
		out = append(out, seoaudit.NewSuggestion(
			seoaudit.RuleLinkImbalance,
			"no-external-links",
			"Document has no external links; link to authoritative sources to support its claims.",
			seoaudit.SeverityInfo,
		))
	}

	if stats.TotalCount() > cfg.MaxTotalLinks {
		out = append(out, seoaudit.NewSuggestion(
			seoaudit.RuleLinkImbalance,
			"total-links-ceiling",
			fmt.Sprintf("Document has %d links, above the %d ceiling; trim low-value links.", stats.TotalCount(), cfg.MaxTotalLinks),
			seoaudit.SeverityInfo,
		))
	}

	return out
}

// malformedLinks propagates link analyzer flags, one suggestion per
// unparseable href.
func malformedLinks(stats *seoaudit.LinkStats) []seoaudit.Suggestion {
	var out []seoaudit.Suggestion
	for _, href := range stats.Malformed {
		out = append(out, seoaudit.NewSuggestion(
			seoaudit.RuleMalformedLink,
			href,
			fmt.Sprintf("Link target %q is not a valid URL; fix or remove it.", href),
			seoaudit.SeverityWarning,
		))
	}
	return out
}

// longSentences fires when the average sentence length exceeds the
// configured maximum.
func longSentences(metrics *seoaudit.Metrics, cfg seoaudit.Config) []seoaudit.Suggestion {
	if metrics.InsufficientText || metrics.AvgSentenceLength <= cfg.MaxSentenceLength {
		return nil
	}
	return []seoaudit.Suggestion{seoaudit.NewSuggestion(
		seoaudit.RuleLongSentences,
		"",
		fmt.Sprintf("Average sentence length is %.1f words; keep it under %.0f for better readability.", metrics.AvgSentenceLength, cfg.MaxSentenceLength),
		seoaudit.SeverityInfo,
	)}
}
