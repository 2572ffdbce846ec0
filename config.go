package seoaudit

// Default rule thresholds. Each is overridable via the config file or CLI
// flags; the defaults mirror common SEO guidance.
const (
	DefaultMinWords           = 300
	DefaultKeywordDensityLow  = 0.005
	DefaultKeywordDensityHigh = 0.03
	DefaultMaxTotalLinks      = 100
	DefaultMinInternalLinks   = 2
	DefaultMaxSentenceLength  = 20.0
	DefaultTopKeywords        = 10
)

// Config holds the rule thresholds and site identity for an audit run.
// It is immutable once an audit run starts; the suggestion engine receives
// it by value and never mutates it.
type Config struct {
	// BaseDomain is the site's host used for internal/external link
	// classification, e.g. "example.com". When empty it is derived from
	// the audited URL's host where possible.
	BaseDomain string `yaml:"base_domain"`

	// MinWords triggers THIN_CONTENT when word count falls below it.
	// A word count exactly equal to MinWords does not trigger.
	MinWords int `yaml:"min_words"`

	// KeywordDensityLow and KeywordDensityHigh bound the acceptable
	// primary keyword density (frequency / word count). Density below the
	// band triggers KEYWORD_UNDER_OPTIMIZED, above it
	// KEYWORD_OVER_OPTIMIZED.
	KeywordDensityLow  float64 `yaml:"keyword_density_low"`
	KeywordDensityHigh float64 `yaml:"keyword_density_high"`

	// MaxTotalLinks triggers LINK_IMBALANCE when the combined link count
	// exceeds it.
	MaxTotalLinks int `yaml:"max_total_links"`

	// MinInternalLinks triggers LINK_IMBALANCE when internal links fall
	// below it while the document has links at all.
	MinInternalLinks int `yaml:"min_internal_links"`

	// MaxSentenceLength triggers LONG_SENTENCES when the average sentence
	// length (in words) exceeds it.
	MaxSentenceLength float64 `yaml:"max_sentence_length"`

	// TopKeywords is the size of the ranked keyword list kept on reports.
	TopKeywords int `yaml:"top_keywords"`
}

// DefaultConfig returns a Config populated with the documented defaults.
func DefaultConfig() Config {
	return Config{
		MinWords:           DefaultMinWords,
		KeywordDensityLow:  DefaultKeywordDensityLow,
		KeywordDensityHigh: DefaultKeywordDensityHigh,
		MaxTotalLinks:      DefaultMaxTotalLinks,
		MinInternalLinks:   DefaultMinInternalLinks,
		MaxSentenceLength:  DefaultMaxSentenceLength,
		TopKeywords:        DefaultTopKeywords,
	}
}

// Validate returns an error if the config contains invalid thresholds.
func (c Config) Validate() error {
	if c.MinWords < 0 {
		return Errorf(EINVALID, "min_words must be non-negative")
	}
	if c.KeywordDensityLow < 0 || c.KeywordDensityHigh < 0 {
		return Errorf(EINVALID, "keyword density bounds must be non-negative")
	}
	if c.KeywordDensityLow > c.KeywordDensityHigh {
		return Errorf(EINVALID, "keyword_density_low must not exceed keyword_density_high")
	}
	if c.MaxTotalLinks < 0 {
		return Errorf(EINVALID, "max_total_links must be non-negative")
	}
	if c.MinInternalLinks < 0 {
		return Errorf(EINVALID, "min_internal_links must be non-negative")
	}
	if c.MaxSentenceLength < 0 {
		return Errorf(EINVALID, "max_sentence_length must be non-negative")
	}
	return nil
}
