package seoaudit

// LinkKind classifies a link relative to the audited site.
type LinkKind string

// Link classification values. The kind is derived from the link's href and
// the configured base domain; it is never stored ambiguously.
const (
	LinkInternal LinkKind = "internal"
	LinkExternal LinkKind = "external"
)

// Heading is a single document heading with its literal nesting level.
// Levels are recorded as authored (1-6), never renumbered.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link is a hyperlink extracted from a document. Kind is populated by the
// link analyzer, not the normalizer; NoFollow reflects a rel="nofollow"
// (or equivalent) marker in the source attributes.
type Link struct {
	Href       string   `json:"href"`
	AnchorText string   `json:"anchorText"`
	Kind       LinkKind `json:"kind,omitempty"`
	NoFollow   bool     `json:"noFollow,omitempty"`
}

// Document is the normalized form of a raw HTML/text source. Headings and
// paragraphs preserve document order; RawText is the concatenation basis
// for all text metrics, with paragraph boundaries as separators.
type Document struct {
	SourceID   string    `json:"sourceId"` // URL or file path
	Title      string    `json:"title"`
	Headings   []Heading `json:"headings"`
	Paragraphs []string  `json:"paragraphs"`
	Links      []Link    `json:"links"` // deduplicated by exact href
	RawText    string    `json:"rawText"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SourceID == "" {
		return Errorf(EINVALID, "document source ID required")
	}
	if d.RawText == "" {
		return Errorf(EPARSE, "document contains no extractable text")
	}
	return nil
}

// Normalizer parses raw markup into a normalized Document.
// Implementations hide the HTML parsing details.
type Normalizer interface {
	// Normalize parses raw HTML/text identified by sourceID.
	// Returns an EPARSE error when no text content survives tag stripping.
	Normalize(rawMarkup string, sourceID string) (*Document, error)
}
