// Package goquery provides a goquery-based implementation of
// seoaudit.Normalizer for turning raw HTML into the normalized document
// model the audit engine operates on.
package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/seoaudit"
)

// Ensure Normalizer implements seoaudit.Normalizer at compile time.
var _ seoaudit.Normalizer = (*Normalizer)(nil)

// Normalizer parses raw HTML into a seoaudit.Document. It extracts the
// title, headings in document order with their literal levels, paragraph
// text with boundaries preserved, and links deduplicated by exact href.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize parses rawMarkup into a Document identified by sourceID.
// Script, style, and noscript content is stripped before any text
// extraction. Returns an EPARSE error when no text content remains after
// tag stripping.
func (n *Normalizer) Normalize(rawMarkup string, sourceID string) (*seoaudit.Document, error) {
	root, err := goquery.NewDocumentFromReader(strings.NewReader(rawMarkup))
	if err != nil {
		return nil, seoaudit.Errorf(seoaudit.EPARSE, "failed to parse HTML: %v", err)
	}

	root.Find("script, style, noscript").Remove()

	doc := &seoaudit.Document{
		SourceID: sourceID,
		Title:    strings.TrimSpace(root.Find("title").First().Text()),
	}

	// Headings in document order, levels recorded as authored.
	root.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		level, err := strconv.Atoi(strings.TrimPrefix(goquery.NodeName(sel), "h"))
		if err != nil {
			return
		}
		doc.Headings = append(doc.Headings, seoaudit.Heading{
			Level: level,
			Text:  collapseWhitespace(sel.Text()),
		})
	})

	if doc.Title == "" && len(doc.Headings) > 0 && doc.Headings[0].Level == 1 {
		doc.Title = doc.Headings[0].Text
	}

	root.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := collapseWhitespace(sel.Text())
		if text == "" {
			return
		}
		doc.Paragraphs = append(doc.Paragraphs, text)
	})

	// Paragraph boundaries become sequence separators in the raw text;
	// sentence metrics depend on them. Pages without <p> elements fall
	// back to body text so non-article markup still audits.
	if len(doc.Paragraphs) > 0 {
		doc.RawText = strings.Join(doc.Paragraphs, "\n\n")
	} else {
		doc.RawText = collapseWhitespace(root.Find("body").Text())
	}

	if doc.RawText == "" {
		return nil, seoaudit.Errorf(seoaudit.EPARSE, "no extractable text content in %q", sourceID)
	}

	// Deduplicate by exact case-sensitive href, keeping first-seen anchor
	// text. Kind stays unset here; classification is the link analyzer's
	// job.
	seen := make(map[string]bool)
	root.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if seen[href] {
			return
		}
		seen[href] = true

		doc.Links = append(doc.Links, seoaudit.Link{
			Href:       href,
			AnchorText: collapseWhitespace(sel.Text()),
			NoFollow:   hasNoFollow(sel),
		})
	})

	return doc, nil
}

// hasNoFollow reports whether the anchor's rel attribute contains a
// nofollow token.
func hasNoFollow(sel *goquery.Selection) bool {
	rel, exists := sel.Attr("rel")
	if !exists {
		return false
	}
	for _, token := range strings.Fields(rel) {
		if strings.EqualFold(token, "nofollow") {
			return true
		}
	}
	return false
}

// collapseWhitespace trims the string and collapses internal whitespace
// runs to single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
