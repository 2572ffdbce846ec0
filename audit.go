package seoaudit

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Status is the approval state of a suggestion.
type Status string

// Approval lifecycle states. A suggestion is created pending and moves to
// approved or rejected only through explicit human action. Both are
// terminal; a new content fingerprint starts a fresh ledger instead of
// reopening decided records.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Terminal reports whether the status permits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// ApprovalRecord tracks the human decision for one suggestion under one
// content fingerprint.
type ApprovalRecord struct {
	SuggestionID string     `json:"suggestionId"`
	Status       Status     `json:"status"`
	DecidedAt    *time.Time `json:"decidedAt,omitempty"`
}

// AuditSuggestion pairs a derived suggestion with its approval state.
type AuditSuggestion struct {
	Suggestion Suggestion     `json:"suggestion"`
	Approval   ApprovalRecord `json:"approval"`
}

// AuditRecord is the aggregate outcome of one audit run: the document
// summary, its metrics and link stats, and the ordered suggestion set with
// approval state. Once persisted it is owned by the result store; the
// engine never mutates it except through a new audit run.
type AuditRecord struct {
	RunID       string            `json:"runId"`
	SourceID    string            `json:"sourceId"`
	Fingerprint string            `json:"fingerprint"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Title       string            `json:"title"`
	Metrics     *Metrics          `json:"metrics"`
	Links       *LinkStats        `json:"links"`
	Suggestions []AuditSuggestion `json:"suggestions"`
}

// Validate returns an error if the record cannot be persisted.
func (r *AuditRecord) Validate() error {
	if r.SourceID == "" {
		return Errorf(EINVALID, "audit record source ID required")
	}
	if r.Fingerprint == "" {
		return Errorf(EINVALID, "audit record fingerprint required")
	}
	return nil
}

// Fingerprint computes a stable content fingerprint for a document: a hash
// over its raw text plus canonicalized heading and link structure. Two runs
// over unchanged content produce the same fingerprint; any change to text,
// headings, or link targets produces a different one.
func Fingerprint(doc *Document) string {
	h := xxhash.New()
	_, _ = h.WriteString(doc.RawText)
	_, _ = h.WriteString("\x00")

	// Headings in document order; order is part of the structure.
	for _, heading := range doc.Headings {
		_, _ = h.WriteString(strconv.Itoa(heading.Level))
		_, _ = h.WriteString(":")
		_, _ = h.WriteString(heading.Text)
		_, _ = h.WriteString("\n")
	}
	_, _ = h.WriteString("\x00")

	// Links sorted by href so the fingerprint is insensitive to markup
	// reordering that leaves the link set unchanged.
	hrefs := make([]string, 0, len(doc.Links))
	for _, link := range doc.Links {
		hrefs = append(hrefs, link.Href)
	}
	sort.Strings(hrefs)
	for _, href := range hrefs {
		_, _ = h.WriteString(href)
		_, _ = h.WriteString("\n")
	}

	return fmt.Sprintf("%016x", h.Sum64())
}

// ResultStore persists audit records keyed by (source ID, fingerprint).
// Writes are append-only per fingerprint: saving an existing key replaces
// only that key's suggestion/approval view, never historical entries for
// other fingerprints of the same source.
type ResultStore interface {
	// Save persists a record, replacing any existing record for the same
	// (source ID, fingerprint) key atomically. Returns an EPERSISTENCE
	// error when the destination is unwritable; no partial record is
	// written.
	Save(ctx context.Context, record *AuditRecord) error

	// Load retrieves the record for a (source ID, fingerprint) key.
	// Returns ENOTFOUND if no record exists.
	Load(ctx context.Context, sourceID, fingerprint string) (*AuditRecord, error)

	// Latest retrieves the most recently generated record for a source
	// across all fingerprints. Returns ENOTFOUND if the source has never
	// been audited.
	Latest(ctx context.Context, sourceID string) (*AuditRecord, error)

	// History lists all retained records for a source, oldest first.
	History(ctx context.Context, sourceID string) ([]*AuditRecord, error)
}
