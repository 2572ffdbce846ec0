package audit

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/seoaudit"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Runner orchestrates audit pipelines. A single document's pipeline is a
// strict sequential chain (normalize, tokenize, metrics, links,
// suggestions, reconciliation, persistence); batches run that chain
// concurrently across sources with no shared mutable state between them.
type Runner struct {
	Normalizer  seoaudit.Normalizer
	Tokenizer   seoaudit.Tokenizer
	Fetcher     seoaudit.Fetcher
	Store       seoaudit.ResultStore
	Config      seoaudit.Config
	Concurrency int

	// Now reports the current time; defaults to time.Now. Overridable for
	// tests.
	Now func() time.Time
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	SourceID  string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// BatchResult holds the outcome for one source in a batch run. Exactly one
// of Record and Err is set.
type BatchResult struct {
	SourceID string
	Record   *seoaudit.AuditRecord
	Err      error
}

// Audit runs the full pipeline over raw markup and persists the resulting
// record. Prior approval decisions for the same content fingerprint carry
// forward; changed content starts a fresh pending ledger while history for
// earlier fingerprints is retained in the store.
func (r *Runner) Audit(ctx context.Context, rawMarkup, sourceID string) (*seoaudit.AuditRecord, error) {
	doc, err := r.Normalizer.Normalize(rawMarkup, sourceID)
	if err != nil {
		return nil, err
	}

	tok, err := r.Tokenizer.Tokenize(ctx, doc.RawText)
	if err != nil {
		return nil, err
	}

	metrics := ComputeMetrics(doc, tok)

	stats, classified := AnalyzeLinks(doc.Links, r.baseDomain(sourceID))
	doc.Links = classified
	metrics.InternalLinkCount = stats.InternalCount
	metrics.ExternalLinkCount = stats.ExternalCount

	suggestions := Derive(metrics, stats, doc, r.Config)

	fingerprint := seoaudit.Fingerprint(doc)

	prior, err := r.Store.Load(ctx, sourceID, fingerprint)
	if err != nil && seoaudit.ErrorCode(err) != seoaudit.ENOTFOUND {
		return nil, err
	}

	record := &seoaudit.AuditRecord{
		RunID:       uuid.NewString(),
		SourceID:    sourceID,
		Fingerprint: fingerprint,
		GeneratedAt: r.now(),
		Title:       doc.Title,
		Metrics:     metrics,
		Links:       stats,
		Suggestions: Reconcile(fingerprint, suggestions, prior),
	}

	if err := r.Store.Save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// AuditURL fetches a URL through the configured fetcher and audits its
// content.
func (r *Runner) AuditURL(ctx context.Context, rawURL string) (*seoaudit.AuditRecord, error) {
	html, err := r.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return r.Audit(ctx, html, rawURL)
}

// RunBatch audits multiple URLs concurrently. Each source's pipeline runs
// in isolation; one source failing never aborts its siblings, and results
// are returned per source in input order. Canceling the context stops
// scheduling new sources while in-flight ones complete or fail cleanly.
func (r *Runner) RunBatch(ctx context.Context, urls []string, progress ProgressFunc) []BatchResult {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	total := len(urls)
	results := make([]BatchResult, total)

	var completed atomic.Int64

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g := &errgroup.Group{}
	g.SetLimit(concurrency)

	for i, rawURL := range urls {
		i, rawURL := i, rawURL
		if ctx.Err() != nil {
			// Stop scheduling; unscheduled sources report the
			// cancellation.
			for j := i; j < total; j++ {
				results[j] = BatchResult{SourceID: urls[j], Err: ctx.Err()}
			}
			break
		}

		g.Go(func() error {
			record, err := r.AuditURL(ctx, rawURL)
			results[i] = BatchResult{SourceID: rawURL, Record: record, Err: err}

			if progress != nil {
				event := ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Add(1)),
					Total:     total,
					SourceID:  rawURL,
				}
				if err != nil {
					event.Type = ProgressFailed
					event.Error = err
				}
				progress(event)
			}
			return nil
		})
	}

	_ = g.Wait()

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: int(completed.Load()), Total: total})
	}

	return results
}

// baseDomain resolves the domain used for link classification: the
// configured base domain when set, otherwise the audited URL's host.
func (r *Runner) baseDomain(sourceID string) string {
	if r.Config.BaseDomain != "" {
		return r.Config.BaseDomain
	}
	if u, err := url.Parse(sourceID); err == nil {
		return u.Hostname()
	}
	return ""
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
