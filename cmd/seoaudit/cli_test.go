package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/seoaudit"
	"github.com/fwojciec/seoaudit/audit"
	main "github.com/fwojciec/seoaudit/cmd/seoaudit"
	"github.com/fwojciec/seoaudit/goquery"
	"github.com/fwojciec/seoaudit/mock"
	"github.com/fwojciec/seoaudit/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<html><head><title>Tea Brewing Basics</title></head><body>
<h1>Tea Brewing Basics</h1>
<p>Water temperature matters when brewing delicate green leaves. Cooler water preserves sweetness.</p>
<p>Steeping time changes everything. Short steeps taste light while longer infusions grow bitter.</p>
<p><a href="/guides/green">green tea guide</a> and <a href="/guides/black">black tea guide</a></p>
</body></html>`

// testRecord returns a persisted-looking audit record with one pending
// suggestion.
func testRecord(sourceID string) *seoaudit.AuditRecord {
	s := seoaudit.NewSuggestion(seoaudit.RuleThinContent, "", "Content has 42 words; aim for at least 300 words for better SEO performance.", seoaudit.SeverityWarning)
	return &seoaudit.AuditRecord{
		RunID:       "run-1",
		SourceID:    sourceID,
		Fingerprint: "00000000deadbeef",
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Title:       "Tea Brewing Basics",
		Metrics:     &seoaudit.Metrics{WordCount: 42, SentenceCount: 4, AvgSentenceLength: 10.5},
		Links:       &seoaudit.LinkStats{InternalCount: 2},
		Suggestions: []seoaudit.AuditSuggestion{
			{
				Suggestion: s,
				Approval:   seoaudit.ApprovalRecord{SuggestionID: s.ID, Status: seoaudit.StatusPending},
			},
		},
	}
}

// testRunner wires a runner from real analysis components and a mock
// store.
func testRunner(fetcher seoaudit.Fetcher, store seoaudit.ResultStore) *audit.Runner {
	return &audit.Runner{
		Normalizer: goquery.NewNormalizer(),
		Tokenizer:  text.NewTokenizer(),
		Fetcher:    fetcher,
		Store:      store,
		Config:     seoaudit.DefaultConfig(),
	}
}

// emptyStore returns a mock store with no prior records that accepts any
// save.
func emptyStore() *mock.ResultStore {
	return &mock.ResultStore{
		SaveFn: func(_ context.Context, _ *seoaudit.AuditRecord) error { return nil },
		LoadFn: func(_ context.Context, sourceID, fingerprint string) (*seoaudit.AuditRecord, error) {
			return nil, seoaudit.Errorf(seoaudit.ENOTFOUND, "no audit record for %q", sourceID)
		},
	}
}

func TestAuditCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("audits URL and prints record", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				assert.Equal(t, "https://example.com/tea", url)
				return articleHTML, nil
			},
		}

		var saved *seoaudit.AuditRecord
		store := emptyStore()
		store.SaveFn = func(_ context.Context, record *seoaudit.AuditRecord) error {
			saved = record
			return nil
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Runner: testRunner(fetcher, store),
		}

		cmd := &main.AuditCmd{URL: "https://example.com/tea"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "https://example.com/tea", saved.SourceID)

		output := stdout.String()
		assert.Contains(t, output, "https://example.com/tea")
		assert.Contains(t, output, "Tea Brewing Basics")
		assert.Contains(t, output, "THIN_CONTENT")
		assert.Contains(t, output, "[pending]")
		assert.Empty(t, stderr.String())
	})

	t.Run("returns error when fetch fails", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "", seoaudit.Errorf(seoaudit.EINTERNAL, "fetch %q: connection refused", url)
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Runner: testRunner(fetcher, emptyStore()),
		}

		cmd := &main.AuditCmd{URL: "https://example.com/down"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.Empty(t, stdout.String())
	})
}

func TestFileCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("audits loaded file", func(t *testing.T) {
		t.Parallel()

		loader := &mock.Loader{
			LoadFn: func(path string) (string, string, error) {
				assert.Equal(t, "article.html", path)
				return articleHTML, "article.html", nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Runner: testRunner(nil, emptyStore()),
			Loader: loader,
		}

		cmd := &main.FileCmd{Path: "article.html"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "article.html")
		assert.Contains(t, stdout.String(), "THIN_CONTENT")
		assert.Empty(t, stderr.String())
	})

	t.Run("returns error when file cannot be read", func(t *testing.T) {
		t.Parallel()

		loader := &mock.Loader{
			LoadFn: func(path string) (string, string, error) {
				return "", "", seoaudit.Errorf(seoaudit.ENOTFOUND, "cannot read %q", path)
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Loader: loader,
		}

		cmd := &main.FileCmd{Path: "missing.html"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.Empty(t, stdout.String())
	})
}

func TestBulkCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("audits listed URLs and reports failures", func(t *testing.T) {
		t.Parallel()

		listPath := filepath.Join(t.TempDir(), "urls.txt")
		list := "# staging articles\nhttps://example.com/one\n\nhttps://example.com/two\n"
		require.NoError(t, os.WriteFile(listPath, []byte(list), 0o644))

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if url == "https://example.com/two" {
					return "", seoaudit.Errorf(seoaudit.EINTERNAL, "fetch %q: connection refused", url)
				}
				return articleHTML, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Runner: testRunner(fetcher, emptyStore()),
		}

		cmd := &main.BulkCmd{File: listPath}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "https://example.com/one")
		assert.Contains(t, stdout.String(), "https://example.com/two: error:")
		assert.Contains(t, stdout.String(), "Audited 2 sources, 1 failed.")
		// Progress goes to stderr so piped stdout stays clean.
		assert.Contains(t, stderr.String(), "/2]")
	})

	t.Run("returns error for empty URL list", func(t *testing.T) {
		t.Parallel()

		listPath := filepath.Join(t.TempDir(), "urls.txt")
		require.NoError(t, os.WriteFile(listPath, []byte("# nothing here\n\n"), 0o644))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
		}

		cmd := &main.BulkCmd{File: listPath}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no URLs")
	})

	t.Run("returns error for missing list file", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.BulkCmd{File: filepath.Join(t.TempDir(), "absent.txt")}

		err := cmd.Run(deps)

		assert.Error(t, err)
	})
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows latest record by default", func(t *testing.T) {
		t.Parallel()

		store := &mock.ResultStore{
			LatestFn: func(_ context.Context, sourceID string) (*seoaudit.AuditRecord, error) {
				assert.Equal(t, "https://example.com/tea", sourceID)
				return testRecord(sourceID), nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Store:  store,
		}

		cmd := &main.ShowCmd{Source: "https://example.com/tea"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Tea Brewing Basics")
		assert.Contains(t, output, "00000000deadbeef")
		assert.Contains(t, output, "THIN_CONTENT")
		assert.Empty(t, stderr.String())
	})

	t.Run("shows specific fingerprint when requested", func(t *testing.T) {
		t.Parallel()

		store := &mock.ResultStore{
			LoadFn: func(_ context.Context, sourceID, fingerprint string) (*seoaudit.AuditRecord, error) {
				assert.Equal(t, "00000000deadbeef", fingerprint)
				return testRecord(sourceID), nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Store:  store,
		}

		cmd := &main.ShowCmd{Source: "https://example.com/tea", Fingerprint: "00000000deadbeef"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "00000000deadbeef")
	})

	t.Run("returns error when no record exists", func(t *testing.T) {
		t.Parallel()

		store := &mock.ResultStore{
			LatestFn: func(_ context.Context, sourceID string) (*seoaudit.AuditRecord, error) {
				return nil, seoaudit.Errorf(seoaudit.ENOTFOUND, "no audit record for %q", sourceID)
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Store:  store,
		}

		cmd := &main.ShowCmd{Source: "https://example.com/unknown"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, seoaudit.ENOTFOUND, seoaudit.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
		assert.Empty(t, stdout.String())
	})
}

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists records with approval counts", func(t *testing.T) {
		t.Parallel()

		decided := testRecord("https://example.com/tea")
		now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
		decided.Suggestions[0].Approval.Status = seoaudit.StatusApproved
		decided.Suggestions[0].Approval.DecidedAt = &now

		pending := testRecord("https://example.com/tea")
		pending.Fingerprint = "00000000cafef00d"
		pending.GeneratedAt = now

		store := &mock.ResultStore{
			HistoryFn: func(_ context.Context, sourceID string) ([]*seoaudit.AuditRecord, error) {
				return []*seoaudit.AuditRecord{decided, pending}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Store:  store,
		}

		cmd := &main.HistoryCmd{Source: "https://example.com/tea"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "00000000deadbeef")
		assert.Contains(t, output, "1 suggestions (1 approved, 0 rejected, 0 pending)")
		assert.Contains(t, output, "00000000cafef00d")
		assert.Contains(t, output, "1 suggestions (0 approved, 0 rejected, 1 pending)")
		assert.Empty(t, stderr.String())
	})

	t.Run("returns error when history lookup fails", func(t *testing.T) {
		t.Parallel()

		store := &mock.ResultStore{
			HistoryFn: func(_ context.Context, sourceID string) ([]*seoaudit.AuditRecord, error) {
				return nil, seoaudit.Errorf(seoaudit.ENOTFOUND, "no audit record for %q", sourceID)
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Store:  store,
		}

		cmd := &main.HistoryCmd{Source: "https://example.com/unknown"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestApproveCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("approves pending suggestion and persists", func(t *testing.T) {
		t.Parallel()

		record := testRecord("https://example.com/tea")
		suggestionID := record.Suggestions[0].Suggestion.ID

		var saved *seoaudit.AuditRecord
		store := &mock.ResultStore{
			LatestFn: func(_ context.Context, sourceID string) (*seoaudit.AuditRecord, error) {
				return record, nil
			},
			SaveFn: func(_ context.Context, r *seoaudit.AuditRecord) error {
				saved = r
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Store:  store,
		}

		cmd := &main.ApproveCmd{Source: "https://example.com/tea", SuggestionID: suggestionID}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, seoaudit.StatusApproved, saved.Suggestions[0].Approval.Status)
		require.NotNil(t, saved.Suggestions[0].Approval.DecidedAt)
		assert.Contains(t, stdout.String(), suggestionID)
		assert.Contains(t, stdout.String(), "approved")
		assert.Empty(t, stderr.String())
	})

	t.Run("returns error for unknown suggestion without saving", func(t *testing.T) {
		t.Parallel()

		store := &mock.ResultStore{
			LatestFn: func(_ context.Context, sourceID string) (*seoaudit.AuditRecord, error) {
				return testRecord(sourceID), nil
			},
			SaveFn: func(_ context.Context, _ *seoaudit.AuditRecord) error {
				t.Error("Save should not be called for an unknown suggestion")
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Store:  store,
		}

		cmd := &main.ApproveCmd{Source: "https://example.com/tea", SuggestionID: "ffffffffffffffff"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, seoaudit.ENOTFOUND, seoaudit.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
		assert.Empty(t, stdout.String())
	})

	t.Run("returns error when suggestion already decided", func(t *testing.T) {
		t.Parallel()

		record := testRecord("https://example.com/tea")
		now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
		record.Suggestions[0].Approval.Status = seoaudit.StatusRejected
		record.Suggestions[0].Approval.DecidedAt = &now

		store := &mock.ResultStore{
			LatestFn: func(_ context.Context, sourceID string) (*seoaudit.AuditRecord, error) {
				return record, nil
			},
			SaveFn: func(_ context.Context, _ *seoaudit.AuditRecord) error {
				t.Error("Save should not be called for a decided suggestion")
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Store:  store,
		}

		cmd := &main.ApproveCmd{Source: "https://example.com/tea", SuggestionID: record.Suggestions[0].Suggestion.ID}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, seoaudit.EINVALID, seoaudit.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestRejectCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("rejects pending suggestion and persists", func(t *testing.T) {
		t.Parallel()

		record := testRecord("https://example.com/tea")
		suggestionID := record.Suggestions[0].Suggestion.ID

		var saved *seoaudit.AuditRecord
		store := &mock.ResultStore{
			LatestFn: func(_ context.Context, sourceID string) (*seoaudit.AuditRecord, error) {
				return record, nil
			},
			SaveFn: func(_ context.Context, r *seoaudit.AuditRecord) error {
				saved = r
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Store:  store,
		}

		cmd := &main.RejectCmd{Source: "https://example.com/tea", SuggestionID: suggestionID}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, seoaudit.StatusRejected, saved.Suggestions[0].Approval.Status)
		assert.Contains(t, stdout.String(), "rejected")
	})
}
