package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/seoaudit"
)

// Ensure LoggingResultStore implements seoaudit.ResultStore.
var _ seoaudit.ResultStore = (*LoggingResultStore)(nil)

// LoggingResultStore wraps a ResultStore with structured logging.
type LoggingResultStore struct {
	next   seoaudit.ResultStore
	logger *slog.Logger
}

// NewLoggingResultStore creates a new LoggingResultStore.
func NewLoggingResultStore(next seoaudit.ResultStore, logger *slog.Logger) *LoggingResultStore {
	return &LoggingResultStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the operation.
func (s *LoggingResultStore) Save(ctx context.Context, record *seoaudit.AuditRecord) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save audit record",
			"source", record.SourceID,
			"fingerprint", record.Fingerprint,
			"suggestions", len(record.Suggestions),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, record)
}

// Load delegates to the wrapped store and logs the operation.
func (s *LoggingResultStore) Load(ctx context.Context, sourceID, fingerprint string) (record *seoaudit.AuditRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("load audit record",
			"source", sourceID,
			"fingerprint", fingerprint,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx, sourceID, fingerprint)
}

// Latest delegates to the wrapped store.
func (s *LoggingResultStore) Latest(ctx context.Context, sourceID string) (*seoaudit.AuditRecord, error) {
	return s.next.Latest(ctx, sourceID)
}

// History delegates to the wrapped store.
func (s *LoggingResultStore) History(ctx context.Context, sourceID string) ([]*seoaudit.AuditRecord, error) {
	return s.next.History(ctx, sourceID)
}
