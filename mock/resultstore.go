package mock

import (
	"context"

	"github.com/fwojciec/seoaudit"
)

var _ seoaudit.ResultStore = (*ResultStore)(nil)

// ResultStore is a mock implementation of seoaudit.ResultStore.
type ResultStore struct {
	SaveFn    func(ctx context.Context, record *seoaudit.AuditRecord) error
	LoadFn    func(ctx context.Context, sourceID, fingerprint string) (*seoaudit.AuditRecord, error)
	LatestFn  func(ctx context.Context, sourceID string) (*seoaudit.AuditRecord, error)
	HistoryFn func(ctx context.Context, sourceID string) ([]*seoaudit.AuditRecord, error)
}

func (s *ResultStore) Save(ctx context.Context, record *seoaudit.AuditRecord) error {
	return s.SaveFn(ctx, record)
}

func (s *ResultStore) Load(ctx context.Context, sourceID, fingerprint string) (*seoaudit.AuditRecord, error) {
	return s.LoadFn(ctx, sourceID, fingerprint)
}

func (s *ResultStore) Latest(ctx context.Context, sourceID string) (*seoaudit.AuditRecord, error) {
	return s.LatestFn(ctx, sourceID)
}

func (s *ResultStore) History(ctx context.Context, sourceID string) ([]*seoaudit.AuditRecord, error) {
	return s.HistoryFn(ctx, sourceID)
}
