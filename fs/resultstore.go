// Package fs provides file-based storage for audit results.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/seoaudit"
)

// Ensure ResultStore implements seoaudit.ResultStore at compile time.
var _ seoaudit.ResultStore = (*ResultStore)(nil)

// ResultStore persists audit records as one JSON file per
// (source ID, fingerprint) key under a results directory. Writes are
// atomic (temp file then rename) and serialized per key, so interleaved
// bulk runs never produce lost updates or partial records. Records for
// other fingerprints of the same source are never touched by a save.
type ResultStore struct {
	baseDir string

	// locks stripes writers by record path hash. A fixed stripe count
	// bounds memory regardless of how many keys a process touches;
	// colliding keys only contend, they never corrupt.
	locks [64]sync.Mutex
}

// NewResultStore creates a ResultStore rooted at baseDir.
func NewResultStore(baseDir string) *ResultStore {
	return &ResultStore{baseDir: baseDir}
}

// Save persists a record, atomically replacing any existing record for the
// same (source ID, fingerprint) key. Returns an EPERSISTENCE error when
// the destination is unwritable; no partial record is left behind.
func (s *ResultStore) Save(_ context.Context, record *seoaudit.AuditRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	path := s.recordPath(record.SourceID, record.Fingerprint)

	lock := s.keyLock(path)
	lock.Lock()
	defer lock.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return seoaudit.Errorf(seoaudit.EPERSISTENCE, "cannot create results directory: %v", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return seoaudit.Errorf(seoaudit.EPERSISTENCE, "cannot encode audit record: %v", err)
	}

	// Write to a temp file in the same directory, then rename over the
	// final path so readers never observe a partial record.
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return seoaudit.Errorf(seoaudit.EPERSISTENCE, "cannot create temp file: %v", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return seoaudit.Errorf(seoaudit.EPERSISTENCE, "cannot write audit record: %v", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return seoaudit.Errorf(seoaudit.EPERSISTENCE, "cannot close temp file: %v", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return seoaudit.Errorf(seoaudit.EPERSISTENCE, "cannot replace audit record: %v", err)
	}
	return nil
}

// Load retrieves the record for a (source ID, fingerprint) key.
func (s *ResultStore) Load(_ context.Context, sourceID, fingerprint string) (*seoaudit.AuditRecord, error) {
	return s.read(s.recordPath(sourceID, fingerprint))
}

// Latest retrieves the most recently generated record for a source across
// all fingerprints.
func (s *ResultStore) Latest(ctx context.Context, sourceID string) (*seoaudit.AuditRecord, error) {
	records, err := s.History(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, seoaudit.Errorf(seoaudit.ENOTFOUND, "no audit records for %q", sourceID)
	}
	return records[len(records)-1], nil
}

// History lists all retained records for a source, oldest first.
func (s *ResultStore) History(_ context.Context, sourceID string) ([]*seoaudit.AuditRecord, error) {
	dir := filepath.Join(s.baseDir, SanitizeSourceID(sourceID))

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, seoaudit.Errorf(seoaudit.ENOTFOUND, "no audit records for %q", sourceID)
	} else if err != nil {
		return nil, seoaudit.Errorf(seoaudit.EPERSISTENCE, "cannot list results for %q: %v", sourceID, err)
	}

	var records []*seoaudit.AuditRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		record, err := s.read(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].GeneratedAt.Before(records[j].GeneratedAt)
	})
	return records, nil
}

func (s *ResultStore) read(path string) (*seoaudit.AuditRecord, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, seoaudit.Errorf(seoaudit.ENOTFOUND, "audit record not found")
	} else if err != nil {
		return nil, seoaudit.Errorf(seoaudit.EPERSISTENCE, "cannot read audit record: %v", err)
	}

	var record seoaudit.AuditRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, seoaudit.Errorf(seoaudit.EPERSISTENCE, "cannot decode audit record %s: %v", path, err)
	}
	return &record, nil
}

// recordPath maps a (source ID, fingerprint) key to its file path:
// baseDir/<sanitized source>/<fingerprint>.json.
func (s *ResultStore) recordPath(sourceID, fingerprint string) string {
	return filepath.Join(s.baseDir, SanitizeSourceID(sourceID), fingerprint+".json")
}

// keyLock returns the stripe mutex serializing writers for a record path.
func (s *ResultStore) keyLock(path string) *sync.Mutex {
	return &s.locks[xxhash.Sum64String(path)%uint64(len(s.locks))]
}

// SanitizeSourceID converts a source ID (URL or file path) into a safe
// directory name: letters, digits, hyphens, underscores, and dots pass
// through, everything else becomes an underscore.
func SanitizeSourceID(sourceID string) string {
	var b strings.Builder
	for _, r := range sourceID {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
