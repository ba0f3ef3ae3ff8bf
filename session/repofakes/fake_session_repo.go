package fakesessionrepo

import (
	"sync"

	xerrors "github.com/eventx-studio/eventx-cli/internal/errors"
	"github.com/eventx-studio/eventx-cli/session"
)

var _ session.Repo = (*FakeSessionRepo)(nil)

// FakeSessionRepo is an in-memory session.Repo for tests. Corrupt and
// SaveErr let tests simulate an undecodable record and a failing
// write without touching the filesystem.
type FakeSessionRepo struct {
	lock    sync.Mutex
	record  *session.Record
	Corrupt bool  // Load reports ErrSessionCorrupt while set
	SaveErr error // Save returns this when non-nil

	SaveCalls  int
	ClearCalls int
}

func NewFakeSessionRepo() *FakeSessionRepo {
	return &FakeSessionRepo{}
}

func (r *FakeSessionRepo) Load() (*session.Record, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.Corrupt {
		return nil, xerrors.ErrSessionCorrupt
	}
	if r.record == nil {
		return nil, xerrors.ErrSessionNotFound
	}
	copied := *r.record
	return &copied, nil
}

func (r *FakeSessionRepo) Save(record *session.Record) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.SaveCalls++
	if r.SaveErr != nil {
		return r.SaveErr
	}
	copied := *record
	r.record = &copied
	return nil
}

func (r *FakeSessionRepo) Clear() error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ClearCalls++
	r.record = nil
	r.Corrupt = false
	return nil
}

// Stored returns the currently persisted record, or nil.
func (r *FakeSessionRepo) Stored() *session.Record {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.record
}

// Seed installs a record directly, bypassing Save accounting.
func (r *FakeSessionRepo) Seed(record *session.Record) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.record = record
}
