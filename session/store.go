package session

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	xerrors "github.com/eventx-studio/eventx-cli/internal/errors"
	"github.com/eventx-studio/eventx-cli/users"
)

// RemoteLogout is the backend call issued on logout. It is its own
// interface so tests can simulate a rejected call: the store clears
// the local session regardless of the outcome.
type RemoteLogout interface {
	Logout(ctx context.Context) error
}

// Store is the single source of truth for "who is using this client
// right now". It holds the current session record in memory and keeps
// the persisted copy in step through the Repo. Consumers only ever
// observe a fully-present or fully-absent session: every write is a
// whole-record replace.
type Store struct {
	repo    Repo
	remote  RemoteLogout
	nowTime func() time.Time // nowTime function (injectable for testing)

	mu      sync.RWMutex
	current *Record
	loading bool
}

// StoreOption defines a function type to modify the Store instance.
type StoreOption func(*Store)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) StoreOption {
	return func(s *Store) {
		s.nowTime = nowFunc
	}
}

// NewStore initializes a Store with required dependencies. The store
// starts in the loading state until Restore has resolved.
func NewStore(repo Repo, remote RemoteLogout, options ...StoreOption) (*Store, error) {
	if repo == nil {
		return nil, errors.New("[NewStore] repo is required")
	}
	if remote == nil {
		return nil, errors.New("[NewStore] remote is required")
	}
	s := &Store{
		repo:    repo,
		remote:  remote,
		nowTime: time.Now,
		loading: true,
	}
	for _, option := range options {
		option(s)
	}
	return s, nil
}

// Restore reads the persisted session record at startup. An absent or
// unparsable record leaves the store with no user; a corrupt record is
// additionally removed, and so is a record whose auth cookie has
// lapsed. Restore never fails: every outcome resolves the loading
// state so the interface can proceed. The return reports whether a
// previously valid session had expired, so the caller can tell the
// user to sign in again.
func (s *Store) Restore() (expired bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	record, err := s.repo.Load()
	switch {
	case err == nil:
		if record.User.IsZero() {
			// A record with no identity is as good as corrupt.
			log.Warn().Msg("Restore: discarding session record with empty identity")
			s.clearLocked()
			return false
		}
		if record.Expired(s.nowTime()) {
			log.Info().Time("expired_at", record.ExpiresAt).Msg("Restore: removing lapsed session record")
			s.clearLocked()
			return true
		}
		s.current = record
	case xerrors.Is(err, xerrors.ErrSessionNotFound):
		s.current = nil
	case xerrors.Is(err, xerrors.ErrSessionCorrupt):
		log.Warn().Err(err).Msg("Restore: removing corrupt session record")
		s.clearLocked()
	default:
		// An IO failure is not proof the record is bad, so the file is
		// left in place for the next start.
		log.Err(err).Msg("Restore: failed to read session record")
		s.current = nil
	}
	return false
}

// Login replaces the current session wholesale with the identity the
// backend returned and persists it. No validation is performed on the
// contents beyond presence.
func (s *Store) Login(user users.User, expiresAt time.Time) error {
	if user.IsZero() {
		return errors.New("[Store.Login] empty identity")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &Record{User: user, SavedAt: s.nowTime(), ExpiresAt: expiresAt}
	if err := s.repo.Save(record); err != nil {
		return errors.Wrap(err, "[Store.Login] persist session")
	}
	s.current = record
	return nil
}

// UpdateProfile follows the same replace-and-persist contract as
// Login. It is used after the user supplies analytics attributes so
// the new attributes show up in the active session without requiring
// re-authentication. The cookie expiry of the current record carries
// over unchanged.
func (s *Store) UpdateProfile(user users.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return xerrors.ErrNotAuthenticated
	}
	if user.IsZero() {
		return errors.New("[Store.UpdateProfile] empty identity")
	}
	record := &Record{User: user, SavedAt: s.nowTime(), ExpiresAt: s.current.ExpiresAt}
	if err := s.repo.Save(record); err != nil {
		return errors.Wrap(err, "[Store.UpdateProfile] persist session")
	}
	s.current = record
	return nil
}

// Logout clears the in-memory and persisted session unconditionally.
// The remote invalidation call is attempted first but its failure is
// only logged: logout must never strand the client in an
// authenticated-looking state. Callers route to the login entry point
// once Logout returns.
func (s *Store) Logout(ctx context.Context) {
	if err := s.remote.Logout(ctx); err != nil {
		log.Err(err).Msg("Logout: backend call failed, clearing local session anyway")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// Current returns a copy of the active identity, with ok false when no
// session is present.
func (s *Store) Current() (users.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return users.User{}, false
	}
	return s.current.User, true
}

// IsAuthenticated is derived: true iff a user identity is present.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// Loading is true only during the initial restore.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// ExpiresAt returns the auth cookie expiry of the active session, or
// the zero time when no session is present or the expiry is unknown.
func (s *Store) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return time.Time{}
	}
	return s.current.ExpiresAt
}

func (s *Store) clearLocked() {
	s.current = nil
	if err := s.repo.Clear(); err != nil {
		log.Err(err).Msg("failed to clear persisted session record")
	}
}
