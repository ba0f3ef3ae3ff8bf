package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	xerrors "github.com/eventx-studio/eventx-cli/internal/errors"
	"github.com/eventx-studio/eventx-cli/session"
	fakesessionrepo "github.com/eventx-studio/eventx-cli/session/repofakes"
	"github.com/eventx-studio/eventx-cli/users"
)

type fakeRemote struct {
	calls int
	err   error
}

func (f *fakeRemote) Logout(ctx context.Context) error {
	f.calls++
	return f.err
}

var testUser = users.User{
	ID:    "user-1",
	Name:  "Nour",
	Email: "nour@example.com",
	Role:  users.RoleUser,
}

func newStore(t *testing.T, repo *fakesessionrepo.FakeSessionRepo, remote *fakeRemote) *session.Store {
	t.Helper()
	store, err := session.NewStore(repo, remote,
		session.WithNowTime(func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }))
	require.NoError(t, err)
	return store
}

func TestStore_Restore(t *testing.T) {
	t.Run("no persisted record", func(t *testing.T) {
		repo := fakesessionrepo.NewFakeSessionRepo()
		store := newStore(t, repo, &fakeRemote{})

		require.True(t, store.Loading())
		store.Restore()
		require.False(t, store.Loading())
		require.False(t, store.IsAuthenticated())
	})

	t.Run("valid record restores the user", func(t *testing.T) {
		repo := fakesessionrepo.NewFakeSessionRepo()
		repo.Seed(&session.Record{User: testUser})
		store := newStore(t, repo, &fakeRemote{})

		store.Restore()
		current, ok := store.Current()
		require.True(t, ok)
		require.Equal(t, testUser, current)
	})

	t.Run("corrupt record is treated as absent and removed", func(t *testing.T) {
		repo := fakesessionrepo.NewFakeSessionRepo()
		repo.Corrupt = true
		store := newStore(t, repo, &fakeRemote{})

		require.NotPanics(t, func() { store.Restore() })
		require.False(t, store.IsAuthenticated())
		require.False(t, store.Loading())
		require.Equal(t, 1, repo.ClearCalls)
	})

	t.Run("record with empty identity is discarded", func(t *testing.T) {
		repo := fakesessionrepo.NewFakeSessionRepo()
		repo.Seed(&session.Record{})
		store := newStore(t, repo, &fakeRemote{})

		store.Restore()
		require.False(t, store.IsAuthenticated())
		require.Equal(t, 1, repo.ClearCalls)
	})

	t.Run("lapsed record is removed and reported expired", func(t *testing.T) {
		repo := fakesessionrepo.NewFakeSessionRepo()
		repo.Seed(&session.Record{
			User:      testUser,
			ExpiresAt: time.Date(2026, 4, 30, 12, 0, 0, 0, time.UTC), // a day before the store's now
		})
		store := newStore(t, repo, &fakeRemote{})

		require.True(t, store.Restore())
		require.False(t, store.IsAuthenticated())
		require.Equal(t, 1, repo.ClearCalls)
	})

	t.Run("record expiring in the future restores normally", func(t *testing.T) {
		repo := fakesessionrepo.NewFakeSessionRepo()
		expiry := time.Date(2026, 5, 3, 12, 0, 0, 0, time.UTC)
		repo.Seed(&session.Record{User: testUser, ExpiresAt: expiry})
		store := newStore(t, repo, &fakeRemote{})

		require.False(t, store.Restore())
		require.True(t, store.IsAuthenticated())
		require.Equal(t, expiry, store.ExpiresAt())
	})
}

func TestStore_Login(t *testing.T) {
	t.Run("replaces and persists the session", func(t *testing.T) {
		repo := fakesessionrepo.NewFakeSessionRepo()
		store := newStore(t, repo, &fakeRemote{})
		expiry := time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)

		require.NoError(t, store.Login(testUser, expiry))
		require.True(t, store.IsAuthenticated())
		require.Equal(t, expiry, store.ExpiresAt())

		stored := repo.Stored()
		require.NotNil(t, stored)
		require.Equal(t, testUser, stored.User)
	})

	t.Run("rejects an empty identity", func(t *testing.T) {
		repo := fakesessionrepo.NewFakeSessionRepo()
		store := newStore(t, repo, &fakeRemote{})

		require.Error(t, store.Login(users.User{}, time.Time{}))
		require.False(t, store.IsAuthenticated())
	})

	t.Run("failed persist leaves the previous session in place", func(t *testing.T) {
		repo := fakesessionrepo.NewFakeSessionRepo()
		store := newStore(t, repo, &fakeRemote{})
		require.NoError(t, store.Login(testUser, time.Time{}))

		repo.SaveErr = errors.New("disk full")
		other := testUser
		other.ID = "user-2"
		require.Error(t, store.Login(other, time.Time{}))

		current, ok := store.Current()
		require.True(t, ok)
		require.Equal(t, "user-1", current.ID)
	})
}

func TestStore_UpdateProfile(t *testing.T) {
	t.Run("whole-record replace keeps expiry", func(t *testing.T) {
		repo := fakesessionrepo.NewFakeSessionRepo()
		store := newStore(t, repo, &fakeRemote{})
		expiry := time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)
		require.NoError(t, store.Login(testUser, expiry))

		updated := testUser.WithProfile(users.Profile{
			Age: "25-34", Gender: "Male", Location: "Cairo", Interests: []string{"Art"},
		})
		require.NoError(t, store.UpdateProfile(updated))

		current, ok := store.Current()
		require.True(t, ok)
		require.Equal(t, []string{"Art"}, current.Interests)
		require.Equal(t, expiry, store.ExpiresAt())
	})

	t.Run("requires an active session", func(t *testing.T) {
		repo := fakesessionrepo.NewFakeSessionRepo()
		store := newStore(t, repo, &fakeRemote{})
		require.ErrorIs(t, store.UpdateProfile(testUser), xerrors.ErrNotAuthenticated)
	})
}

func TestStore_Logout(t *testing.T) {
	t.Run("clears memory and storage", func(t *testing.T) {
		repo := fakesessionrepo.NewFakeSessionRepo()
		remote := &fakeRemote{}
		store := newStore(t, repo, remote)
		require.NoError(t, store.Login(testUser, time.Time{}))

		store.Logout(context.Background())
		require.False(t, store.IsAuthenticated())
		require.Nil(t, repo.Stored())
		require.Equal(t, 1, remote.calls)
	})

	t.Run("clears even when the backend call fails", func(t *testing.T) {
		repo := fakesessionrepo.NewFakeSessionRepo()
		remote := &fakeRemote{err: errors.New("network down")}
		store := newStore(t, repo, remote)
		require.NoError(t, store.Login(testUser, time.Time{}))

		store.Logout(context.Background())
		require.False(t, store.IsAuthenticated())
		require.Nil(t, repo.Stored())
	})
}
