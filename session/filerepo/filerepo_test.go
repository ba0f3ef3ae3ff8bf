package filerepo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	xerrors "github.com/eventx-studio/eventx-cli/internal/errors"
	"github.com/eventx-studio/eventx-cli/session"
	"github.com/eventx-studio/eventx-cli/session/filerepo"
	"github.com/eventx-studio/eventx-cli/users"
)

func TestFileRepo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	repo := filerepo.New(path)

	t.Run("load before any save reports not found", func(t *testing.T) {
		_, err := repo.Load()
		require.ErrorIs(t, err, xerrors.ErrSessionNotFound)
	})

	t.Run("save then load round-trips the record", func(t *testing.T) {
		record := &session.Record{User: users.User{ID: "u1", Email: "a@b.c", Role: users.RoleAdmin}}
		require.NoError(t, repo.Save(record))

		loaded, err := repo.Load()
		require.NoError(t, err)
		require.Equal(t, record.User, loaded.User)
	})

	t.Run("undecodable file reports corrupt", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
		_, err := repo.Load()
		require.ErrorIs(t, err, xerrors.ErrSessionCorrupt)
	})

	t.Run("clear removes the record and is idempotent", func(t *testing.T) {
		require.NoError(t, repo.Clear())
		require.NoError(t, repo.Clear())
		_, err := repo.Load()
		require.ErrorIs(t, err, xerrors.ErrSessionNotFound)
	})
}
