package filerepo

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	xerrors "github.com/eventx-studio/eventx-cli/internal/errors"
	"github.com/eventx-studio/eventx-cli/session"
)

var _ session.Repo = (*FileRepo)(nil)

// FileRepo persists the session record as a single JSON file, the
// terminal-client analogue of a browser's local-storage entry. The
// file is overwritten wholesale on every write.
type FileRepo struct {
	path string
}

// New returns a FileRepo writing to the given path. Parent directories
// are created lazily on the first Save.
func New(path string) *FileRepo {
	return &FileRepo{path: path}
}

func (r *FileRepo) Load() (*session.Record, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, xerrors.ErrSessionNotFound
		}
		return nil, errors.Wrap(err, "[FileRepo.Load] read session file")
	}
	var record session.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, xerrors.Wrapf(xerrors.ErrSessionCorrupt, "decode %s", r.path)
	}
	return &record, nil
}

func (r *FileRepo) Save(record *session.Record) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return errors.Wrap(err, "[FileRepo.Save] create session directory")
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[FileRepo.Save] encode session record")
	}
	// The record holds the user identity, so keep it owner-readable only.
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return errors.Wrap(err, "[FileRepo.Save] write session file")
	}
	return nil
}

func (r *FileRepo) Clear() error {
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[FileRepo.Clear] remove session file")
	}
	return nil
}
