package session

import (
	"time"

	"github.com/eventx-studio/eventx-cli/users"
)

// Record is the single persisted session document. It is written
// wholesale on every login, profile update and logout; no caller ever
// mutates an individual field of a stored record.
type Record struct {
	User      users.User `json:"user"`                 // The authenticated identity
	SavedAt   time.Time  `json:"saved_at"`             // When this record was last written
	ExpiresAt time.Time  `json:"expires_at,omitempty"` // Auth cookie expiry, zero when unknown
}

// Expired reports whether the backend's auth cookie has lapsed. A zero
// expiry means the cookie's lifetime is unknown and the cached session
// is treated as presumptively valid until an explicit logout.
func (r *Record) Expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && now.After(r.ExpiresAt)
}
