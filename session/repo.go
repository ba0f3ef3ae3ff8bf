package session

// Repo defines the interface for persisting the session record.
// Implementations hold exactly one record; Save replaces it wholesale.
type Repo interface {
	// Load retrieves the persisted record. It returns
	// errors.ErrSessionNotFound when no record exists and
	// errors.ErrSessionCorrupt when one exists but cannot be decoded.
	Load() (*Record, error)

	// Save writes the record, replacing any previous one.
	Save(record *Record) error

	// Clear removes the persisted record. Clearing an absent record
	// is not an error.
	Clear() error
}
