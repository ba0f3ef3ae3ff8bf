package users

// Role represents the account role assigned by the EventX backend.
// The backend only ever issues these two values.
type Role string

const (
	RoleAdmin Role = "admin" // Can manage events and view analytics
	RoleUser  Role = "user"  // Can browse events and book tickets
)

// User is the identity record returned by the backend on login and
// carried in the local session. The analytics attributes (Age, Gender,
// Location, Interests) are optional until the user completes a booking.
type User struct {
	ID        string   `json:"id,omitempty"`        // Unique identifier for the user
	Name      string   `json:"name,omitempty"`      // Display name
	Email     string   `json:"email,omitempty"`     // User's email address
	Role      Role     `json:"role,omitempty"`      // Account role ("admin" or "user")
	Age       string   `json:"age,omitempty"`       // Age band, e.g. "25-34"
	Gender    string   `json:"gender,omitempty"`    // "Male" or "Female"
	Location  string   `json:"location,omitempty"`  // City, e.g. "Cairo"
	Interests []string `json:"interests,omitempty"` // Interest tags
}

// IsAdmin returns true if the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsZero reports whether the record carries no identity at all. A user
// is either fully populated or completely absent; there is no partial
// session state in between.
func (u *User) IsZero() bool {
	return u == nil || (u.ID == "" && u.Email == "")
}

// WithProfile returns a copy of the user with the analytics attributes
// replaced wholesale. The receiver is never mutated, which keeps the
// replace-the-whole-object discipline of the session layer intact.
func (u User) WithProfile(p Profile) User {
	u.Age = p.Age
	u.Gender = p.Gender
	u.Location = p.Location
	u.Interests = append([]string(nil), p.Interests...)
	return u
}
