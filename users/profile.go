package users

import "fmt"

// Profile holds the analytics attributes collected during the booking
// flow. The backend aggregates these into the attendee-insight
// dashboards; the client only collects and forwards them.
type Profile struct {
	Age       string   `json:"age"`
	Gender    string   `json:"gender"`
	Location  string   `json:"location"`
	Interests []string `json:"interests"`
}

// Choice lists offered by the booking form. These mirror the values
// the backend's demographics aggregation groups by.
var (
	AgeBands  = []string{"18-24", "25-34", "35-44", "45+"}
	Genders   = []string{"Male", "Female"}
	Locations = []string{
		"Cairo", "Alexandria", "Giza", "Luxor", "Aswan",
		"Sharm El Sheikh", "Hurghada", "International",
	}
	InterestTags = []string{
		"Live Music", "Innovation", "EDM Music", "Food Festivals",
		"Technology", "Sports", "Art", "Business",
	}
)

// DefaultProfile returns the form's starting values. Interests start
// empty on purpose: the booking flow refuses to submit until the user
// has picked at least one.
func DefaultProfile() Profile {
	return Profile{Age: "25-34", Gender: "Male", Location: "Cairo"}
}

// Validate checks that the profile is complete enough to submit a
// booking. Only the interests can actually be empty through the form,
// but the other fields are checked anyway since the profile may be
// constructed programmatically.
func (p Profile) Validate() error {
	if p.Age == "" || p.Gender == "" || p.Location == "" {
		return fmt.Errorf("profile is incomplete")
	}
	if len(p.Interests) == 0 {
		return fmt.Errorf("at least one interest is required")
	}
	return nil
}

// HasInterest reports whether the given tag is currently selected.
func (p Profile) HasInterest(tag string) bool {
	for _, t := range p.Interests {
		if t == tag {
			return true
		}
	}
	return false
}

// ToggleInterest returns a copy of the profile with the tag added if
// absent or removed if present. Toggling twice is a no-op.
func (p Profile) ToggleInterest(tag string) Profile {
	out := make([]string, 0, len(p.Interests)+1)
	removed := false
	for _, t := range p.Interests {
		if t == tag {
			removed = true
			continue
		}
		out = append(out, t)
	}
	if !removed {
		out = append(out, tag)
	}
	p.Interests = out
	return p
}
