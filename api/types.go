package api

import (
	"strconv"
	"time"
)

// Response is the envelope every backend reply carries. Endpoint
// response types embed it so the client can report logical failures
// (`success:false`) uniformly.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (r Response) status() (bool, string) { return r.Success, r.Message }

// envelope is satisfied by every decoded response via the embedded
// Response.
type envelope interface {
	status() (bool, string)
}

// Event is the availability snapshot for a single event as last
// fetched from the backend. Seat numbers run from 1 to Seats;
// BookedSeats lists the taken ones as strings, which is how the
// backend serializes them.
type Event struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time,omitempty"`
	Venue       string    `json:"venue,omitempty"`
	Price       float64   `json:"price"`
	Seats       int       `json:"seats"`
	Booked      int       `json:"booked"`
	BookedSeats []string  `json:"bookedSeats,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Status      string    `json:"status,omitempty"`
}

// Available returns the number of seats not yet booked.
func (e *Event) Available() int {
	return e.Seats - e.Booked
}

// SeatBooked reports whether the numbered seat appears in the booked
// list of this snapshot.
func (e *Event) SeatBooked(seat int) bool {
	s := strconv.Itoa(seat)
	for _, b := range e.BookedSeats {
		if b == s {
			return true
		}
	}
	return false
}

// EventInput is the payload for creating or updating an event. Date is
// sent as "2006-01-02", matching what the admin form submits.
type EventInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Venue       string   `json:"venue"`
	Price       float64  `json:"price"`
	Seats       int      `json:"seats"`
	Tags        []string `json:"tags"`
}

// ListEventsParams filters the event listing. Zero values are omitted
// from the query string.
type ListEventsParams struct {
	Search string
	Page   int
	Limit  int
	Status string
}

// BookingRequest is one atomic per-seat booking call. A multi-seat
// purchase issues one of these per selected seat.
type BookingRequest struct {
	EventID       string `json:"eventId"`
	SeatNumber    int    `json:"seatNumber"`
	PaymentMethod string `json:"paymentMethod"`
}

// Ticket is a booked seat as returned by the tickets endpoints. Some
// backend responses embed the event document, others flatten the event
// fields onto the ticket; Normalize folds the embedded form into the
// flat one so views always have both shapes covered.
type Ticket struct {
	ID         string    `json:"_id"`
	EventID    string    `json:"eventId,omitempty"`
	EventName  string    `json:"eventName,omitempty"`
	SeatNumber int       `json:"seatNumber"`
	Date       time.Time `json:"date,omitempty"`
	Time       string    `json:"time,omitempty"`
	Venue      string    `json:"venue,omitempty"`
	Price      float64   `json:"price,omitempty"`
	Status     string    `json:"status,omitempty"`
	Event      *Event    `json:"event,omitempty"`
}

// Normalize copies the embedded event's fields onto the ticket when
// present, so the flat fields are always usable.
func (t Ticket) Normalize() Ticket {
	if t.Event == nil {
		return t
	}
	if t.EventID == "" {
		t.EventID = t.Event.ID
	}
	if t.EventName == "" {
		t.EventName = t.Event.Name
	}
	if t.Date.IsZero() {
		t.Date = t.Event.Date
	}
	if t.Time == "" {
		t.Time = t.Event.Time
	}
	if t.Venue == "" {
		t.Venue = t.Event.Venue
	}
	return t
}

// DashboardStats are the pre-aggregated numbers behind the admin
// dashboard cards. The client displays them as-is.
type DashboardStats struct {
	TotalEvents      int     `json:"totalEvents"`
	ActiveEvents     int     `json:"activeEvents"`
	TotalTicketsSold int     `json:"totalTicketsSold"`
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalUsers       int     `json:"totalUsers"`
}

// DistributionRow is one bucket of a server-computed distribution.
// Label carries the bucket name regardless of which attribute was
// grouped (the backend names the key after the attribute, so each
// distribution type aliases its own field).
type AgeBucket struct {
	Age        string  `json:"age"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type GenderBucket struct {
	Gender     string  `json:"gender"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type InterestBucket struct {
	Interest   string  `json:"interest"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type LocationBucket struct {
	Location   string  `json:"location"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// AttendeeInsights groups the per-event (or platform-wide, when no
// event is selected) attendee distributions.
type AttendeeInsights struct {
	TotalAttendees        int              `json:"totalAttendees"`
	AgeDistribution       []AgeBucket      `json:"ageDistribution"`
	GenderDistribution    []GenderBucket   `json:"genderDistribution"`
	InterestsDistribution []InterestBucket `json:"interestsDistribution"`
	LocationDistribution  []LocationBucket `json:"locationDistribution"`
}

// Demographics is the platform-wide user demographics view.
type Demographics struct {
	TotalUsers           int              `json:"totalUsers"`
	AgeDistribution      []AgeBucket      `json:"ageDistribution"`
	GenderDistribution   []GenderBucket   `json:"genderDistribution"`
	LocationDistribution []LocationBucket `json:"locationDistribution"`
}
