package booking

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/eventx-studio/eventx-cli/api"
	"github.com/eventx-studio/eventx-cli/users"
)

// MaxSeatsPerBooking caps one purchase at five seats; attempts beyond
// the cap are silent no-ops, mirroring the seat grid's behavior.
const MaxSeatsPerBooking = 5

// Stage is the position of a booking session in its forward-only
// lifecycle. The only backward edge is CollectingProfile back to
// SelectingSeats; Confirmed is terminal.
type Stage int

const (
	SelectingSeats Stage = iota
	CollectingProfile
	Confirmed
)

func (s Stage) String() string {
	switch s {
	case SelectingSeats:
		return "selecting_seats"
	case CollectingProfile:
		return "collecting_profile"
	case Confirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// TicketBooker is the slice of the API client the workflow needs:
// one profile push and one call per booked seat.
type TicketBooker interface {
	UpdateProfile(ctx context.Context, profile users.Profile) error
	BookTicket(ctx context.Context, req api.BookingRequest) error
}

// SessionWriter lets the workflow reflect the collected analytics
// attributes into the active session after a successful profile push.
type SessionWriter interface {
	Current() (users.User, bool)
	UpdateProfile(user users.User) error
}

// Manifest is the final record of a confirmed purchase, held for
// display. Seats are sorted; Total is the exact price multiplication
// at confirmation time.
type Manifest struct {
	Event api.Event
	Seats []int
	Total float64
}

// Workflow drives one attendee through seat selection, profile
// disclosure and submission for a single event. It is created per
// booking attempt against a loaded availability snapshot and discarded
// when the user navigates away before confirmation. All methods are
// called from the single UI event loop; the workflow itself has no
// internal concurrency beyond the joined submission calls.
type Workflow struct {
	attemptID string // Correlates the submission's log lines
	event     api.Event
	booker    TicketBooker
	sessions  SessionWriter

	stage      Stage
	seats      map[int]struct{}
	profile    users.Profile
	submitting bool
	manifest   *Manifest
}

// New starts a booking session in SelectingSeats over the given
// availability snapshot. The snapshot must already be loaded; the
// workflow never refreshes it.
func New(event api.Event, booker TicketBooker, sessions SessionWriter) (*Workflow, error) {
	if booker == nil {
		return nil, errors.New("[booking.New] booker is required")
	}
	if sessions == nil {
		return nil, errors.New("[booking.New] sessions is required")
	}
	return &Workflow{
		attemptID: uuid.New().String(),
		event:     event,
		booker:    booker,
		sessions:  sessions,
		stage:     SelectingSeats,
		seats:     make(map[int]struct{}),
		profile:   users.DefaultProfile(),
	}, nil
}

// Event returns the availability snapshot this session was opened with.
func (w *Workflow) Event() api.Event { return w.event }

// Stage returns the current lifecycle position.
func (w *Workflow) Stage() Stage { return w.stage }

// Submitting is true while booking calls are in flight. The UI
// disables the submit control for the duration; this is the only
// mutual exclusion the single-threaded flow needs.
func (w *Workflow) Submitting() bool { return w.submitting }

// ToggleSeat selects the seat if free and unselected, or deselects it
// if already selected. Selecting past the cap, a booked seat, or an
// out-of-range number is a no-op. The return reports whether the
// selection changed.
func (w *Workflow) ToggleSeat(seat int) bool {
	if w.stage != SelectingSeats {
		return false
	}
	if _, selected := w.seats[seat]; selected {
		delete(w.seats, seat)
		return true
	}
	if seat < 1 || seat > w.event.Seats {
		return false
	}
	if w.event.SeatBooked(seat) {
		return false
	}
	if len(w.seats) >= MaxSeatsPerBooking {
		return false
	}
	w.seats[seat] = struct{}{}
	return true
}

// Selected returns the chosen seat numbers in ascending order.
func (w *Workflow) Selected() []int {
	out := make([]int, 0, len(w.seats))
	for seat := range w.seats {
		out = append(out, seat)
	}
	sort.Ints(out)
	return out
}

// IsSelected reports whether the seat is currently chosen.
func (w *Workflow) IsSelected(seat int) bool {
	_, ok := w.seats[seat]
	return ok
}

// SeatCount returns the size of the current selection.
func (w *Workflow) SeatCount() int { return len(w.seats) }

// Total is the exact price of the current selection. It is recomputed
// from the live selection on every call and never cached.
func (w *Workflow) Total() float64 {
	return float64(len(w.seats)) * w.event.Price
}

// Proceed advances SelectingSeats to CollectingProfile. It is the only
// forward transition a user triggers directly; submission handles the
// rest.
func (w *Workflow) Proceed() error {
	if w.stage != SelectingSeats {
		return ErrWrongStage
	}
	if len(w.seats) == 0 {
		return ErrNoSeatsSelected
	}
	w.stage = CollectingProfile
	return nil
}

// Back returns from CollectingProfile to SelectingSeats, preserving
// the selection. It is always permitted from that stage.
func (w *Workflow) Back() error {
	if w.stage != CollectingProfile {
		return ErrWrongStage
	}
	w.stage = SelectingSeats
	return nil
}

// Profile returns the attendee attributes collected so far.
func (w *Workflow) Profile() users.Profile { return w.profile }

// SetProfile replaces the collected attributes wholesale.
func (w *Workflow) SetProfile(p users.Profile) { w.profile = p }

// ToggleInterest flips one interest tag on the collected profile.
func (w *Workflow) ToggleInterest(tag string) {
	w.profile = w.profile.ToggleInterest(tag)
}

// Manifest returns the confirmed purchase record, nil before
// confirmation.
func (w *Workflow) Manifest() *Manifest { return w.manifest }

// Submit finalizes the session: it pushes the attendee profile, then
// issues one independent booking call per selected seat, dispatched
// concurrently and joined before the stage advances. If any call
// fails the whole attempt is failed, the session returns to
// CollectingProfile and the error is retryable by resubmitting; seats
// that did book stay booked server-side with no compensating
// cancellation from the client. On full success the session reaches
// Confirmed and the manifest is available.
func (w *Workflow) Submit(ctx context.Context) (*Manifest, error) {
	if w.stage != CollectingProfile {
		return nil, ErrWrongStage
	}
	if w.submitting {
		return nil, ErrSubmitInProgress
	}
	if len(w.profile.Interests) == 0 {
		return nil, ErrInterestsRequired
	}

	w.submitting = true
	defer func() { w.submitting = false }()

	logger := log.With().Str("attempt_id", w.attemptID).Str("event_id", w.event.ID).Logger()

	// The profile push feeds analytics only; its failure never blocks
	// the purchase.
	if err := w.booker.UpdateProfile(ctx, w.profile); err != nil {
		logger.Warn().Err(err).Msg("Submit: profile update failed, continuing with booking")
	} else if user, ok := w.sessions.Current(); ok {
		if err := w.sessions.UpdateProfile(user.WithProfile(w.profile)); err != nil {
			logger.Err(err).Msg("Submit: failed to reflect profile into session")
		}
	}

	seats := w.Selected()
	// Plain errgroup, no shared cancellation: every call runs to
	// completion so the outcome is a clean all-or-failed join rather
	// than a race between siblings.
	var group errgroup.Group
	for _, seat := range seats {
		group.Go(func() error {
			req := api.BookingRequest{
				EventID:       w.event.ID,
				SeatNumber:    seat,
				PaymentMethod: api.PaymentMethodCashless,
			}
			if err := w.booker.BookTicket(ctx, req); err != nil {
				return errors.Wrapf(err, "seat %d", seat)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		logger.Err(err).Ints("seats", seats).Msg("Submit: booking attempt failed")
		return nil, errors.Wrap(ErrBookingFailed, err.Error())
	}

	w.manifest = &Manifest{Event: w.event, Seats: seats, Total: w.Total()}
	w.stage = Confirmed
	logger.Info().Ints("seats", seats).Float64("total", w.manifest.Total).Msg("booking confirmed")
	return w.manifest, nil
}
