package fakebookingapi

import (
	"context"
	"sync"

	"github.com/eventx-studio/eventx-cli/api"
	"github.com/eventx-studio/eventx-cli/booking"
	"github.com/eventx-studio/eventx-cli/users"
)

var _ booking.TicketBooker = (*FakeBookingAPI)(nil)

// FakeBookingAPI is an in-memory TicketBooker for workflow tests.
// FailSeats marks seat numbers whose booking call should report a
// logical failure; ProfileErr makes the profile push fail.
type FakeBookingAPI struct {
	lock       sync.Mutex
	FailSeats  map[int]error
	ProfileErr error

	ProfileCalls []users.Profile
	BookCalls    []api.BookingRequest
}

func NewFakeBookingAPI() *FakeBookingAPI {
	return &FakeBookingAPI{FailSeats: make(map[int]error)}
}

func (f *FakeBookingAPI) UpdateProfile(ctx context.Context, profile users.Profile) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.ProfileCalls = append(f.ProfileCalls, profile)
	return f.ProfileErr
}

func (f *FakeBookingAPI) BookTicket(ctx context.Context, req api.BookingRequest) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.BookCalls = append(f.BookCalls, req)
	if err, ok := f.FailSeats[req.SeatNumber]; ok {
		return err
	}
	return nil
}

// BookedSeats returns the seat numbers of every booking call made so
// far, in call order.
func (f *FakeBookingAPI) BookedSeats() []int {
	f.lock.Lock()
	defer f.lock.Unlock()
	seats := make([]int, len(f.BookCalls))
	for i, call := range f.BookCalls {
		seats[i] = call.SeatNumber
	}
	return seats
}
