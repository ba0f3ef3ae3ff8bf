package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eventx-studio/eventx-cli/api"
	"github.com/eventx-studio/eventx-cli/booking"
	"github.com/eventx-studio/eventx-cli/users"
)

// Messages delivered through the bubbletea loop when asynchronous
// calls complete. Every network exchange is one of these: the calling
// screen disables its triggering control until the message lands,
// which is the only mutual exclusion the single-threaded flow needs.

type sessionRestoredMsg struct {
	user    users.User
	ok      bool
	expired bool // A previously valid session lapsed and was removed
}

type loginResultMsg struct {
	user users.User
	err  error
}

type registerResultMsg struct {
	err error
}

type logoutDoneMsg struct{}

type eventsLoadedMsg struct {
	events     []api.Event
	totalPages int
	page       int
	err        error
}

type eventLoadedMsg struct {
	event   *api.Event
	booking bool // Open the booking flow rather than the details view
	err     error
}

type submitResultMsg struct {
	manifest *booking.Manifest
	err      error
}

type ticketsLoadedMsg struct {
	tickets []api.Ticket
	err     error
}

type ticketCancelledMsg struct {
	err error
}

type dashboardLoadedMsg struct {
	stats    *api.DashboardStats
	insights *api.AttendeeInsights
	events   []api.Event
	err      error
}

type insightsLoadedMsg struct {
	insights *api.AttendeeInsights
	err      error
}

type demographicsLoadedMsg struct {
	demographics *api.Demographics
	err          error
}

type eventSavedMsg struct {
	err error
}

type eventDeletedMsg struct {
	err error
}

func (a *App) restoreSessionCmd() tea.Cmd {
	return func() tea.Msg {
		expired := a.store.Restore()
		user, ok := a.store.Current()
		return sessionRestoredMsg{user: user, ok: ok, expired: expired}
	}
}

func (a *App) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := a.client.Login(context.Background(), email, password)
		if err != nil {
			return loginResultMsg{err: err}
		}
		if err := a.store.Login(user, a.client.SessionExpiry()); err != nil {
			return loginResultMsg{err: err}
		}
		return loginResultMsg{user: user}
	}
}

func (a *App) registerCmd(name, email, password string) tea.Cmd {
	return func() tea.Msg {
		return registerResultMsg{err: a.client.Register(context.Background(), name, email, password)}
	}
}

func (a *App) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		// Clears locally even when the backend call fails; the client
		// must never stay in an authenticated-looking state.
		a.store.Logout(context.Background())
		return logoutDoneMsg{}
	}
}

func (a *App) loadEventsCmd(search string, page int) tea.Cmd {
	return func() tea.Msg {
		events, totalPages, err := a.client.Events(context.Background(), api.ListEventsParams{
			Search: search,
			Page:   page,
			Limit:  eventsPageSize,
		})
		return eventsLoadedMsg{events: events, totalPages: totalPages, page: page, err: err}
	}
}

func (a *App) loadEventCmd(id string, forBooking bool) tea.Cmd {
	return func() tea.Msg {
		event, err := a.client.Event(context.Background(), id)
		return eventLoadedMsg{event: event, booking: forBooking, err: err}
	}
}

func (a *App) submitBookingCmd(workflow *booking.Workflow) tea.Cmd {
	return func() tea.Msg {
		manifest, err := workflow.Submit(context.Background())
		return submitResultMsg{manifest: manifest, err: err}
	}
}

func (a *App) loadTicketsCmd() tea.Cmd {
	return func() tea.Msg {
		tickets, err := a.client.MyTickets(context.Background())
		return ticketsLoadedMsg{tickets: tickets, err: err}
	}
}

func (a *App) cancelTicketCmd(ticketID string) tea.Cmd {
	return func() tea.Msg {
		return ticketCancelledMsg{err: a.client.CancelTicket(context.Background(), ticketID)}
	}
}

func (a *App) loadDashboardCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := a.client.DashboardStats(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		events, _, err := a.client.Events(ctx, api.ListEventsParams{Status: "active", Limit: 100})
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		insights, err := a.client.AttendeeInsights(ctx, "")
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{stats: stats, insights: insights, events: events}
	}
}

func (a *App) loadInsightsCmd(eventID string) tea.Cmd {
	return func() tea.Msg {
		insights, err := a.client.AttendeeInsights(context.Background(), eventID)
		return insightsLoadedMsg{insights: insights, err: err}
	}
}

func (a *App) loadDemographicsCmd() tea.Cmd {
	return func() tea.Msg {
		demographics, err := a.client.Demographics(context.Background())
		return demographicsLoadedMsg{demographics: demographics, err: err}
	}
}

func (a *App) saveEventCmd(id string, input api.EventInput) tea.Cmd {
	return func() tea.Msg {
		var err error
		if id == "" {
			_, err = a.client.CreateEvent(context.Background(), input)
		} else {
			_, err = a.client.UpdateEvent(context.Background(), id, input)
		}
		return eventSavedMsg{err: err}
	}
}

func (a *App) deleteEventCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return eventDeletedMsg{err: a.client.DeleteEvent(context.Background(), id)}
	}
}
