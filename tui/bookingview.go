package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eventx-studio/eventx-cli/api"
	"github.com/eventx-studio/eventx-cli/booking"
	"github.com/eventx-studio/eventx-cli/internal/utils"
	"github.com/eventx-studio/eventx-cli/users"
)

// seatsPerRow matches the web client's seat grid layout.
const seatsPerRow = 10

// bookingModel drives one purchase through the three-stage workflow:
// the seat grid, the attendee profile form, and the confirmation card.
// While the submission is in flight every input except quit is ignored
// and the view renders from values cached at dispatch time, so the
// workflow is only ever touched from one side at a time.
type bookingModel struct {
	theme Theme
	wf    *booking.Workflow

	seatCursor int // 1-based seat number under the cursor
	field      int // focused row on the profile form
	busy       bool
	errMsg     string

	pendingSeats []int
	pendingTotal float64
}

// Profile form rows. The interest checkboxes and the submit button
// follow the three selectors.
const (
	fieldAge = iota
	fieldGender
	fieldLocation
	fieldFirstInterest
)

// open starts a fresh workflow over the availability snapshot and
// switches to the booking screen. An existing session profile prefills
// the form.
func (m *bookingModel) open(a *App, event api.Event) tea.Cmd {
	wf, err := booking.New(event, a.client, a.store)
	if err != nil {
		a.errMsg = err.Error()
		return nil
	}
	if user, ok := a.store.Current(); ok && user.Age != "" {
		wf.SetProfile(users.Profile{
			Age:       user.Age,
			Gender:    user.Gender,
			Location:  user.Location,
			Interests: user.Interests,
		})
	}
	*m = bookingModel{theme: a.theme, wf: wf, seatCursor: 1}
	a.screen = ScreenBooking
	return nil
}

func (m *bookingModel) update(a *App, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case submitResultMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = bookingErrorText(msg.err)
			return nil
		}
		m.errMsg = ""
		return nil

	case tea.KeyMsg:
		if m.busy || m.wf == nil {
			return nil
		}
		switch m.wf.Stage() {
		case booking.SelectingSeats:
			return m.updateSeats(a, msg)
		case booking.CollectingProfile:
			return m.updateProfile(a, msg)
		case booking.Confirmed:
			return m.updateConfirmed(a, msg)
		}
	}
	return nil
}

func (m *bookingModel) updateSeats(a *App, msg tea.KeyMsg) tea.Cmd {
	total := m.wf.Event().Seats
	switch {
	case key.Matches(msg, a.keys.Back):
		return a.openEvents()
	case key.Matches(msg, a.keys.Left):
		if m.seatCursor > 1 {
			m.seatCursor--
		}
	case key.Matches(msg, a.keys.Right):
		if m.seatCursor < total {
			m.seatCursor++
		}
	case key.Matches(msg, a.keys.Up):
		if m.seatCursor > seatsPerRow {
			m.seatCursor -= seatsPerRow
		}
	case key.Matches(msg, a.keys.Down):
		if m.seatCursor+seatsPerRow <= total {
			m.seatCursor += seatsPerRow
		}
	case key.Matches(msg, a.keys.Toggle):
		m.wf.ToggleSeat(m.seatCursor)
		m.errMsg = ""
	case key.Matches(msg, a.keys.Select):
		if err := m.wf.Proceed(); err != nil {
			m.errMsg = bookingErrorText(err)
			return nil
		}
		m.errMsg = ""
		m.field = fieldAge
	}
	return nil
}

func (m *bookingModel) updateProfile(a *App, msg tea.KeyMsg) tea.Cmd {
	lastField := fieldFirstInterest + len(users.InterestTags) // submit row
	switch {
	case key.Matches(msg, a.keys.Back):
		if err := m.wf.Back(); err == nil {
			m.errMsg = ""
		}
	case key.Matches(msg, a.keys.Up):
		if m.field > fieldAge {
			m.field--
		}
	case key.Matches(msg, a.keys.Down), msg.String() == "tab":
		if m.field < lastField {
			m.field++
		}
	case key.Matches(msg, a.keys.Left):
		m.cycleSelector(-1)
	case key.Matches(msg, a.keys.Right):
		m.cycleSelector(1)
	case key.Matches(msg, a.keys.Toggle):
		if idx := m.field - fieldFirstInterest; idx >= 0 && idx < len(users.InterestTags) {
			m.wf.ToggleInterest(users.InterestTags[idx])
			m.errMsg = ""
		}
	case key.Matches(msg, a.keys.Select):
		if m.field != lastField {
			if idx := m.field - fieldFirstInterest; idx >= 0 && idx < len(users.InterestTags) {
				m.wf.ToggleInterest(users.InterestTags[idx])
			}
			return nil
		}
		if m.wf.SeatCount() == 0 || len(m.wf.Profile().Interests) == 0 {
			m.errMsg = bookingErrorText(booking.ErrInterestsRequired)
			return nil
		}
		m.busy = true
		m.errMsg = ""
		m.pendingSeats = m.wf.Selected()
		m.pendingTotal = m.wf.Total()
		return a.submitBookingCmd(m.wf)
	}
	return nil
}

// cycleSelector steps the focused selector row through its value list.
func (m *bookingModel) cycleSelector(dir int) {
	p := m.wf.Profile()
	switch m.field {
	case fieldAge:
		p.Age = cycleValue(users.AgeBands, p.Age, dir)
	case fieldGender:
		p.Gender = cycleValue(users.Genders, p.Gender, dir)
	case fieldLocation:
		p.Location = cycleValue(users.Locations, p.Location, dir)
	default:
		return
	}
	m.wf.SetProfile(p)
}

func cycleValue(values []string, current string, dir int) string {
	if len(values) == 0 {
		return current
	}
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(values)) % len(values)
	return values[idx]
}

func (m *bookingModel) updateConfirmed(a *App, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Select), msg.String() == "t":
		return a.openTickets()
	case key.Matches(msg, a.keys.Back):
		return a.openEvents()
	}
	return nil
}

func (m *bookingModel) view(a *App) string {
	if m.wf == nil {
		return ""
	}
	if m.busy {
		return m.theme.Card.Render(a.spin.View() + fmt.Sprintf(
			"Booking %d seat(s) for %s…\n\nTotal: %s",
			len(m.pendingSeats), m.wf.Event().Name, utils.FormatPrice(m.pendingTotal),
		))
	}
	switch m.wf.Stage() {
	case booking.SelectingSeats:
		return m.seatsView()
	case booking.CollectingProfile:
		return m.profileView()
	case booking.Confirmed:
		return m.confirmedView()
	}
	return ""
}

func (m *bookingModel) seatsView() string {
	event := m.wf.Event()
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Select seats · "+event.Name) + "\n\n")

	for seat := 1; seat <= event.Seats; seat++ {
		cell := fmt.Sprintf(" %2d ", seat)
		var style lipgloss.Style
		switch {
		case event.SeatBooked(seat):
			style = m.theme.SeatBooked
		case m.wf.IsSelected(seat):
			style = m.theme.SeatSelected
		default:
			style = m.theme.SeatFree
		}
		if seat == m.seatCursor {
			style = style.Inherit(m.theme.SeatCursor)
		}
		b.WriteString(style.Render(cell))
		if seat%seatsPerRow == 0 || seat == event.Seats {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}

	b.WriteString("\n" + m.theme.Label.Render("Selected: "))
	if m.wf.SeatCount() == 0 {
		b.WriteString(m.theme.Subtle.Render("none"))
	} else {
		b.WriteString(utils.JoinInts(m.wf.Selected()))
	}
	b.WriteString(fmt.Sprintf("  (%d/%d)\n", m.wf.SeatCount(), booking.MaxSeatsPerBooking))
	b.WriteString(m.theme.Label.Render("Total: ") + utils.FormatPrice(m.wf.Total()) + "\n")

	if m.errMsg != "" {
		b.WriteString("\n" + m.theme.ErrorLine.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + m.theme.Help.Render("space toggle • enter continue • esc cancel"))
	return b.String()
}

func (m *bookingModel) profileView() string {
	p := m.wf.Profile()
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Tell us about yourself") + "\n\n")

	selectors := []struct {
		label string
		value string
		field int
	}{
		{"Age", p.Age, fieldAge},
		{"Gender", p.Gender, fieldGender},
		{"Location", p.Location, fieldLocation},
	}
	for _, s := range selectors {
		row := fmt.Sprintf("%-10s ‹ %s ›", s.label, s.value)
		if m.field == s.field {
			b.WriteString(m.theme.ListSelected.Render("> "+row) + "\n")
		} else {
			b.WriteString(m.theme.ListItem.Render(row) + "\n")
		}
	}

	b.WriteString("\n" + m.theme.Label.Render("Interests") + "\n")
	for i, tag := range users.InterestTags {
		box := "[ ]"
		if p.HasInterest(tag) {
			box = "[x]"
		}
		row := box + " " + tag
		if m.field == fieldFirstInterest+i {
			b.WriteString(m.theme.ListSelected.Render("> "+row) + "\n")
		} else {
			b.WriteString(m.theme.ListItem.Render(row) + "\n")
		}
	}

	submit := fmt.Sprintf("Book %d seat(s) · %s", m.wf.SeatCount(), utils.FormatPrice(m.wf.Total()))
	button := m.theme.Button
	switch {
	case len(p.Interests) == 0:
		// Submission is gated on at least one interest.
		button = m.theme.ButtonDisabled
	case m.field == fieldFirstInterest+len(users.InterestTags):
		button = m.theme.ButtonFocused
	}
	b.WriteString("\n" + button.Render(submit) + "\n")

	if m.errMsg != "" {
		b.WriteString("\n" + m.theme.ErrorLine.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + m.theme.Help.Render("↑/↓ move • ←/→ change • space toggle • enter submit • esc back to seats"))
	return b.String()
}

func (m *bookingModel) confirmedView() string {
	manifest := m.wf.Manifest()
	if manifest == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.theme.Bar.Render("✔ Booking confirmed") + "\n\n")
	b.WriteString(m.theme.Label.Render("Event: ") + manifest.Event.Name + "\n")
	b.WriteString(m.theme.Label.Render("Date:  ") + utils.FormatDate(manifest.Event.Date) + " " + manifest.Event.Time + "\n")
	b.WriteString(m.theme.Label.Render("Venue: ") + manifest.Event.Venue + "\n")
	b.WriteString(m.theme.Label.Render("Seats: ") + utils.JoinInts(manifest.Seats) + "\n")
	b.WriteString(m.theme.Label.Render("Total: ") + utils.FormatPrice(manifest.Total) + "\n")
	b.WriteString("\n" + m.theme.Help.Render("t view tickets • esc back to events"))
	return m.theme.Card.Render(b.String())
}

// bookingErrorText renders workflow errors in user terms.
func bookingErrorText(err error) string {
	switch {
	case errors.Is(err, booking.ErrNoSeatsSelected):
		return "Select at least one seat first."
	case errors.Is(err, booking.ErrInterestsRequired):
		return "Pick at least one interest to continue."
	case errors.Is(err, booking.ErrBookingFailed):
		return "Booking failed. Some seats may have been taken; review and try again."
	}
	return errorText(err)
}
