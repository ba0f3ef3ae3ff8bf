package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eventx-studio/eventx-cli/api"
	"github.com/eventx-studio/eventx-cli/internal/utils"
)

// ticketsModel lists the user's tickets and expands one at a time into
// its QR code for check-in at the venue. Cancelling asks for one
// confirming keypress first.
type ticketsModel struct {
	theme      Theme
	tickets    []api.Ticket
	cursor     int
	loading    bool
	errMsg     string
	showQR     bool
	qr         string
	confirming bool // cancel pending confirmation
}

func newTicketsModel(theme Theme) ticketsModel {
	return ticketsModel{theme: theme, loading: true}
}

func (m *ticketsModel) update(a *App, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ticketsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return nil
		}
		m.errMsg = ""
		m.tickets = msg.tickets
		if m.cursor >= len(m.tickets) {
			m.cursor = 0
		}
		return nil

	case ticketCancelledMsg:
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return nil
		}
		m.loading = true
		return a.loadTicketsCmd()

	case tea.KeyMsg:
		if m.confirming {
			switch msg.String() {
			case "y":
				m.confirming = false
				if ticket, ok := m.selected(); ok {
					return a.cancelTicketCmd(ticket.ID)
				}
			default:
				m.confirming = false
			}
			return nil
		}
		if m.showQR {
			m.showQR = false
			m.qr = ""
			return nil
		}
		switch {
		case key.Matches(msg, a.keys.Back):
			return a.openEvents()
		case key.Matches(msg, a.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, a.keys.Down):
			if m.cursor < len(m.tickets)-1 {
				m.cursor++
			}
		case key.Matches(msg, a.keys.Select), msg.String() == "q":
			if ticket, ok := m.selected(); ok {
				payload, err := ticket.QRPayload()
				if err != nil {
					m.errMsg = "Could not render the ticket QR code."
					return nil
				}
				qr, err := renderQR(payload)
				if err != nil {
					m.errMsg = "Could not render the ticket QR code."
					return nil
				}
				m.qr = qr
				m.showQR = true
			}
		case msg.String() == "c":
			if ticket, ok := m.selected(); ok && ticket.Status != "cancelled" {
				m.confirming = true
			}
		case msg.String() == "r":
			m.loading = true
			return a.loadTicketsCmd()
		}
	}
	return nil
}

func (m *ticketsModel) selected() (api.Ticket, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tickets) {
		return api.Ticket{}, false
	}
	return m.tickets[m.cursor], true
}

func (m *ticketsModel) view(a *App) string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("My Tickets") + "\n\n")

	switch {
	case m.loading:
		b.WriteString(a.spin.View() + m.theme.Subtle.Render("Loading tickets…") + "\n")
	case m.errMsg != "":
		b.WriteString(m.theme.ErrorLine.Render(m.errMsg) + "\n")
	case len(m.tickets) == 0:
		b.WriteString(m.theme.Subtle.Render("No tickets yet. Book an event to get started.") + "\n")
	default:
		for i, ticket := range m.tickets {
			line := fmt.Sprintf("%-28s seat %-3d %s  %s  %s",
				utils.Truncate(ticket.EventName, 28),
				ticket.SeatNumber,
				utils.FormatDate(ticket.Date),
				utils.FormatPrice(ticket.Price),
				ticket.Status,
			)
			if i == m.cursor {
				b.WriteString(m.theme.ListSelected.Render("> "+line) + "\n")
			} else {
				b.WriteString(m.theme.ListItem.Render(line) + "\n")
			}
		}
	}

	if m.showQR {
		ticket, _ := m.selected()
		card := m.theme.Title.Render(ticket.EventName) + "\n" +
			fmt.Sprintf("Seat %d · %s %s · %s\n\n", ticket.SeatNumber, utils.FormatDate(ticket.Date), ticket.Time, ticket.Venue) +
			m.qr + "\n" + m.theme.Subtle.Render("Present this code at the door. Any key to close.")
		b.WriteString("\n" + m.theme.Card.Render(card) + "\n")
	}

	if m.confirming {
		b.WriteString("\n" + m.theme.ErrorLine.Render("Cancel this ticket? Press y to confirm.") + "\n")
	}

	b.WriteString("\n" + m.theme.Help.Render("enter QR code • c cancel ticket • r refresh • esc back"))
	return b.String()
}
