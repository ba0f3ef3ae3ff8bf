package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eventx-studio/eventx-cli/api"
	"github.com/eventx-studio/eventx-cli/internal/utils"
)

// eventsPageSize matches the web client's listing grid.
const eventsPageSize = 12

// eventsModel is the event browser: a searchable, paginated listing.
// Admins get edit, delete and create shortcuts on top of the shared
// navigation.
type eventsModel struct {
	theme      Theme
	search     textinput.Model
	searching  bool
	events     []api.Event
	cursor     int
	page       int
	totalPages int
	loading    bool
	errMsg     string
	notice     string
}

func newEventsModel(theme Theme) eventsModel {
	search := textinput.New()
	search.Placeholder = "Search events…"
	search.CharLimit = 64
	return eventsModel{
		theme:   theme,
		search:  search,
		page:    1,
		loading: true,
	}
}

func (m *eventsModel) update(a *App, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case eventsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return nil
		}
		m.errMsg = ""
		m.events = msg.events
		m.totalPages = msg.totalPages
		m.page = msg.page
		if m.cursor >= len(m.events) {
			m.cursor = 0
		}
		return nil

	case eventLoadedMsg:
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return nil
		}
		if msg.booking {
			return a.booking.open(a, *msg.event)
		}
		a.details = newDetailsModel(a.theme, *msg.event)
		a.screen = ScreenDetails
		return nil

	case eventDeletedMsg:
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return nil
		}
		m.notice = "Event deleted"
		m.loading = true
		return a.loadEventsCmd(m.search.Value(), m.page)

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(a, msg)
		}
		return m.updateList(a, msg)
	}
	return nil
}

func (m *eventsModel) updateSearch(a *App, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Select):
		m.searching = false
		m.loading = true
		// A new search always restarts from the first page.
		return a.loadEventsCmd(strings.TrimSpace(m.search.Value()), 1)
	case key.Matches(msg, a.keys.Back):
		m.searching = false
		m.search.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return cmd
}

func (m *eventsModel) updateList(a *App, msg tea.KeyMsg) tea.Cmd {
	user, _ := a.store.Current()
	switch {
	case key.Matches(msg, a.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if m.cursor < len(m.events)-1 {
			m.cursor++
		}
	case key.Matches(msg, a.keys.Left):
		if m.page > 1 {
			m.loading = true
			return a.loadEventsCmd(m.search.Value(), m.page-1)
		}
	case key.Matches(msg, a.keys.Right):
		if m.page < m.totalPages {
			m.loading = true
			return a.loadEventsCmd(m.search.Value(), m.page+1)
		}
	case key.Matches(msg, a.keys.Select):
		if event, ok := m.selected(); ok {
			return a.loadEventCmd(event.ID, false)
		}
	case msg.String() == "/":
		m.searching = true
		return m.search.Focus()
	case msg.String() == "b":
		if event, ok := m.selected(); ok && !user.IsAdmin() {
			// Always book against a fresh availability snapshot.
			return a.loadEventCmd(event.ID, true)
		}
	case msg.String() == "t":
		if !user.IsAdmin() {
			return a.openTickets()
		}
	case msg.String() == "g":
		if user.IsAdmin() {
			return a.openDashboard()
		}
	case msg.String() == "a":
		if user.IsAdmin() {
			a.editor = newEditorModel(a.theme, nil)
			a.screen = ScreenEditor
		}
	case msg.String() == "e":
		if event, ok := m.selected(); ok && user.IsAdmin() {
			a.editor = newEditorModel(a.theme, &event)
			a.screen = ScreenEditor
		}
	case msg.String() == "d":
		if event, ok := m.selected(); ok && user.IsAdmin() {
			return a.deleteEventCmd(event.ID)
		}
	}
	return nil
}

func (m *eventsModel) selected() (api.Event, bool) {
	if m.cursor < 0 || m.cursor >= len(m.events) {
		return api.Event{}, false
	}
	return m.events[m.cursor], true
}

func (m *eventsModel) view(a *App) string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Events") + "\n\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View() + "\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(a.spin.View() + m.theme.Subtle.Render("Loading events…") + "\n")
	case m.errMsg != "":
		b.WriteString(m.theme.ErrorLine.Render(m.errMsg) + "\n")
	case len(m.events) == 0:
		if m.search.Value() != "" {
			b.WriteString(m.theme.Subtle.Render("No events found matching your search.") + "\n")
		} else {
			b.WriteString(m.theme.Subtle.Render("No events available.") + "\n")
		}
	default:
		for i, event := range m.events {
			line := fmt.Sprintf("%-32s %s  %s  %s  %d/%d seats",
				utils.Truncate(event.Name, 32),
				utils.FormatDate(event.Date),
				event.Time,
				utils.FormatPrice(event.Price),
				event.Available(),
				event.Seats,
			)
			if i == m.cursor {
				b.WriteString(m.theme.ListSelected.Render("> "+line) + "\n")
			} else {
				b.WriteString(m.theme.ListItem.Render(line) + "\n")
			}
		}
		if m.totalPages > 1 {
			b.WriteString("\n" + m.theme.Subtle.Render(fmt.Sprintf("Page %d of %d", m.page, m.totalPages)) + "\n")
		}
	}

	if m.notice != "" {
		b.WriteString(m.theme.Bar.Render(m.notice) + "\n")
	}

	user, _ := a.store.Current()
	help := "enter details • / search • ←/→ page • ctrl+l logout"
	if user.IsAdmin() {
		help = "enter details • a add • e edit • d delete • g dashboard • " + help[len("enter details • "):]
	} else {
		help = "b book • t my tickets • " + help
	}
	b.WriteString("\n" + m.theme.Help.Render(help))
	return b.String()
}

// errorText converts a failed call into the inline message style the
// web client shows: backend messages verbatim, transport failures as a
// generic retry hint.
func errorText(err error) string {
	if apiErr, ok := api.IsAPIError(err); ok {
		return apiErr.Message
	}
	return "Request failed. Please try again."
}
