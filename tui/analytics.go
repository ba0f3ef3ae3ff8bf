package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eventx-studio/eventx-cli/analytics"
	"github.com/eventx-studio/eventx-cli/api"
	"github.com/eventx-studio/eventx-cli/internal/utils"
)

// barChartWidth is the widest a distribution bar renders.
const barChartWidth = 30

// dashboardModel is the admin landing screen: the stat cards plus the
// attendee distributions, filterable down to a single event with the
// event selector.
type dashboardModel struct {
	theme    Theme
	stats    *api.DashboardStats
	insights *api.AttendeeInsights
	events   []api.Event
	eventIdx int // 0 means platform-wide
	demo     *api.Demographics
	showDemo bool
	loading  bool
	errMsg   string
}

func newDashboardModel(theme Theme) dashboardModel {
	return dashboardModel{theme: theme, loading: true}
}

func (m *dashboardModel) update(a *App, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return nil
		}
		m.errMsg = ""
		m.stats = msg.stats
		m.insights = msg.insights
		m.events = msg.events
		return nil

	case insightsLoadedMsg:
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return nil
		}
		m.errMsg = ""
		m.insights = msg.insights
		return nil

	case demographicsLoadedMsg:
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return nil
		}
		m.errMsg = ""
		m.demo = msg.demographics
		m.showDemo = true
		return nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Left):
			if m.eventIdx > 0 {
				m.eventIdx--
				return a.loadInsightsCmd(m.selectedEventID())
			}
		case key.Matches(msg, a.keys.Right):
			if m.eventIdx < len(m.events) {
				m.eventIdx++
				return a.loadInsightsCmd(m.selectedEventID())
			}
		case msg.String() == "d":
			if m.showDemo {
				m.showDemo = false
				return nil
			}
			return a.loadDemographicsCmd()
		case msg.String() == "e":
			return a.openEvents()
		case msg.String() == "r":
			m.loading = true
			return a.loadDashboardCmd()
		}
	}
	return nil
}

// selectedEventID returns the id of the event under the selector, or
// empty for the platform-wide view.
func (m *dashboardModel) selectedEventID() string {
	if m.eventIdx == 0 || m.eventIdx > len(m.events) {
		return ""
	}
	return m.events[m.eventIdx-1].ID
}

func (m *dashboardModel) view(a *App) string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Dashboard") + "\n\n")

	switch {
	case m.loading:
		b.WriteString(a.spin.View() + m.theme.Subtle.Render("Loading dashboard…") + "\n")
		return b.String()
	case m.errMsg != "":
		b.WriteString(m.theme.ErrorLine.Render(m.errMsg) + "\n")
		return b.String()
	}

	if m.stats != nil {
		cards := []string{
			m.statCard("Events", fmt.Sprintf("%d (%d active)", m.stats.TotalEvents, m.stats.ActiveEvents)),
			m.statCard("Tickets sold", fmt.Sprintf("%d", m.stats.TotalTicketsSold)),
			m.statCard("Revenue", utils.FormatPrice(m.stats.TotalRevenue)),
			m.statCard("Users", fmt.Sprintf("%d", m.stats.TotalUsers)),
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n\n")
	}

	if m.showDemo && m.demo != nil {
		b.WriteString(m.theme.Label.Render("User demographics") + "\n\n")
		b.WriteString(m.theme.Subtle.Render(fmt.Sprintf("%d users", m.demo.TotalUsers)) + "\n\n")
		b.WriteString(m.distribution("Age", analytics.AgeRows(m.demo.AgeDistribution)))
		b.WriteString(m.distribution("Gender", analytics.GenderRows(m.demo.GenderDistribution)))
		b.WriteString(m.distribution("Location", analytics.LocationRows(m.demo.LocationDistribution)))
	} else {
		b.WriteString(m.theme.Label.Render("Attendee insights: ") + "‹ " + m.selectorLabel() + " ›\n\n")
		if m.insights != nil {
			b.WriteString(m.theme.Subtle.Render(fmt.Sprintf("%d attendees", m.insights.TotalAttendees)) + "\n\n")
			b.WriteString(m.distribution("Age", analytics.AgeRows(m.insights.AgeDistribution)))
			b.WriteString(m.distribution("Gender", analytics.GenderRows(m.insights.GenderDistribution)))
			b.WriteString(m.distribution("Interests", analytics.InterestRows(m.insights.InterestsDistribution)))
			b.WriteString(m.distribution("Location", analytics.LocationRows(m.insights.LocationDistribution)))
		}
	}

	b.WriteString(m.theme.Help.Render("←/→ filter by event • d demographics • e manage events • r refresh • ctrl+l logout"))
	return b.String()
}

func (m *dashboardModel) selectorLabel() string {
	if m.eventIdx == 0 || m.eventIdx > len(m.events) {
		return "All events"
	}
	return utils.Truncate(m.events[m.eventIdx-1].Name, 40)
}

func (m *dashboardModel) statCard(label, value string) string {
	return m.theme.Card.Render(m.theme.Label.Render(label) + "\n" + value)
}

func (m *dashboardModel) distribution(title string, rows []analytics.Row) string {
	if len(rows) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.theme.Label.Render(title) + "\n")
	for _, row := range rows {
		bar := strings.Repeat("█", analytics.BarWidth(row.Percentage, barChartWidth))
		b.WriteString(fmt.Sprintf("  %-16s %s %d (%.0f%%)\n",
			utils.Truncate(row.Label, 16), m.theme.Bar.Render(bar), row.Count, row.Percentage))
	}
	b.WriteString("\n")
	return b.String()
}
