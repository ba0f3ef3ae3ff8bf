package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eventx-studio/eventx-cli/api"
	"github.com/eventx-studio/eventx-cli/internal/utils"
)

// detailsModel is the read-only event page.
type detailsModel struct {
	theme Theme
	event api.Event
}

func newDetailsModel(theme Theme, event api.Event) detailsModel {
	return detailsModel{theme: theme, event: event}
}

func (m *detailsModel) update(a *App, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case eventLoadedMsg:
		if msg.err != nil {
			return nil
		}
		if msg.booking {
			return a.booking.open(a, *msg.event)
		}
		m.event = *msg.event
	case tea.KeyMsg:
		user, _ := a.store.Current()
		switch {
		case key.Matches(msg, a.keys.Back):
			return a.openEvents()
		case msg.String() == "b":
			if !user.IsAdmin() {
				return a.loadEventCmd(m.event.ID, true)
			}
		case msg.String() == "e":
			if user.IsAdmin() {
				a.editor = newEditorModel(a.theme, &m.event)
				a.screen = ScreenEditor
			}
		}
	}
	return nil
}

func (m *detailsModel) view(a *App) string {
	event := m.event
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(event.Name) + "\n\n")
	if event.Description != "" {
		b.WriteString(event.Description + "\n\n")
	}

	rows := [][2]string{
		{"Date", utils.FormatDate(event.Date)},
		{"Time", event.Time},
		{"Venue", event.Venue},
		{"Price", utils.FormatPrice(event.Price)},
		{"Seats", fmt.Sprintf("%d of %d available", event.Available(), event.Seats)},
		{"Status", event.Status},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		b.WriteString(m.theme.Label.Render(row[0]+": ") + row[1] + "\n")
	}
	if len(event.Tags) > 0 {
		b.WriteString(m.theme.Label.Render("Tags: ") + strings.Join(event.Tags, ", ") + "\n")
	}

	user, _ := a.store.Current()
	help := "esc back"
	if user.IsAdmin() {
		help = "e edit • " + help
	} else if event.Available() > 0 {
		help = "b book • " + help
	}
	b.WriteString("\n" + m.theme.Help.Render(help))
	return m.theme.Card.Render(b.String())
}
