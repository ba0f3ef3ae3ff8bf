package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eventx-studio/eventx-cli/api"
)

// editorModel is the admin event form, used both to create and to
// edit. Every field is a text input; price, seats and date are parsed
// on submit and reported inline when invalid.
type editorModel struct {
	theme   Theme
	eventID string // empty when creating
	inputs  []textinput.Model
	focus   int
	busy    bool
	errMsg  string
}

const (
	editName = iota
	editDescription
	editDate
	editTime
	editVenue
	editPrice
	editSeats
	editTags
	editFieldCount
)

var editorLabels = [editFieldCount]string{
	"Name", "Description", "Date (YYYY-MM-DD)", "Time (HH:MM)",
	"Venue", "Price (EGP)", "Seats", "Tags (comma separated)",
}

func newEditorModel(theme Theme, event *api.Event) editorModel {
	inputs := make([]textinput.Model, editFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = editorLabels[i]
		inputs[i].CharLimit = 200
	}
	inputs[editName].Focus()

	m := editorModel{theme: theme, inputs: inputs}
	if event != nil {
		m.eventID = event.ID
		inputs[editName].SetValue(event.Name)
		inputs[editDescription].SetValue(event.Description)
		if !event.Date.IsZero() {
			inputs[editDate].SetValue(event.Date.Format("2006-01-02"))
		}
		inputs[editTime].SetValue(event.Time)
		inputs[editVenue].SetValue(event.Venue)
		inputs[editPrice].SetValue(strconv.FormatFloat(event.Price, 'f', -1, 64))
		inputs[editSeats].SetValue(strconv.Itoa(event.Seats))
		inputs[editTags].SetValue(strings.Join(event.Tags, ", "))
	}
	return m
}

func (m *editorModel) update(a *App, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case eventSavedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return nil
		}
		return a.openEvents()

	case tea.KeyMsg:
		if m.busy {
			return nil
		}
		switch {
		case key.Matches(msg, a.keys.Back):
			return a.openEvents()
		case msg.String() == "tab" || msg.String() == "down":
			m.setFocus((m.focus + 1) % editFieldCount)
			return nil
		case msg.String() == "shift+tab" || msg.String() == "up":
			m.setFocus((m.focus + editFieldCount - 1) % editFieldCount)
			return nil
		case key.Matches(msg, a.keys.Select):
			if m.focus < editFieldCount-1 {
				m.setFocus(m.focus + 1)
				return nil
			}
			input, err := m.parse()
			if err != "" {
				m.errMsg = err
				return nil
			}
			m.busy = true
			m.errMsg = ""
			return a.saveEventCmd(m.eventID, input)
		}
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return cmd
	}
	return nil
}

func (m *editorModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// parse validates the form into the request payload; the second return
// is an inline message, empty when the form is valid.
func (m *editorModel) parse() (api.EventInput, string) {
	var input api.EventInput
	input.Name = strings.TrimSpace(m.inputs[editName].Value())
	if input.Name == "" {
		return input, "Name is required."
	}
	input.Description = strings.TrimSpace(m.inputs[editDescription].Value())

	dateStr := strings.TrimSpace(m.inputs[editDate].Value())
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return input, "Date must look like 2026-03-14."
	}
	input.Date = dateStr
	input.Time = strings.TrimSpace(m.inputs[editTime].Value())
	input.Venue = strings.TrimSpace(m.inputs[editVenue].Value())

	price, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[editPrice].Value()), 64)
	if err != nil || price < 0 {
		return input, "Price must be a non-negative number."
	}
	input.Price = price

	seats, err := strconv.Atoi(strings.TrimSpace(m.inputs[editSeats].Value()))
	if err != nil || seats < 1 {
		return input, "Seats must be a positive whole number."
	}
	input.Seats = seats

	for _, tag := range strings.Split(m.inputs[editTags].Value(), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			input.Tags = append(input.Tags, tag)
		}
	}
	return input, ""
}

func (m *editorModel) view(_ *App) string {
	title := "New event"
	if m.eventID != "" {
		title = "Edit event"
	}
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(title) + "\n\n")
	for i, input := range m.inputs {
		b.WriteString(m.theme.Label.Render(editorLabels[i]) + "\n" + input.View() + "\n")
	}
	if m.busy {
		b.WriteString("\n" + m.theme.Subtle.Render("Saving…") + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + m.theme.ErrorLine.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + m.theme.Help.Render("tab next field • enter on last field saves • esc discard"))
	return b.String()
}
