package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eventx-studio/eventx-cli/api"
	"github.com/eventx-studio/eventx-cli/internal/config"
	"github.com/eventx-studio/eventx-cli/session"
	"github.com/eventx-studio/eventx-cli/users"
)

// Screen identifies which view is active. Switching screens is the
// terminal client's routing: one screen owns the keyboard at a time.
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenLogin
	ScreenEvents
	ScreenDetails
	ScreenBooking
	ScreenTickets
	ScreenAnalytics
	ScreenEditor
)

// App is the top-level bubbletea model. It owns the session store and
// API client, routes messages to the active screen, and renders the
// shared header and status bar around it.
type App struct {
	cfg    config.Config
	client *api.Client
	store  *session.Store
	theme  Theme
	keys   KeyMap
	spin   spinner.Model

	screen Screen
	width  int
	height int
	errMsg string

	login     loginModel
	events    eventsModel
	details   detailsModel
	booking   bookingModel
	tickets   ticketsModel
	dashboard dashboardModel
	editor    editorModel
}

// New assembles the application model. The session is restored by the
// Init command, so the first frame renders the loading screen.
func New(cfg config.Config, client *api.Client, store *session.Store) *App {
	theme := DefaultTheme()
	keys := DefaultKeyMap()
	spin := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(theme.Bar))
	return &App{
		cfg:    cfg,
		client: client,
		store:  store,
		theme:  theme,
		keys:   keys,
		spin:   spin,
		screen: ScreenLoading,
		login:  newLoginModel(theme),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.restoreSessionCmd(), a.spin.Tick)
}

// landingScreen picks the post-login destination by role: admins land
// on the analytics dashboard, everyone else on the event browser. The
// choice is made once per navigation, never re-inspected mid-render.
func (a *App) landingScreen(user users.User) (Screen, tea.Cmd) {
	if user.IsAdmin() {
		return ScreenAnalytics, a.openDashboard()
	}
	return ScreenEvents, a.openEvents()
}

func (a *App) openEvents() tea.Cmd {
	a.events = newEventsModel(a.theme)
	a.screen = ScreenEvents
	return a.loadEventsCmd("", 1)
}

func (a *App) openDashboard() tea.Cmd {
	a.dashboard = newDashboardModel(a.theme)
	a.screen = ScreenAnalytics
	return a.loadDashboardCmd()
}

func (a *App) openTickets() tea.Cmd {
	a.tickets = newTicketsModel(a.theme)
	a.screen = ScreenTickets
	return a.loadTicketsCmd()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		// Logout is available from every authenticated screen except
		// text-entry contexts, which the screens guard themselves.
		if key.Matches(msg, a.keys.Logout) && a.store.IsAuthenticated() && !a.textEntryActive() {
			return a, a.logoutCmd()
		}

	case sessionRestoredMsg:
		if !msg.ok {
			a.screen = ScreenLogin
			if msg.expired {
				a.login.notice = "Your session has expired. Please sign in again."
			}
			return a, nil
		}
		screen, cmd := a.landingScreen(msg.user)
		a.screen = screen
		return a, cmd

	case loginResultMsg:
		if msg.err != nil {
			a.login.fail(msg.err)
			return a, nil
		}
		screen, cmd := a.landingScreen(msg.user)
		a.screen = screen
		return a, cmd

	case logoutDoneMsg:
		// The logout side effect: route to the login entry point.
		a.login = newLoginModel(a.theme)
		a.screen = ScreenLogin
		return a, nil
	}

	return a, a.route(msg)
}

// route hands the message to the active screen.
func (a *App) route(msg tea.Msg) tea.Cmd {
	switch a.screen {
	case ScreenLogin:
		return a.login.update(a, msg)
	case ScreenEvents:
		return a.events.update(a, msg)
	case ScreenDetails:
		return a.details.update(a, msg)
	case ScreenBooking:
		return a.booking.update(a, msg)
	case ScreenTickets:
		return a.tickets.update(a, msg)
	case ScreenAnalytics:
		return a.dashboard.update(a, msg)
	case ScreenEditor:
		return a.editor.update(a, msg)
	default:
		return nil
	}
}

// textEntryActive reports whether the active screen is capturing free
// text, in which case global single-letter shortcuts must not fire.
func (a *App) textEntryActive() bool {
	switch a.screen {
	case ScreenLogin:
		return true
	case ScreenEvents:
		return a.events.searching
	case ScreenEditor:
		return true
	default:
		return false
	}
}

func (a *App) View() string {
	var body string
	switch a.screen {
	case ScreenLoading:
		body = a.spin.View() + a.theme.Subtle.Render("Restoring session…")
	case ScreenLogin:
		body = a.login.view(a)
	case ScreenEvents:
		body = a.events.view(a)
	case ScreenDetails:
		body = a.details.view(a)
	case ScreenBooking:
		body = a.booking.view(a)
	case ScreenTickets:
		body = a.tickets.view(a)
	case ScreenAnalytics:
		body = a.dashboard.view(a)
	case ScreenEditor:
		body = a.editor.view(a)
	}
	if a.errMsg != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, a.theme.ErrorLine.Render(a.errMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, a.headerView(), body)
}

func (a *App) headerView() string {
	title := a.theme.Header.Render(a.cfg.GetAppName())
	user, ok := a.store.Current()
	if !ok {
		return title + "\n"
	}
	badge := a.theme.RoleBadge.Render(string(user.Role))
	who := a.theme.Subtle.Render(user.Name + " <" + user.Email + ">")
	header := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", who, " ", badge)
	if exp := a.store.ExpiresAt(); !exp.IsZero() {
		status := a.theme.StatusBar.Render("session expires " + exp.Local().Format("Jan 2 15:04"))
		header = lipgloss.JoinHorizontal(lipgloss.Center, header, "  ", status)
	}
	return header + "\n"
}
