package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/eventx-studio/eventx-cli/api"
	"github.com/eventx-studio/eventx-cli/internal/config"
	"github.com/eventx-studio/eventx-cli/session"
	"github.com/eventx-studio/eventx-cli/session/filerepo"
	"github.com/eventx-studio/eventx-cli/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error running eventx: %s\n", err)
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	godotenv.Load()
	c := config.New()
	setupLogging(c)
	displayAppname(c.GetAppName())

	client, err := api.New(c.GetAPIBaseURL(),
		api.WithTimeout(time.Duration(c.GetHTTPTimeout())*time.Second))
	if err != nil {
		return fmt.Errorf("api.New: %w", err)
	}

	store, err := session.NewStore(filerepo.New(c.GetSessionFile()), client)
	if err != nil {
		return fmt.Errorf("session.NewStore: %w", err)
	}

	program := tea.NewProgram(tui.New(c, client, store), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program.Run: %w", err)
	}
	return nil
}

// setupLogging routes structured logs to a file next to the session
// record: stderr belongs to the terminal UI while the program runs.
func setupLogging(c config.Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.GetLogLevel()))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	logPath := c.GetSessionFile() + ".log"
	os.MkdirAll(filepath.Dir(logPath), 0o700)
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		zlog.Logger = zerolog.Nop()
		return
	}
	var w io.Writer = f
	if strings.EqualFold(c.GetEnv(), "dev") {
		w = zerolog.ConsoleWriter{Out: f, NoColor: true}
	}
	zlog.Logger = zlog.Output(w)
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
