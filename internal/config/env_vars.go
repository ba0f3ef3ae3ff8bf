package config

import (
	"os"
	"path/filepath"
	"strconv"
)

const (
	appNameVar     = "APP_NAME"
	apiBaseURLVar  = "EVENTX_API_URL"
	sessionFileVar = "EVENTX_SESSION_FILE"
	logLevelVar    = "LOG_LEVEL"
	httpTimeoutVar = "HTTP_TIMEOUT_SECONDS"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "EventX Studio")
}

// GetAPIBaseURL returns the base URL of the EventX backend, including
// the /api prefix (e.g. "https://events.example.com/api").
func (EnvVars) GetAPIBaseURL() string {
	return GetEnv(apiBaseURLVar, "http://localhost:5000/api")
}

// GetSessionFile returns the path of the single persisted session
// record. Defaults to the platform config directory, falling back to
// the working directory when the home lookup fails.
func (EnvVars) GetSessionFile() string {
	if path := os.Getenv(sessionFileVar); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".eventx", "session.json")
	}
	return filepath.Join(dir, "eventx", "session.json")
}

func (EnvVars) GetLogLevel() string {
	return GetEnv(logLevelVar, "info")
}

func (EnvVars) GetHTTPTimeout() int {
	s := GetEnv(httpTimeoutVar, "15")
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 15
	}
	return n
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
