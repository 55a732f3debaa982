package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
)

type ConfigStruct struct {
	Server  ServerConfig
	Pages   PagesConfig
	Logging LoggingConfig
	Sentry  SentryConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type PagesConfig struct {
	// ReturnURL is where a dismissed view sends the user.
	ReturnURL string
}

type LoggingConfig struct {
	Level string
}

type SentryConfig struct {
	DSN              string
	Release          string
	Environment      string
	TracesSampleRate float64
}

func (s *SentryConfig) IsEnabled() bool {
	return s.DSN != ""
}

var Config *ConfigStruct

func NewConfig() {
	config := &ConfigStruct{
		Server: ServerConfig{
			Port:    getPort(),
			GinMode: os.Getenv("GIN_MODE"),
		},
		Pages: PagesConfig{
			ReturnURL: getReturnURL(),
		},
		Logging: LoggingConfig{
			Level: getLogLevel(),
		},
		Sentry: SentryConfig{
			DSN:              os.Getenv("SENTRY_DSN"),
			Release:          os.Getenv("RELEASE"),
			Environment:      os.Getenv("ENVIRONMENT"),
			TracesSampleRate: getTracesSampleRate(),
		},
	}

	Config = config
}

func getPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		return "8080"
	}
	if n, err := strconv.Atoi(port); err != nil || n <= 0 || n > 65535 {
		return "8080"
	}
	return port
}

// Only same-site paths are accepted so the close control cannot be turned
// into an open redirect. Browsers read a leading "/\" like "//".
func getReturnURL() string {
	returnURL := os.Getenv("RETURN_URL")
	if returnURL == "" || !strings.HasPrefix(returnURL, "/") {
		return "/"
	}
	if strings.HasPrefix(returnURL, "//") || strings.HasPrefix(returnURL, "/\\") {
		return "/"
	}
	parsed, err := url.Parse(returnURL)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" {
		return "/"
	}
	return returnURL
}

func getLogLevel() string {
	level := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if level == "" {
		return "info"
	}
	return level
}

func getTracesSampleRate() float64 {
	rateStr := os.Getenv("SENTRY_TRACES_SAMPLE_RATE")
	if rateStr == "" {
		return 1.0
	}
	rate, err := strconv.ParseFloat(rateStr, 64)
	if err != nil || rate < 0 {
		return 1.0
	}
	if rate > 1 {
		return 1.0
	}
	return rate
}
