package sentry

import (
	sentry "github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"legalpages/config"
	"legalpages/logging"
)

// Init starts the Sentry client. With no DSN the SDK stays disabled and
// every capture is dropped.
func Init(cfg config.SentryConfig) error {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Release:          cfg.Release,
		Environment:      cfg.Environment,
		TracesSampleRate: cfg.TracesSampleRate,
	}); err != nil {
		return err
	}
	if !cfg.IsEnabled() {
		logging.For("sentry").Info("SENTRY_DSN not set, error reporting disabled")
	}
	return nil
}

func GetSentryGin() gin.HandlerFunc {
	return sentrygin.New(sentrygin.Options{Repanic: true})
}

// ReportError captures err on the request hub when there is one.
func ReportError(c *gin.Context, err error) {
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
		return
	}
	sentry.CaptureException(err)
}
