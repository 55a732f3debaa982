package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	appConfig "legalpages/config"
	"legalpages/handlers"
	"legalpages/logging"
	"legalpages/metrics"
	"legalpages/pages"
	"legalpages/sentry"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warnf("Error loading .env file: %v", err)
	}
	appConfig.NewConfig()
	logging.Setup(appConfig.Config.Logging.Level)

	if err := sentry.Init(appConfig.Config.Sentry); err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentrygo.Flush(2 * time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	if appConfig.Config.Server.GinMode != "" {
		gin.SetMode(appConfig.Config.Server.GinMode)
	}
	router := gin.Default()
	router.Use(sentry.GetSentryGin())

	manager := handlers.NewManager(
		appConfig.Config.Pages.ReturnURL,
		metrics.New(),
		pages.NewPrivacyView(onDismiss("privacy")),
		pages.NewRefundView(onDismiss("refund")),
	)
	manager.Register(router)

	srv := &http.Server{
		Addr:              ":" + appConfig.Config.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// The host owns what happens after a view closes; here that is the redirect
// done by the handler, so the callback only records it.
func onDismiss(view string) func() {
	return func() {
		logging.For("host").WithField("view", view).Info("Returning from policy view")
	}
}
