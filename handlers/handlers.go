package handlers

// handlers mount each policy view on the router. GET renders the overlay,
// POST to the dismiss path is the close control and hands control back to
// the host through the view's dismiss callback.

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"legalpages/logging"
	"legalpages/metrics"
	"legalpages/sentry"
)

var logger = logging.For("handlers")

// Page is a mountable view. *pages.View satisfies it.
type Page interface {
	Slug() string
	Path() string
	DismissPath() string
	Render(w io.Writer) error
	Dismiss()
}

type Manager struct {
	ReturnURL string
	Metrics   *metrics.Metrics
	Views     []Page
}

func NewManager(returnURL string, m *metrics.Metrics, views ...Page) *Manager {
	if returnURL == "" {
		returnURL = "/"
	}
	return &Manager{
		ReturnURL: returnURL,
		Metrics:   m,
		Views:     views,
	}
}

// Register adds the view routes plus health and metrics endpoints.
func (m *Manager) Register(router gin.IRoutes) {
	for _, view := range m.Views {
		router.GET(view.Path(), m.render(view))
		router.POST(view.DismissPath(), m.dismiss(view))
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok": true,
		})
	})
	if m.Metrics != nil {
		router.GET("/metrics", gin.WrapH(m.Metrics.Handler()))
	}
}

func (m *Manager) render(view Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		var buf bytes.Buffer
		if err := view.Render(&buf); err != nil {
			logger.WithField("view", view.Slug()).Errorf("Error rendering view: %v", err)
			sentry.ReportError(c, err)
			if m.Metrics != nil {
				m.Metrics.RenderErrors.WithLabelValues(view.Slug()).Inc()
			}
			c.String(http.StatusInternalServerError, "Failed to render page")
			return
		}

		if m.Metrics != nil {
			m.Metrics.Renders.WithLabelValues(view.Slug()).Inc()
		}
		c.Header("Cache-Control", "public, max-age=3600")
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	}
}

func (m *Manager) dismiss(view Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		view.Dismiss()
		if m.Metrics != nil {
			m.Metrics.Dismissals.WithLabelValues(view.Slug()).Inc()
		}
		logger.WithField("view", view.Slug()).Debug("View dismissed")
		c.Redirect(http.StatusSeeOther, m.ReturnURL)
	}
}
