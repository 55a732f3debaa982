package handlers

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"legalpages/metrics"
	"legalpages/pages"
)

var _ Page = (*pages.View)(nil)

type brokenPage struct {
	dismissed int
}

func (p *brokenPage) Slug() string        { return "broken" }
func (p *brokenPage) Path() string        { return "/broken" }
func (p *brokenPage) DismissPath() string { return "/broken/dismiss" }
func (p *brokenPage) Dismiss()            { p.dismissed++ }

func (p *brokenPage) Render(w io.Writer) error {
	io.WriteString(w, "<html>partial")
	return errors.New("template exploded")
}

type counter struct {
	privacy int
	refund  int
}

func setupRouter(t *testing.T, returnURL string) (*gin.Engine, *counter, *metrics.Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	calls := &counter{}
	m := metrics.New()
	manager := NewManager(returnURL, m,
		pages.NewPrivacyView(func() { calls.privacy++ }),
		pages.NewRefundView(func() { calls.refund++ }),
	)
	router := gin.New()
	manager.Register(router)
	return router, calls, m
}

func serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRenderViews(t *testing.T) {
	router, calls, m := setupRouter(t, "/")

	tests := []struct {
		path  string
		title string
	}{
		{"/privacy", "Privacy Policy"},
		{"/refund", "Refund Policy"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(router, http.MethodGet, tt.path)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d; want 200", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("Content-Type = %q; want text/html", ct)
			}
			doc, err := goquery.NewDocumentFromReader(rec.Body)
			if err != nil {
				t.Fatalf("parse body: %v", err)
			}
			if got := doc.Find("h1#policy-title").Text(); got != tt.title {
				t.Errorf("title = %q; want %q", got, tt.title)
			}
		})
	}

	if calls.privacy != 0 || calls.refund != 0 {
		t.Errorf("dismiss callbacks fired on render: %+v", *calls)
	}
	if got := testutil.ToFloat64(m.Renders.WithLabelValues("privacy")); got != 1 {
		t.Errorf("privacy renders = %v; want 1", got)
	}
}

func TestRefundSectionsServedInOrder(t *testing.T) {
	router, _, _ := setupRouter(t, "/")

	rec := serve(router, http.MethodGet, "/refund")
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	if err != nil {
		t.Fatalf("parse body: %v", err)
	}
	headings := doc.Find("section.policy-section h2")
	if headings.Length() < 2 {
		t.Fatalf("got %d sections; want at least 2", headings.Length())
	}
	if got := headings.Eq(0).Text(); got != "1. Satisfaction Guarantee" {
		t.Errorf("first section = %q", got)
	}
	if got := headings.Eq(1).Text(); got != "2. Eligibility for Refund" {
		t.Errorf("second section = %q", got)
	}
}

func TestDismissInvokesOnlyThatViewsCallback(t *testing.T) {
	router, calls, m := setupRouter(t, "/account")

	rec := serve(router, http.MethodPost, "/privacy/dismiss")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d; want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/account" {
		t.Errorf("Location = %q; want /account", loc)
	}
	if calls.privacy != 1 {
		t.Errorf("privacy callback calls = %d; want 1", calls.privacy)
	}
	if calls.refund != 0 {
		t.Errorf("refund callback calls = %d; want 0", calls.refund)
	}

	serve(router, http.MethodPost, "/refund/dismiss")
	serve(router, http.MethodPost, "/refund/dismiss")
	if calls.refund != 2 {
		t.Errorf("refund callback calls = %d; want 2", calls.refund)
	}
	if got := testutil.ToFloat64(m.Dismissals.WithLabelValues("refund")); got != 2 {
		t.Errorf("refund dismissals = %v; want 2", got)
	}
}

func TestDismissRequiresPost(t *testing.T) {
	router, calls, _ := setupRouter(t, "/")

	rec := serve(router, http.MethodGet, "/privacy/dismiss")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", rec.Code)
	}
	if calls.privacy != 0 {
		t.Errorf("privacy callback calls = %d; want 0", calls.privacy)
	}
}

func TestUnknownView(t *testing.T) {
	router, _, _ := setupRouter(t, "/")
	if rec := serve(router, http.MethodGet, "/terms"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", rec.Code)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	router, _, _ := setupRouter(t, "/")

	rec := serve(router, http.MethodGet, "/healthz")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok":true`) {
		t.Errorf("healthz = %d %q", rec.Code, rec.Body.String())
	}

	serve(router, http.MethodGet, "/privacy")
	rec = serve(router, http.MethodGet, "/metrics")
	if !strings.Contains(rec.Body.String(), `legalpages_renders_total{view="privacy"} 1`) {
		t.Errorf("metrics missing privacy render counter")
	}
}

func TestNewManagerDefaultsReturnURL(t *testing.T) {
	if got := NewManager("", nil).ReturnURL; got != "/" {
		t.Errorf("ReturnURL = %q; want /", got)
	}
}

func TestRenderErrorReturns500(t *testing.T) {
	gin.SetMode(gin.TestMode)

	page := &brokenPage{}
	m := metrics.New()
	router := gin.New()
	NewManager("/", m, page).Register(router)

	rec := serve(router, http.MethodGet, "/broken")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "partial") {
		t.Errorf("partial render leaked into response: %q", rec.Body.String())
	}
	if got := testutil.ToFloat64(m.RenderErrors.WithLabelValues("broken")); got != 1 {
		t.Errorf("render errors = %v; want 1", got)
	}
	if got := testutil.ToFloat64(m.Renders.WithLabelValues("broken")); got != 0 {
		t.Errorf("renders = %v; want 0", got)
	}
	if page.dismissed != 0 {
		t.Errorf("dismissed = %d; want 0", page.dismissed)
	}
}
