package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_CountsByRoute(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/leads/:lead_id", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusTeapot, "nope") })

	for _, p := range []string{"/leads/1", "/leads/2", "/boom"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
	}

	if got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/leads/:lead_id", "204")); got != 2 {
		t.Fatalf("route counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/boom", "418")); got != 1 {
		t.Fatalf("error counter = %v, want 1", got)
	}
}

func TestRecordTransitionAndImport(t *testing.T) {
	m := New()
	m.RecordTransition("activity_logged", "ok")
	m.RecordTransition("activity_logged", "ok")
	m.RecordTransition("verification_decision", "forbidden")
	m.RecordImport(3, 2)

	if got := testutil.ToFloat64(m.LeadTransitions.WithLabelValues("activity_logged", "ok")); got != 2 {
		t.Fatalf("ok transitions = %v", got)
	}
	if got := testutil.ToFloat64(m.LeadTransitions.WithLabelValues("verification_decision", "forbidden")); got != 1 {
		t.Fatalf("forbidden transitions = %v", got)
	}
	if got := testutil.ToFloat64(m.LeadsImported.WithLabelValues("invalid")); got != 2 {
		t.Fatalf("invalid imports = %v", got)
	}
}

func TestHandler_Exposition(t *testing.T) {
	m := New()
	m.RecordImport(1, 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `crm_leads_imported_total{result="valid"} 1`) {
		t.Fatalf("exposition missing import counter:\n%s", rec.Body.String())
	}
}
