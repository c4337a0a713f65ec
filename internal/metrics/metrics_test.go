package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordProgressUpdate(t *testing.T) {
	progressUpdatesTotal.Reset()

	RecordProgressUpdate(OutcomeSuccess, 0.02)
	RecordProgressUpdate(OutcomeFailure, 0.5)
	RecordProgressUpdate(OutcomeFailure, 1.2)

	if got := testutil.ToFloat64(progressUpdatesTotal.WithLabelValues(OutcomeSuccess)); got != 1 {
		t.Errorf("success count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(progressUpdatesTotal.WithLabelValues(OutcomeFailure)); got != 2 {
		t.Errorf("failure count = %v, want 2", got)
	}
}

func TestRecordProviderRequest(t *testing.T) {
	providerRequestsTotal.Reset()

	RecordProviderRequest("fetch", OutcomeSuccess)
	RecordProviderRequest("fetch", OutcomeSuccess)

	if got := testutil.ToFloat64(providerRequestsTotal.WithLabelValues("fetch", OutcomeSuccess)); got != 2 {
		t.Errorf("fetch count = %v, want 2", got)
	}
}

func TestRecordHTTPRequestAndGauge(t *testing.T) {
	httpRequestsTotal.Reset()

	RecordHTTPRequest("/api/roadmap", "GET", "200")
	SetStepsCompleted(3)

	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/api/roadmap", "GET", "200")); got != 1 {
		t.Errorf("request count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(stepsCompleted); got != 3 {
		t.Errorf("steps completed = %v, want 3", got)
	}
}

func TestOutcome(t *testing.T) {
	if Outcome(nil) != OutcomeSuccess {
		t.Error("nil error should be success")
	}
	if Outcome(errors.New("x")) != OutcomeFailure {
		t.Error("non-nil error should be failure")
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordProgressUpdate(OutcomeSuccess, 0.01)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "pathway_progress_updates_total") {
		t.Error("metrics output missing pathway_progress_updates_total")
	}
}
