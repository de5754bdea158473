package metrics_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/rentaldeploy/pkg/metrics"
)

func TestRecordSeedAndStep(t *testing.T) {
	before := testutil.ToFloat64(metrics.SeedEntities.WithLabelValues("equipment", metrics.OutcomeCreated))
	metrics.RecordSeed("equipment", metrics.OutcomeCreated)
	after := testutil.ToFloat64(metrics.SeedEntities.WithLabelValues("equipment", metrics.OutcomeCreated))
	assert.Equal(t, before+1, after)

	failed := testutil.ToFloat64(metrics.Steps.WithLabelValues("seed", "failed"))
	metrics.RecordStep("seed", false, 20*time.Millisecond)
	assert.Equal(t, failed+1, testutil.ToFloat64(metrics.Steps.WithLabelValues("seed", "failed")))
}

func TestSetReady(t *testing.T) {
	metrics.SetReady(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Ready))
	metrics.SetReady(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.Ready))
}

func TestHandlerExposesDeployMetrics(t *testing.T) {
	metrics.SetReady(true)

	rec := httptest.NewRecorder()
	metrics.Handler()(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rentaldeploy_ready 1")
}

func TestPushSendsToGateway(t *testing.T) {
	var gotPath, gotBody string
	gw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer gw.Close()

	metrics.RecordSeed("brand_system", metrics.OutcomeExisting)
	require.NoError(t, metrics.Push(context.Background(), gw.URL, "rentaldeploy", "run-1"))

	assert.Equal(t, "/metrics/job/rentaldeploy/run_id/run-1", gotPath)
	assert.Contains(t, gotBody, "rentaldeploy_seed_entities_total")
}

func TestPushWithoutURLIsNoop(t *testing.T) {
	assert.NoError(t, metrics.Push(context.Background(), "", "job", ""))
}
