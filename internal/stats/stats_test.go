package stats

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveBatch(t *testing.T) {
	p := NewPipeline()

	p.ObserveBatch(10, 2, 1)
	p.ObserveBatch(5, 0, 0)

	assert.InDelta(t, 15.0, testutil.ToFloat64(p.samplesIngested), 1e-12)
	assert.InDelta(t, 2.0, testutil.ToFloat64(p.samplesDropped), 1e-12)
	assert.InDelta(t, 2.0, testutil.ToFloat64(p.batchesTotal), 1e-12)
	assert.InDelta(t, 1.0, testutil.ToFloat64(p.decimations), 1e-12)
}

func TestGaugeAndMalformed(t *testing.T) {
	p := NewPipeline()

	p.ObserveMalformedLine()
	p.SetEntitiesTracked(7)

	assert.InDelta(t, 1.0, testutil.ToFloat64(p.malformedLines), 1e-12)
	assert.InDelta(t, 7.0, testutil.ToFloat64(p.entitiesTracked), 1e-12)
}

func TestHandlerServesMetrics(t *testing.T) {
	p := NewPipeline()
	p.ObserveBatch(1, 0, 0)

	rr := httptest.NewRecorder()
	p.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rr.Code)
	assert.Contains(t, rr.Body.String(), "condwatch_samples_ingested_total 1")
}
