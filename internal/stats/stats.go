// Package stats instruments the ingest pipeline with Prometheus collectors.
package stats

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Pipeline struct {
	registry *prometheus.Registry

	samplesIngested prometheus.Counter
	samplesDropped  prometheus.Counter
	batchesTotal    prometheus.Counter
	malformedLines  prometheus.Counter
	decimations     prometheus.Counter
	entitiesTracked prometheus.Gauge
}

func NewPipeline() *Pipeline {
	p := &Pipeline{
		registry: prometheus.NewRegistry(),
		samplesIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "condwatch_samples_ingested_total",
			Help: "Raw samples accepted into the pipeline.",
		}),
		samplesDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "condwatch_samples_dropped_total",
			Help: "Batch entries dropped as malformed.",
		}),
		batchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "condwatch_batches_processed_total",
			Help: "Sample batches processed to completion.",
		}),
		malformedLines: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "condwatch_malformed_lines_total",
			Help: "Batch lines that failed to decode entirely.",
		}),
		decimations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "condwatch_decimations_total",
			Help: "Derived-state updates fired by the decimation gate.",
		}),
		entitiesTracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "condwatch_entities_tracked",
			Help: "Entities currently held in the registry.",
		}),
	}

	p.registry.MustRegister(
		p.samplesIngested,
		p.samplesDropped,
		p.batchesTotal,
		p.malformedLines,
		p.decimations,
		p.entitiesTracked,
	)

	return p
}

func (p *Pipeline) ObserveBatch(accepted, dropped, decimations int) {
	p.batchesTotal.Inc()
	p.samplesIngested.Add(float64(accepted))
	p.samplesDropped.Add(float64(dropped))
	p.decimations.Add(float64(decimations))
}

func (p *Pipeline) ObserveMalformedLine() {
	p.malformedLines.Inc()
}

func (p *Pipeline) SetEntitiesTracked(n int) {
	p.entitiesTracked.Set(float64(n))
}

// Handler exposes the collectors for a stats listener.
func (p *Pipeline) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
