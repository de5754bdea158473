// Package metrics provides Prometheus instrumentation for rentaldeploy.
//
// Deployment metrics (seeded entities, step outcomes, readiness) are
// registered on two registries: DefaultRegistry, scraped from GET /metrics by
// the status server, and a deploy-only registry that Push sends to a
// Pushgateway at the end of a one-shot run.
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "rentaldeploy"

// Seed outcomes.
const (
	OutcomeCreated  = "created"
	OutcomeExisting = "existing"
	OutcomeFailed   = "failed"
)

var (
	// SeedEntities counts catalog entries by entity kind and outcome.
	SeedEntities = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "seed",
			Name:      "entities_total",
			Help:      "Catalog entries processed, by entity and outcome.",
		},
		[]string{"entity", "outcome"}, // outcome: created | existing | failed
	)

	// SeedDroppedLinks counts equipment whose brand system was missing.
	SeedDroppedLinks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "seed",
		Name:      "dropped_links_total",
		Help:      "Equipment to brand system links skipped because the brand system did not exist.",
	})

	// StepDuration tracks how long each pipeline step takes.
	StepDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Duration of deployment pipeline steps in seconds.",
			Buckets:   []float64{.01, .05, .1, .5, 1, 5, 15, 60},
		},
		[]string{"step"},
	)

	// Steps counts pipeline steps by final status.
	Steps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Deployment pipeline steps run, by status.",
		},
		[]string{"step", "status"}, // status: success | failed
	)

	// Ready is 1 when the last status check found the system usable.
	Ready = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ready",
		Help:      "1 when at least one admin and one piece of equipment exist.",
	})

	// DBQueryDuration tracks ORM query latency.
	DBQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Duration of database queries in seconds.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .5, 1},
		},
		[]string{"operation"}, // "query" | "create" | "update" | "delete" | "raw" | "row"
	)

	// RequestDuration tracks status server requests.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts status server requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
)

// DefaultRegistry is the registry served on /metrics.
var DefaultRegistry = prometheus.NewRegistry()

// deployRegistry holds only what a one-shot run pushes.
var deployRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	deploy := []prometheus.Collector{SeedEntities, SeedDroppedLinks, StepDuration, Steps, Ready, DBQueryDuration}
	DefaultRegistry.MustRegister(deploy...)
	DefaultRegistry.MustRegister(RequestDuration, RequestTotal)
	deployRegistry.MustRegister(deploy...)
}

// RecordSeed counts one processed catalog entry.
func RecordSeed(entity, outcome string) {
	SeedEntities.WithLabelValues(entity, outcome).Inc()
}

// RecordStep records a pipeline step result.
func RecordStep(step string, ok bool, took time.Duration) {
	status := "success"
	if !ok {
		status = "failed"
	}
	Steps.WithLabelValues(step, status).Inc()
	StepDuration.WithLabelValues(step).Observe(took.Seconds())
}

// SetReady mirrors a readiness verdict.
func SetReady(ready bool) {
	if ready {
		Ready.Set(1)
		return
	}
	Ready.Set(0)
}

// ObserveDBQuery records a DB query duration:
//
//	defer metrics.ObserveDBQuery("query", time.Now())
func ObserveDBQuery(operation string, start time.Time) {
	DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Push sends the deployment metrics to a Prometheus Pushgateway, grouped
// by run ID. Nothing happens when url is empty.
func Push(ctx context.Context, url, job, runID string) error {
	if url == "" {
		return nil
	}
	p := push.New(url, job).Gatherer(deployRegistry)
	if runID != "" {
		p = p.Grouping("run_id", runID)
	}
	if err := p.PushContext(ctx); err != nil {
		return fmt.Errorf("metrics: push to %s: %w", url, err)
	}
	return nil
}

// responseRecorder wraps http.ResponseWriter to capture the status code.
type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records duration and count for every request, labelled with
// the chi route pattern when there is one.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rr, r)

			path := r.URL.Path
			if rc := chi.RouteContext(r.Context()); rc != nil {
				if p := rc.RoutePattern(); p != "" {
					path = p
				}
			}

			status := strconv.Itoa(rr.status)
			RequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
			RequestTotal.WithLabelValues(r.Method, path, status).Inc()
		})
	}
}

// Handler exposes DefaultRegistry. Mount it on GET /metrics.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	return h.ServeHTTP
}
