package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Metric naming and registration style grounded on foxcpp-maddy's
// internal/endpoint/smtp/metrics.go: package-level vars, init-time
// MustRegister, a "tmlconvert" namespace in place of maddy's.
var (
	parseCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tmlconvert",
		Subsystem: "serve",
		Name:      "requests_total",
		Help:      "Requests served by the serve subcommand",
	})
	parseDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "tmlconvert",
		Subsystem: "serve",
		Name:      "request_duration_seconds",
		Help:      "Time to flatten and serve a document",
	})
	recompileFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tmlconvert",
		Subsystem: "serve",
		Name:      "recompile_failures_total",
		Help:      "Requests served while the watched document had a sticky parse error",
	})
)

func init() {
	prometheus.MustRegister(parseCounter, parseDuration, recompileFailures)
}

// startMetricsServer exposes the registered metrics on addr's /metrics
// endpoint. It runs in the background; a failure to bind is logged rather
// than fatal, since metrics are optional to the serve subcommand's purpose.
func startMetricsServer(logger *zap.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Warn("metrics server stopped", zap.Error(err))
		}
	}()
	logger.Info("serving metrics", zap.String("addr", addr))
}
