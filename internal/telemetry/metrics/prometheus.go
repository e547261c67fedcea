package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus creates the service registry: go runtime and process
// collectors, a constant gymload_build_info series labelled with the running
// version, and any extra collectors (the db pool one in production).
func SetupPrometheus(version string, extra ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   "gymload",
			Name:        "build_info",
			Help:        "Always 1, labelled with the running service version.",
			ConstLabels: prometheus.Labels{"version": versionLabel(version)},
		}, func() float64 { return 1 }),
	)
	if len(extra) > 0 {
		promRegistry.MustRegister(extra...)
	}

	return promRegistry
}

func versionLabel(version string) string {
	if version == "" {
		return "unknown"
	}
	return version
}
