package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewRegistry returns a registry with the runtime collectors, a constant
// workouts_build_version gauge labeled with version, and the given extra collectors.
func NewRegistry(version string, extra ...prometheus.Collector) *prometheus.Registry {
	if version == "" {
		version = "unknown"
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: "workouts"}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   "workouts",
			Name:        "build_version",
			Help:        "Always 1, labeled with the running version",
			ConstLabels: prometheus.Labels{"version": version},
		}, func() float64 { return 1 }),
	)
	for _, c := range extra {
		if c != nil {
			reg.MustRegister(c)
		}
	}

	return reg
}
