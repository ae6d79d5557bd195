package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	AnalysesRun  Counter
	DefectsFound Counter
	SearchesRun  Counter

	HTTPRequests Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func NewPrometheusCounter(name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
	prometheus.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func New() *Counters {
	return &Counters{
		AnalysesRun: NewPrometheusCounter(
			"analyses_run_total",
			"Number of log analysis calls",
			[]string{"level"},
		),
		DefectsFound: NewPrometheusCounter(
			"defects_found_total",
			"Number of defects detected during analysis",
			[]string{"type", "severity"},
		),
		SearchesRun: NewPrometheusCounter(
			"searches_run_total",
			"Number of log search calls",
			[]string{"level"},
		),
		HTTPRequests: NewPrometheusCounter(
			"http_requests_total",
			"Number of HTTP API requests",
			[]string{"method", "status"},
		),
	}
}

// NewTestCounters registers into a throwaway registry so parallel tests do
// not collide on the default one.
func NewTestCounters() *Counters {
	reg := prometheus.NewRegistry()

	newCounter := func(name, help string, labels []string) *PrometheusCounter {
		c := &PrometheusCounter{
			counter: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: name,
				Help: help,
			}, labels),
		}
		reg.MustRegister(c.counter)
		return c
	}

	return &Counters{
		AnalysesRun:  newCounter("analyses_run_total", "Number of log analysis calls", []string{"level"}),
		DefectsFound: newCounter("defects_found_total", "Number of defects detected during analysis", []string{"type", "severity"}),
		SearchesRun:  newCounter("searches_run_total", "Number of log search calls", []string{"level"}),
		HTTPRequests: newCounter("http_requests_total", "Number of HTTP API requests", []string{"method", "status"}),
	}
}
