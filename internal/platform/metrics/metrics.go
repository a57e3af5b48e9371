package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeOK          = "ok"
	OutcomeClientError = "client_error"
	OutcomeServerError = "server_error"
	OutcomeTransport   = "transport_error"
)

// Collector counts backend calls made by the desk.
type Collector struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hrdesk",
			Name:      "backend_requests_total",
			Help:      "Backend calls by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hrdesk",
			Name:      "backend_request_duration_seconds",
			Help:      "Backend call latency by endpoint.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
	c.registry.MustRegister(c.requests, c.duration)
	return c
}

// Record files one call. A status of 0 means the request never got a response.
func (c *Collector) Record(endpoint string, status int, duration time.Duration) {
	if c == nil {
		return
	}
	c.requests.WithLabelValues(endpoint, Outcome(status)).Inc()
	c.duration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func Outcome(status int) string {
	switch {
	case status == 0:
		return OutcomeTransport
	case status >= 500:
		return OutcomeServerError
	case status >= 400:
		return OutcomeClientError
	}
	return OutcomeOK
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Snapshot flattens the counters into "endpoint/outcome" keys plus per
// endpoint average latency in milliseconds.
func (c *Collector) Snapshot() map[string]any {
	out := map[string]any{}
	families, err := c.registry.Gather()
	if err != nil {
		return out
	}

	var total uint64
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			switch family.GetName() {
			case "hrdesk_backend_requests_total":
				count := uint64(metric.GetCounter().GetValue())
				total += count
				out[labels["endpoint"]+"/"+labels["outcome"]] = count
			case "hrdesk_backend_request_duration_seconds":
				hist := metric.GetHistogram()
				avg := float64(0)
				if hist.GetSampleCount() > 0 {
					avg = hist.GetSampleSum() / float64(hist.GetSampleCount()) * 1000
				}
				out[labels["endpoint"]+"/avgDurationMs"] = strconv.FormatFloat(avg, 'f', 1, 64)
			}
		}
	}
	out["requestsTotal"] = total
	return out
}
