package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Lookups        *prometheus.CounterVec
	APIErrors      *prometheus.CounterVec
	RequestSeconds *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Lookups: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "weather_lookups_total",
			Help: "Total number of weather lookups requested by the user.",
		}, []string{"operation", "status"}),
		APIErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "weather_api_errors_total",
			Help: "Total number of errors received from the weather API.",
		}, []string{"endpoint"}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "weather_api_request_duration_seconds",
			Help:    "Duration of requests to the weather API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}
