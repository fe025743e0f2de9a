package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce            sync.Once
	dashboardRequestsTotal  *prometheus.CounterVec
	dashboardLatencySeconds *prometheus.HistogramVec
	teacherAPIRequestsTotal *prometheus.CounterVec
	teacherAPIDuration      *prometheus.HistogramVec
)

// RegisterMetrics initialises the Prometheus collectors used by the dashboard.
func RegisterMetrics() {
	registerOnce.Do(func() {
		dashboardRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_requests_total",
			Help: "Total number of dashboard page requests served.",
		}, []string{"method", "route", "status"})

		dashboardLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashboard_latency_seconds",
			Help:    "Latency distribution for dashboard page requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0},
		}, []string{"method", "route"})

		teacherAPIRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "teacher_api_requests_total",
			Help: "Total number of calls made to the quiz backend teacher API.",
		}, []string{"operation", "outcome"})

		teacherAPIDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "teacher_api_duration_seconds",
			Help:    "Duration of calls made to the quiz backend teacher API.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0},
		}, []string{"operation"})

		prometheus.MustRegister(dashboardRequestsTotal, dashboardLatencySeconds, teacherAPIRequestsTotal, teacherAPIDuration)
	})
}

// DashboardRequests exposes the counter for dashboard page requests.
func DashboardRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return dashboardRequestsTotal
}

// DashboardLatency exposes the latency histogram for dashboard page requests.
func DashboardLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return dashboardLatencySeconds
}

// TeacherAPIRequests exposes the counter for backend calls, labelled by outcome.
func TeacherAPIRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return teacherAPIRequestsTotal
}

// TeacherAPIDuration exposes the duration histogram for backend calls.
func TeacherAPIDuration() *prometheus.HistogramVec {
	RegisterMetrics()
	return teacherAPIDuration
}
