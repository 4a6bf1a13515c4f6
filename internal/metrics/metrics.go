package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Namespace + "_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_login_attempts_total",
			Help: "Total number of admin login attempts by result",
		},
		[]string{"result"},
	)

	SessionVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_session_verifications_total",
			Help: "Total number of session cookie checks by outcome",
		},
		[]string{"valid"},
	)

	PhotoUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_photo_uploads_total",
			Help: "Total number of photo uploads by result",
		},
		[]string{"result"},
	)

	UploadBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: Namespace + "_upload_bytes_total",
			Help: "Total bytes written to the object store",
		},
	)

	BlobOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Namespace + "_blob_operation_duration_seconds",
			Help:    "Time to complete object store operations",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation", "result"},
	)

	ThrottleErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_throttle_errors_total",
			Help: "Total number of login throttle backend errors",
		},
		[]string{"throttle_type"},
	)

	ThrottleTrackedKeys = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: Namespace + "_throttle_tracked_keys",
			Help: "Current number of clients tracked by the login throttle",
		},
		[]string{"throttle_type"},
	)

	PhotosStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: Namespace + "_photos",
			Help: "Number of photos in the photo store",
		},
	)

	LoginAttemptsPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: Namespace + "_login_attempts_pruned_total",
			Help: "Total number of login audit entries removed by retention",
		},
	)

	JobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_job_runs_total",
			Help: "Total number of background job runs by job and result",
		},
		[]string{"job", "result"},
	)
)
