package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Claim outcomes.
const (
	OutcomeConfirmed = "confirmed"
	OutcomeReverted  = "reverted"
	OutcomeFailed    = "failed"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests handled by the API service",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	chainOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chain_operation_duration_seconds",
		Help:    "Time spent talking to the blockchain node",
		Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15, 30, 60, 120},
	}, []string{"operation"})

	claimsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "certificate_claims_total",
		Help: "Certificate claims relayed to the contract, by outcome",
	}, []string{"outcome"})

	dbOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "db_operation_duration_seconds",
		Help:    "Time spent executing database operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	redisOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "redis_operation_duration_seconds",
		Help:    "Time spent executing redis operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	kafkaOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kafka_operation_duration_seconds",
		Help:    "Time spent sending data to Kafka",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	consumerProcessDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "consumer_process_duration_seconds",
		Help:    "Time spent processing claim events in the consumer service",
		Buckets: prometheus.DefBuckets,
	}, []string{"step"})
)

// ObserveHTTPRequest tracks the handling time of HTTP requests.
func ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	httpRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// ObserveChainOperation tracks node round trips started at start.
func ObserveChainOperation(operation string, start time.Time) {
	chainOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// IncClaim counts a finished claim.
func IncClaim(outcome string) {
	claimsTotal.WithLabelValues(outcome).Inc()
}

// ObserveDBOperation tracks database call duration.
func ObserveDBOperation(operation string, start time.Time) {
	dbOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// ObserveRedisOperation tracks redis call duration.
func ObserveRedisOperation(operation string, start time.Time) {
	redisOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// ObserveKafkaOperation tracks kafka call duration.
func ObserveKafkaOperation(operation string, start time.Time) {
	kafkaOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// ObserveConsumerProcessing tracks consumer processing stages.
func ObserveConsumerProcessing(step string, start time.Time) {
	consumerProcessDuration.WithLabelValues(step).Observe(time.Since(start).Seconds())
}
