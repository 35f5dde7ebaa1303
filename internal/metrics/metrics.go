// Package metrics содержит Prometheus-метрики консоли DataDrive.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequests количество запросов к бэкенду по ресурсу и HTTP-статусу ("error" для сетевых ошибок).
	APIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "datadrive",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "Backend API calls by resource and status.",
	}, []string{"resource", "status"})

	// APILatency длительность запросов к бэкенду.
	APILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "datadrive",
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "Backend API call latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"resource"})

	// TripStops завершённые через консоль поездки по способу оплаты.
	TripStops = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "datadrive",
		Subsystem: "trips",
		Name:      "stopped_total",
		Help:      "Trips stopped from the console by payment method.",
	}, []string{"payment_method"})

	// AmountDiscrepancies расхождения предварительной суммы с суммой, сохранённой бэкендом.
	AmountDiscrepancies = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "datadrive",
		Subsystem: "trips",
		Name:      "amount_discrepancies_total",
		Help:      "Stops where the previewed amount differed from the persisted one.",
	})

	// ForcedLogouts принудительные выходы из сессии (истёк или битый токен).
	ForcedLogouts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "datadrive",
		Subsystem: "session",
		Name:      "forced_logouts_total",
		Help:      "Sessions closed because the token expired or could not be decoded.",
	})
)
