package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UsersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "users_created_total",
		Help: "Total number of users created",
	})

	ItemsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "items_created_total",
		Help: "Total number of items created",
	})

	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders created",
	})

	OrdersFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_failed_total",
		Help: "Total number of failed order creations",
	}, []string{"reason"})

	ItemCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "item_cache_hits_total",
		Help: "Total number of item lookups served from cache",
	})

	ItemCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "item_cache_misses_total",
		Help: "Total number of item lookups that missed the cache",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
