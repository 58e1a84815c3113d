// Package metrics provides Prometheus metrics for the news API.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by route and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newsapi",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration measures HTTP request latency.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "newsapi",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ArticleListings counts article listing queries by sort key and direction.
	ArticleListings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newsapi",
			Name:      "article_listings_total",
			Help:      "Total number of article listing queries",
		},
		[]string{"sort_by", "order"},
	)

	// VotesTotal counts vote updates by entity.
	VotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newsapi",
			Name:      "votes_total",
			Help:      "Total number of vote updates",
		},
		[]string{"entity"},
	)
)

// RecordRequest records a completed HTTP request.
func RecordRequest(method, route string, status int, seconds float64) {
	if route == "" {
		route = "unmatched"
	}
	RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	RequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// RecordListing records an article listing query.
func RecordListing(sortBy, order string) {
	ArticleListings.WithLabelValues(sortBy, order).Inc()
}

// RecordVote records a vote update on an article or comment.
func RecordVote(entity string) {
	VotesTotal.WithLabelValues(entity).Inc()
}
