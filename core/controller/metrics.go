package controller

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeValidation = "validation"
	outcomeStale      = "stale"
)

var searchOutcomes = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "recipefinder_search_outcomes_total",
		Help: "Total number of recipe searches by outcome",
	},
	[]string{"outcome"},
)

func recordOutcome(outcome string) {
	searchOutcomes.WithLabelValues(outcome).Inc()
}
