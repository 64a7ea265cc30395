package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Update outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeIgnored = "ignored"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

var (
	// UpdatesTotal counts inbound webhook updates by how they were handled.
	UpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chatbot_webhook",
		Name:      "updates_total",
		Help:      "Inbound webhook updates by outcome.",
	}, []string{"outcome"})

	// RepliesTotal counts replies by the command that produced them.
	RepliesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chatbot_webhook",
		Name:      "replies_total",
		Help:      "Replies computed by command.",
	}, []string{"command"})
)
