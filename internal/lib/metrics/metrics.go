package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "repairdesk"

var (
	StepTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "step_transitions_total",
		Help:      "Step navigation attempts by workflow and result (advanced, refused, retreated).",
	}, []string{"workflow", "result"})

	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Submission attempts by workflow and outcome (confirmed, failed, invalid, ignored).",
	}, []string{"workflow", "outcome"})

	CatalogFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_fallbacks_total",
		Help:      "Catalog listings served from built-in defaults after a remote failure.",
	}, []string{"catalog"})
)

const (
	ResultAdvanced  = "advanced"
	ResultRefused   = "refused"
	ResultRetreated = "retreated"

	OutcomeConfirmed = "confirmed"
	OutcomeFailed    = "failed"
	OutcomeInvalid   = "invalid"
	OutcomeIgnored   = "ignored"
)
