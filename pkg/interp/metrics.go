package interp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Specialization metrics. Fire-and-forget: node correctness never
// depends on them, and increments are the only shared-state touches on
// the dispatch path.
var (
	specializationChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "krait_specialization_changes_total",
		Help: "Shape-change notifications reported by dispatch nodes",
	}, []string{"node"})

	raiseDispatch = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "krait_raise_dispatch_total",
		Help: "Raise statements dispatched, by syntactic form",
	}, []string{"form"})

	newCheck = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "krait_new_check_total",
		Help: "Construction-safety checks executed, by outcome",
	}, []string{"outcome"})
)

func observeSpecialization(node string) {
	specializationChanges.WithLabelValues(node).Inc()
}

func observeRaiseForm(form string) {
	raiseDispatch.WithLabelValues(form).Inc()
}

func observeNewCheck(outcome string) {
	newCheck.WithLabelValues(outcome).Inc()
}
