// Package observability provides logging, metrics, and tracing.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EntityMutations counts successful mutations by entity and operation.
	EntityMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogql_entity_mutations_total",
		Help: "Total number of successful entity mutations by entity and operation",
	}, []string{"entity", "operation"})

	// CascadeDeletes counts entities removed as a side effect of deleting
	// their parent, by the entity kind that was swept away.
	CascadeDeletes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogql_cascade_deletes_total",
		Help: "Total number of entities removed by cascading deletes",
	}, []string{"entity"})

	// MutationFailures counts precondition failures by error code.
	MutationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogql_mutation_failures_total",
		Help: "Total number of rejected mutations by error code",
	}, []string{"code"})
)
