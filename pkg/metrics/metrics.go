package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_cache_operations_total",
			Help: "Response cache slot operations",
		},
		[]string{"slot", "op"}, // hit|miss|expired|forced|invalidated
	)
	LookupOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookup_operations_total",
			Help: "Debounced/rate-limited lookup outcomes",
		},
		[]string{"kind", "op"}, // kind: search|account; op: fired|superseded|delayed|failed
	)
)

var (
	MutationOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "optimistic_mutations_total",
			Help: "Optimistic wishlist/cart mutations by outcome",
		},
		[]string{"action", "outcome"}, // outcome: ok|noop|error
	)
	CheckoutBlocked = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_blocked_total",
			Help: "Checkout attempts refused while the cart needs fixing",
		},
	)
	SessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sessions_active",
			Help: "Number of live session stores",
		},
	)
)

func MustRegister() {
	prometheus.MustRegister(CacheOps, LookupOps, MutationOps, CheckoutBlocked, SessionsActive)
}
