package service

// OrderMetrics records business counters for the order workflow.
type OrderMetrics interface {
	OrderCreated(paymentMethod string, total float64)
	OrderRejected(reason string)
}

// CacheMetrics counts read-through cache hits and misses.
type CacheMetrics interface {
	CacheLookup(hit bool)
}
