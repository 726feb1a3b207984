package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"rentbill.app/billing/model"
)

const (
	// completedExpiry bounds how long a stored response can be replayed.
	completedExpiry = 24 * time.Hour
	// processingExpiry releases the key of a request that never finished.
	processingExpiry = 5 * time.Minute
)

var IdempotencyCluster = cache.NewCluster("rentbill-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// IdempotencyCache holds one entry per request path and client key.
var IdempotencyCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	IdempotencyCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(completedExpiry),
	},
)
