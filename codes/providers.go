package codes

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	resolverCacheSize       = 128
	resolverCacheExpiration = 5 * time.Minute
)

// NewResolver is the provider used by the DI graph: a mongo-backed
// repository wrapped with an expiring LRU cache.
func NewResolver(db *mongo.Database) (Resolver, error) {
	repo, err := NewRepository(db)
	if err != nil {
		return nil, err
	}

	return NewCachingResolver(resolverCacheSize, resolverCacheExpiration, repo)
}
