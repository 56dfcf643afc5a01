package cache

import "context"

// TreeCache caches built hierarchy trees by root object and depth bound.
// GetTree returns (nil, nil) on a miss.
//
// Invalidate drops every cached tree at once. Any link or object mutation may
// reshape an unknown set of trees, so per-root invalidation would be wrong.
type TreeCache interface {
	// GetTree gets an encoded tree from the cache.
	GetTree(ctx context.Context, rootID int64, depth int) ([]byte, error)
	// SetTree puts an encoded tree into the cache.
	SetTree(ctx context.Context, rootID int64, depth int, data []byte) error
	// Invalidate drops all cached trees.
	Invalidate(ctx context.Context) error
}

var _ TreeCache = (*NopTreeCache)(nil)

// NopTreeCache is the cache used when no redis is configured: every read is
// a miss, every write succeeds.
type NopTreeCache struct {
}

func NewNopTreeCache() *NopTreeCache {
	return &NopTreeCache{}
}

func (n *NopTreeCache) GetTree(ctx context.Context, rootID int64, depth int) ([]byte, error) {
	return nil, nil
}

func (n *NopTreeCache) SetTree(ctx context.Context, rootID int64, depth int, data []byte) error {
	return nil
}

func (n *NopTreeCache) Invalidate(ctx context.Context) error {
	return nil
}
