package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/emrgen/strata/internal/compress"
	redis "github.com/redis/go-redis/v9"
)

const (
	graphGenerationKey = "strata:graph:gen"
	treeTTL            = time.Hour
)

func treeKey(generation int64, rootID int64, depth int) string {
	return fmt.Sprintf("strata:tree:%d:%d:%d", generation, rootID, depth)
}

var _ TreeCache = (*RedisTreeCache)(nil)

// RedisTreeCache keeps compressed trees in redis. Cache keys embed a
// graph generation counter; bumping the counter on any mutation retires all
// older entries without scanning for them. Retired entries age out via TTL.
type RedisTreeCache struct {
	client  *redis.Client
	encoder compress.Codec
}

func NewRedisTreeCache(addr, password string, db int, encoder compress.Codec) *RedisTreeCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisTreeCache{client: client, encoder: encoder}
}

func (r *RedisTreeCache) GetTree(ctx context.Context, rootID int64, depth int) ([]byte, error) {
	generation, err := r.generation(ctx)
	if err != nil {
		return nil, err
	}

	res := r.client.Get(ctx, treeKey(generation, rootID, depth))
	if res.Err() != nil {
		if errors.Is(res.Err(), redis.Nil) {
			return nil, nil
		}
		return nil, res.Err()
	}

	buf, err := res.Bytes()
	if err != nil {
		return nil, err
	}

	return r.encoder.Decode(buf)
}

func (r *RedisTreeCache) SetTree(ctx context.Context, rootID int64, depth int, data []byte) error {
	generation, err := r.generation(ctx)
	if err != nil {
		return err
	}

	encoded, err := r.encoder.Encode(data)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, treeKey(generation, rootID, depth), encoded, treeTTL).Err()
}

func (r *RedisTreeCache) Invalidate(ctx context.Context) error {
	return r.client.Incr(ctx, graphGenerationKey).Err()
}

func (r *RedisTreeCache) generation(ctx context.Context) (int64, error) {
	res := r.client.Get(ctx, graphGenerationKey)
	if res.Err() != nil {
		if errors.Is(res.Err(), redis.Nil) {
			return 0, nil
		}
		return 0, res.Err()
	}

	return strconv.ParseInt(res.Val(), 10, 64)
}
