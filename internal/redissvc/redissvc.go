// Package redissvc wraps the redis client behind the small cache surface the
// dashboard needs. A nil *RedisService is valid and behaves as cache-off.
package redissvc

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisService(rdb *redis.Client, ctx context.Context) *RedisService {
	return &RedisService{
		rdb: rdb,
		ctx: ctx,
	}
}

func (a *RedisService) Rdb() *redis.Client {
	if a == nil {
		return nil
	}
	return a.rdb
}

func (a *RedisService) Ctx() context.Context {
	if a == nil {
		return context.Background()
	}
	return a.ctx
}

// GetJSON fetches a cached JSON payload. The second return is false on a
// cache miss, a disabled cache, or any redis error; the cache is best-effort
// and failures never surface to the caller.
func (a *RedisService) GetJSON(key string) ([]byte, bool) {
	if a == nil || a.rdb == nil {
		return nil, false
	}
	data, err := a.rdb.Get(a.ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetJSON stores a JSON payload with a TTL, best-effort.
func (a *RedisService) SetJSON(key string, data []byte, ttl time.Duration) {
	if a == nil || a.rdb == nil {
		return
	}
	_ = a.rdb.Set(a.ctx, key, data, ttl).Err()
}

// PushLog appends an entry to a redis list, best-effort.
func (a *RedisService) PushLog(key string, data []byte) {
	if a == nil || a.rdb == nil {
		return
	}
	_ = a.rdb.RPush(a.ctx, key, data).Err()
}

// DrainLog returns every entry of a list and deletes it.
func (a *RedisService) DrainLog(key string) []string {
	if a == nil || a.rdb == nil {
		return nil
	}
	entries, err := a.rdb.LRange(a.ctx, key, 0, -1).Result()
	if err != nil {
		return nil
	}
	_ = a.rdb.Del(a.ctx, key).Err()
	return entries
}
