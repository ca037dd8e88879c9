package rdx

import (
	"time"

	"wanderlog/config"
	"wanderlog/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func Init() {
	Conn = redis.NewClient(&redis.Options{
		Addr: config.RedisAddr,
	})
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func SetWithExpiry(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func RdxDel(key string) error {
	return Conn.Del(globals.Ctx, key).Err()
}

// RdxDelPattern removes every key matching the given glob pattern.
func RdxDelPattern(pattern string) error {
	keys, err := Conn.Keys(globals.Ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return Conn.Del(globals.Ctx, keys...).Err()
}
