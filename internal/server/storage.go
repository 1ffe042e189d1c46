package server

import (
	"fmt"

	"github.com/gofiber/storage/redis/v3"
)

// newRedisStorage connects to Redis. redis.New panics when the server is
// unreachable, so the panic is turned into an error here.
func newRedisStorage(url string) (store *redis.Storage, err error) {
	defer func() {
		if r := recover(); r != nil {
			store = nil
			err = fmt.Errorf("failed to connect to redis: %v", r)
		}
	}()
	return redis.New(redis.Config{URL: url}), nil
}
