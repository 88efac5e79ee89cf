package lib

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func GetRedisClient() *redis.Client {
	if redisClient != nil {
		return redisClient
	}
	redisHost := os.Getenv("REDIS_HOST")
	opt, err := redis.ParseURL(redisHost)
	if err != nil {
		log.Printf("[redis] Error parsing connection string: %s\n", err.Error())
		return nil
	}
	rdb := redis.NewClient(opt)
	redisClient = rdb
	return rdb
}

// NewRedisClient Replace redis instance with custom client implementation
func NewRedisClient(c *redis.Client) *redis.Client {
	redisClient = c
	return redisClient
}

// AcquireListingLock serializes booking creation for a listing across
// worker processes. Best effort: when redis is not configured the caller
// proceeds and relies on the in-transaction overlap check alone.
func AcquireListingLock(listingId uint, ttl time.Duration) (func(), bool) {
	rdb := GetRedisClient()
	noop := func() {}
	if rdb == nil {
		return noop, true
	}
	key := fmt.Sprintf("listing:%d:booking_lock", listingId)
	ok, err := rdb.SetNX(context.Background(), key, "1", ttl).Result()
	if err != nil {
		log.Printf("[redis] Error acquiring lock for %s: %s\n", key, err.Error())
		return noop, true
	}
	if !ok {
		return noop, false
	}
	release := func() {
		if err := rdb.Del(context.Background(), key).Err(); err != nil {
			log.Printf("[redis] Error releasing lock for %s: %s\n", key, err.Error())
		}
	}
	return release, true
}
