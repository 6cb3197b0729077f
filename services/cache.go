package services

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"

	"saarthi/trip"
)

const hotelCacheKeyFormatV1 = "hotel_lookup_v1:"

// HotelCache keeps normalized hotel listings in Redis, keyed by
// destination. A nil cache is valid and caches nothing, so the service
// runs fine without Redis.
type HotelCache struct {
	client *redis.Client
	ttl    time.Duration
}

// InitHotelCache connects to Redis when REDIS_ADDR is set. A failed ping
// disables caching rather than failing startup.
func InitHotelCache() *HotelCache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️  REDIS_ADDR not set, hotel lookups will not be cached")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  Redis unreachable (%v), hotel lookups will not be cached", err)
		return nil
	}

	log.Println("✅ Hotel cache connected:", addr)
	return NewHotelCache(client, 10*time.Minute)
}

func NewHotelCache(client *redis.Client, ttl time.Duration) *HotelCache {
	return &HotelCache{client: client, ttl: ttl}
}

func (c *HotelCache) Get(ctx context.Context, destination string) (trip.HotelListing, bool) {
	if c == nil || c.client == nil {
		return trip.HotelListing{}, false
	}

	data, err := c.client.Get(ctx, hotelCacheKeyFormatV1+destination).Result()
	if err != nil {
		return trip.HotelListing{}, false
	}

	var listing trip.HotelListing
	if err := json.Unmarshal([]byte(data), &listing); err != nil {
		return trip.HotelListing{}, false
	}
	return listing, true
}

func (c *HotelCache) Set(ctx context.Context, destination string, listing trip.HotelListing) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(listing)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, hotelCacheKeyFormatV1+destination, data, c.ttl).Err(); err != nil {
		log.Printf("⚠️  Failed to cache hotel listing for %s: %v", destination, err)
	}
}
