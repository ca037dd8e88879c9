package mq

import (
	"context"
	"encoding/json"
	"log"

	"wanderlog/rdx"
)

// TripEvent describes a trip mutation published on the trip-events
// channel. The cache worker uses it to drop stale redis entries.
type TripEvent struct {
	Method string `json:"method"` // created, updated, deleted, place-added, ...
	TripID string `json:"trip_id"`
}

// Emit publishes a trip event to Redis. Failures are logged and dropped;
// a lost invalidation only means a cache entry expires on its own TTL.
func Emit(ctx context.Context, event TripEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, "trip-events", data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event to Redis: %v", err)
	}
}

// StartCacheWorker subscribes to trip events and invalidates the cached
// reads touching the mutated trip.
func StartCacheWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, "trip-events")
	ch := sub.Channel()

	log.Println("[CacheWorker] Listening for trip events...")

	for msg := range ch {
		var event TripEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[CacheWorker] Failed to parse event: %v", err)
			continue
		}

		if event.TripID != "" {
			if err := rdx.RdxDel("trip:places:" + event.TripID); err != nil {
				log.Printf("[CacheWorker] Failed to drop places cache for %s: %v", event.TripID, err)
			}
		}
		if err := rdx.RdxDelPattern("trips:search:*"); err != nil {
			log.Printf("[CacheWorker] Failed to drop search cache: %v", err)
		}
	}
}
