package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/kawaf/petcafe-service/internal/cache"
	"github.com/kawaf/petcafe-service/internal/events"
)

// StartCacheWorker subscribes cache invalidation to resource mutation
// events so public listings never serve stale data after a write.
func StartCacheWorker(dispatcher events.Dispatcher, listings *cache.ListingCache, logger *zap.Logger) {
	if dispatcher == nil || listings == nil {
		return
	}

	invalidate := func(key string) events.EventHandler {
		return func(ctx context.Context, event events.Event) error {
			listings.Invalidate(ctx, key)
			logger.Debug("listing cache invalidated",
				zap.String("key", key),
				zap.String("event_id", event.ID),
				zap.String("mutation", string(event.Mutation)),
			)
			return nil
		}
	}

	dispatcher.Subscribe(events.EventAnimalChanged, invalidate(cache.KeyPublicAnimals))
	dispatcher.Subscribe(events.EventMenuItemChanged, invalidate(cache.KeyPublicMenuItems))
	dispatcher.Subscribe(events.EventEventChanged, invalidate(cache.KeyPublicEvents))
}
