// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"log"

	"photofolio-be/internal/pkg/logger"
	"photofolio-be/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// CatalogInvalidateTopic carries notifications that the plan or feature
// catalog changed and cached copies must be dropped.
const CatalogInvalidateTopic = "CATALOG_INVALIDATE"

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains catalog invalidation messages published by the
// admin managers and flushes the in-memory catalog cache.
type consumerService struct {
	pubSub *gochannel.GoChannel
	cache  *memory.CatalogCache
	logger logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, cache *memory.CatalogCache, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub: pubSub,
		cache:  cache,
		logger: log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, CatalogInvalidateTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	cs.cache.Invalidate()
	cs.logger.Info("catalog", "Catalog cache invalidated", map[string]interface{}{
		"reason": string(msg.Payload),
	})
	msg.Ack()
}

// PublishCatalogInvalidate is a helper for writers that change the catalog.
func PublishCatalogInvalidate(pubSub *gochannel.GoChannel, reason string) {
	msg := message.NewMessage(watermill.NewUUID(), []byte(reason))
	if err := pubSub.Publish(CatalogInvalidateTopic, msg); err != nil {
		log.Printf("[WARN] Failed to publish catalog invalidation: %v", err)
	}
}
