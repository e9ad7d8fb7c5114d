package events

import (
	"context"
	"time"

	"photofolio-be/internal/pkg/logger"
	pkgEvents "photofolio-be/pkg/events"
	pktNats "photofolio-be/pkg/nats"

	"github.com/google/uuid"
)

// Publisher abstracts event publishing for admin operations
type Publisher interface {
	PublishOverrideChanged(ctx context.Context, userId, featureId uuid.UUID, featureKey, action, adminEmail string)
	PublishCatalogChanged(ctx context.Context, entityType string, entityId uuid.UUID, action string)
	PublishUserPlanChanged(ctx context.Context, userId uuid.UUID, planId *uuid.UUID, adminEmail string)
}

// NatsPublisher implements Publisher using NATS
type NatsPublisher struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

func NewNatsPublisher(publisher *pktNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

// PublishOverrideChanged emits OVERRIDE_CHANGED after an override write.
func (p *NatsPublisher) PublishOverrideChanged(ctx context.Context, userId, featureId uuid.UUID, featureKey, action, adminEmail string) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type: "OVERRIDE_CHANGED",
		Data: map[string]interface{}{
			"user_id":     userId,
			"feature_id":  featureId,
			"feature_key": featureKey,
			"action":      action,
			"admin_email": adminEmail,
			"entity_type": "feature_override",
			"entity_id":   userId.String(),
		},
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("ADMIN", "Failed to publish OVERRIDE_CHANGED event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishCatalogChanged emits CATALOG_CHANGED when a plan or feature is
// created, updated or deleted.
func (p *NatsPublisher) PublishCatalogChanged(ctx context.Context, entityType string, entityId uuid.UUID, action string) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type: "CATALOG_CHANGED",
		Data: map[string]interface{}{
			"entity_type": entityType,
			"entity_id":   entityId.String(),
			"action":      action,
		},
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("ADMIN", "Failed to publish CATALOG_CHANGED event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishUserPlanChanged emits USER_PLAN_CHANGED for manual plan moves.
func (p *NatsPublisher) PublishUserPlanChanged(ctx context.Context, userId uuid.UUID, planId *uuid.UUID, adminEmail string) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type: "USER_PLAN_CHANGED",
		Data: map[string]interface{}{
			"user_id":     userId,
			"plan_id":     planId,
			"admin_email": adminEmail,
			"entity_type": "user",
			"entity_id":   userId.String(),
		},
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("ADMIN", "Failed to publish USER_PLAN_CHANGED event", map[string]interface{}{"error": err.Error()})
	}
}
