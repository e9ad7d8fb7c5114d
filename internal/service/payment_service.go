// FILE: internal/service/payment_service.go
// Stripe checkout for plan upgrades plus the webhook that activates the
// purchased plan and books referral commissions.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"photofolio-be/internal/config"
	"photofolio-be/internal/dto"
	"photofolio-be/internal/entity"
	"photofolio-be/internal/pkg/logger"
	"photofolio-be/internal/repository/specification"
	"photofolio-be/internal/repository/unitofwork"

	"photofolio-be/pkg/events"
	pktNats "photofolio-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

// commissionRate is the referrer's cut of the first payment.
const commissionRate = 0.10

type IPaymentService interface {
	CreateCheckout(ctx context.Context, userId uuid.UUID, req *dto.CreateCheckoutRequest) (*dto.CheckoutSessionResponse, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type paymentService struct {
	uowFactory     unitofwork.RepositoryFactory
	cfg            *config.Config
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewPaymentService(uowFactory unitofwork.RepositoryFactory, cfg *config.Config, eventPublisher *pktNats.Publisher, log logger.ILogger) IPaymentService {
	stripe.Key = cfg.Stripe.SecretKey

	return &paymentService{
		uowFactory:     uowFactory,
		cfg:            cfg,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *paymentService) CreateCheckout(ctx context.Context, userId uuid.UUID, req *dto.CreateCheckoutRequest) (*dto.CheckoutSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: req.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.IsActive {
		return nil, errors.New("plan not found")
	}
	if plan.StripePriceId == "" {
		return nil, errors.New("plan is not purchasable")
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		CustomerEmail: stripe.String(user.Email),
		SuccessURL:    stripe.String(s.cfg.Stripe.SuccessURL),
		CancelURL:     stripe.String(s.cfg.Stripe.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(plan.StripePriceId),
				Quantity: stripe.Int64(1),
			},
		},
		Params: stripe.Params{
			Context: ctx,
			Metadata: map[string]string{
				"user_id": user.Id.String(),
				"plan_id": plan.Id.String(),
			},
		},
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %v", err)
	}

	return &dto.CheckoutSessionResponse{
		SessionId:   sess.ID,
		CheckoutURL: sess.URL,
	}, nil
}

func (s *paymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEventWithTolerance(payload, signature, s.cfg.Stripe.WebhookSecret, 5*time.Minute)
	if err != nil {
		return fmt.Errorf("invalid webhook signature: %v", err)
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return fmt.Errorf("failed to parse checkout session: %v", err)
		}
		return s.handleCheckoutCompleted(ctx, string(event.ID), &sess)
	default:
		// Unhandled event types are acknowledged so Stripe stops retrying.
		return nil
	}
}

func (s *paymentService) handleCheckoutCompleted(ctx context.Context, eventId string, sess *stripe.CheckoutSession) error {
	userId, err := uuid.Parse(sess.Metadata["user_id"])
	if err != nil {
		return fmt.Errorf("checkout session missing user metadata")
	}
	planId, err := uuid.Parse(sess.Metadata["plan_id"])
	if err != nil {
		return fmt.Errorf("checkout session missing plan metadata")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found for checkout session")
	}

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return err
	}
	if plan == nil {
		return errors.New("plan not found for checkout session")
	}

	user.PlanId = &plan.Id
	user.UpdatedAt = time.Now()
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return err
	}

	if user.ReferredBy != nil {
		if err := s.bookCommission(ctx, uow, user, plan, eventId); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.logger.Info("payment", "Plan activated", map[string]interface{}{
		"user_id": user.Id.String(),
		"plan":    plan.Slug,
	})

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: "PLAN_UPGRADED",
			Data: map[string]interface{}{
				"user_id": user.Id,
				"plan_id": plan.Id,
				"slug":    plan.Slug,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish PLAN_UPGRADED event: %v\n", err)
		}
	}

	return nil
}

// bookCommission credits the referrer once per Stripe event. Webhook
// retries hit the idempotency check and fall through.
func (s *paymentService) bookCommission(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, plan *entity.Plan, eventId string) error {
	existing, err := uow.ReferralRepository().FindByStripeEvent(ctx, eventId)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	commission := &entity.ReferralCommission{
		Id:            uuid.New(),
		ReferrerId:    *user.ReferredBy,
		ReferredId:    user.Id,
		PlanId:        plan.Id,
		Amount:        plan.Price * commissionRate,
		Currency:      "usd",
		Status:        entity.CommissionStatusPending,
		StripeEventId: eventId,
		CreatedAt:     time.Now(),
	}

	return uow.ReferralRepository().CreateCommission(ctx, commission)
}
