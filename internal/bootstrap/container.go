package bootstrap

import (
	"context"
	"log"

	"photofolio-be/internal/config"
	"photofolio-be/internal/controller"
	"photofolio-be/internal/pkg/cryptoutils"
	"photofolio-be/internal/pkg/logger"
	"photofolio-be/internal/pkg/mailer"
	"photofolio-be/internal/repository/memory"
	"photofolio-be/internal/repository/unitofwork"
	"photofolio-be/internal/service"
	"photofolio-be/internal/websocket"
	adminEvents "photofolio-be/pkg/admin/events"
	"photofolio-be/pkg/events"

	pktNats "photofolio-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController        controller.AuthController
	OAuthController       controller.OAuthController
	UserController        controller.UserController
	EntitlementController controller.EntitlementController
	PlanController        controller.PlanController
	GalleryController     controller.GalleryController
	ScenaController       controller.ScenaController
	BookingController     controller.BookingController
	StorageController     controller.StorageController
	PaymentController     controller.PaymentController
	ReferralController    controller.ReferralController
	AdminController       controller.AdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	cipher, err := cryptoutils.NewCipher(cfg.Security.EncryptionKey)
	if err != nil {
		log.Fatalf("[FATAL] Invalid token encryption key: %v", err)
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/board.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Catalog cache, shared by the resolver and the invalidation consumer
	catalogCache := memory.NewCatalogCache()

	// Catalog edits on other instances arrive over NATS. The local edits
	// go through the watermill pipe below.
	if natsSub != nil {
		err := natsSub.Subscribe("events.CATALOG_CHANGED", "catalog-invalidator", func(ctx context.Context, evt events.Event) error {
			catalogCache.Invalidate()
			return nil
		})
		if err != nil {
			log.Printf("[WARN] Failed to subscribe to catalog events: %v", err)
		}
	}

	// 3. Services
	consumerService := service.NewConsumerService(pubSub, catalogCache, sysLogger)

	entitlementService := service.NewEntitlementService(uowFactory, catalogCache, sysLogger)
	userService := service.NewUserService(uowFactory)
	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	oauthService := service.NewOAuthService(uowFactory, cfg, sysLogger)
	planService := service.NewPlanService(uowFactory)

	storageService := service.NewStorageService(uowFactory, cfg, cipher, sysLogger)
	galleryService := service.NewGalleryService(uowFactory, entitlementService)
	scenaService := service.NewScenaService(uowFactory, entitlementService, wsHub)
	bookingService := service.NewBookingService(uowFactory, entitlementService, storageService, emailService, sysLogger)
	paymentService := service.NewPaymentService(uowFactory, cfg, natsPub, sysLogger)
	referralService := service.NewReferralService(uowFactory, cfg)

	// Admin Domain Components
	adminEventPublisher := adminEvents.NewNatsPublisher(natsPub, sysLogger)
	adminService := service.NewAdminService(uowFactory, adminEventPublisher, pubSub, sysLogger)

	// 4. Controllers
	return &Container{
		AuthController:        controller.NewAuthController(authService),
		OAuthController:       controller.NewOAuthController(oauthService, cfg),
		UserController:        controller.NewUserController(userService),
		EntitlementController: controller.NewEntitlementController(entitlementService),
		PlanController:        controller.NewPlanController(planService),
		GalleryController:     controller.NewGalleryController(galleryService),
		ScenaController:       controller.NewScenaController(scenaService, wsHub, wsLogger),
		BookingController:     controller.NewBookingController(bookingService),
		StorageController:     controller.NewStorageController(storageService, cfg),
		PaymentController:     controller.NewPaymentController(paymentService),
		ReferralController:    controller.NewReferralController(referralService),
		AdminController:       controller.NewAdminController(adminService, uowFactory),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
	}
}
