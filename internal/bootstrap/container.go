package bootstrap

import (
	"context"
	"log"

	"fintech-admin-be/internal/config"
	"fintech-admin-be/internal/controller"
	"fintech-admin-be/internal/handler"
	"fintech-admin-be/internal/pkg/logger"
	"fintech-admin-be/internal/pkg/mailer"
	"fintech-admin-be/internal/repository/fallback"
	"fintech-admin-be/internal/repository/unitofwork"
	"fintech-admin-be/internal/service"
	"fintech-admin-be/internal/websocket"
	"fintech-admin-be/pkg/database"

	pktNats "fintech-admin-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController        controller.IAuthController
	UserController        controller.IUserController
	WalletController      controller.IWalletController
	TransactionController controller.ITransactionController
	KycController         controller.IKycController
	RewardController      controller.IRewardController
	DashboardController   controller.IDashboardController
	VendorController      controller.IVendorController

	// Background Services (Exposed for main.go to run)
	WatcherService      service.WatcherService
	NotificationService service.NotificationService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	// Held for the shutdown path
	db      *gorm.DB
	natsPub *pktNats.Publisher
	pubSub  *gochannel.GoChannel
	rdb     *redis.Client
	logger  logger.ILogger
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

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS audit trail. The admin surface keeps working without it.
	var auditPub service.AuditPublisher
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		auditPub = natsPub
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
	wsLogger := logger.NewFileOnlyLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Snapshot data served when the database is unreachable.
	fallbackProvider := fallback.NewStaticProvider()

	// 3. Services
	userService := service.NewUserService(uowFactory, fallbackProvider, auditPub, sysLogger)
	walletService := service.NewWalletService(uowFactory, fallbackProvider, auditPub, sysLogger)
	transactionService := service.NewTransactionService(uowFactory, fallbackProvider, auditPub, sysLogger)
	kycService := service.NewKycService(uowFactory, fallbackProvider, auditPub, sysLogger)
	rewardService := service.NewRewardService(uowFactory, fallbackProvider, auditPub, sysLogger)
	authService := service.NewAuthService(uowFactory, fallbackProvider, auditPub, sysLogger)
	dashboardService := service.NewDashboardService(uowFactory, fallbackProvider, sysLogger)
	vendorService := service.NewVendorService(
		uowFactory,
		auditPub,
		sysLogger,
		cfg.Vendor.MidtransServerKey,
		cfg.Vendor.Production,
	)

	watcherService := service.NewWatcherService(uowFactory, pubSub, sysLogger, cfg.Watcher.PollInterval)
	notificationService := service.NewNotificationService(
		pubSub,
		wsHub,
		emailService,
		cfg.SMTP.OpsEmail,
		sysLogger,
	)

	notifHandler := handler.NewNotificationHandler(wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		AuthController:        controller.NewAuthController(authService),
		UserController:        controller.NewUserController(userService),
		WalletController:      controller.NewWalletController(walletService),
		TransactionController: controller.NewTransactionController(transactionService),
		KycController:         controller.NewKycController(kycService),
		RewardController:      controller.NewRewardController(rewardService),
		DashboardController:   controller.NewDashboardController(dashboardService),
		VendorController:      controller.NewVendorController(vendorService),

		WatcherService:      watcherService,
		NotificationService: notificationService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		db:      db,
		natsPub: natsPub,
		pubSub:  pubSub,
		rdb:     rdb,
		logger:  sysLogger,
	}
}

// PingDatabase reports whether the primary store is reachable. The health
// endpoint uses it to expose degraded mode.
func (c *Container) PingDatabase(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases every connection the container owns. Call it once, on
// shutdown, after the background services have stopped.
func (c *Container) Close() {
	if c.WatcherService != nil {
		c.WatcherService.Stop()
	}
	if c.pubSub != nil {
		if err := c.pubSub.Close(); err != nil {
			log.Printf("[WARN] Failed to close event bus: %v", err)
		}
	}
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	if c.rdb != nil {
		if err := c.rdb.Close(); err != nil {
			log.Printf("[WARN] Failed to close Redis client: %v", err)
		}
	}
	if err := database.Close(c.db); err != nil {
		log.Printf("[WARN] Failed to close database: %v", err)
	}
	if c.logger != nil {
		c.logger.Sync()
	}
}
