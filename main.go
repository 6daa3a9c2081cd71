package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cleanly/config"
	"cleanly/cron"
	"cleanly/database"
	bookingRepoPkg "cleanly/database/repository/booking"
	catalogRepoPkg "cleanly/database/repository/catalog"
	chatRepoPkg "cleanly/database/repository/chat"
	couponRepoPkg "cleanly/database/repository/coupon"
	userRepoPkg "cleanly/database/repository/user"
	"cleanly/handlers"
	"cleanly/middleware"
	"cleanly/routes"
	"cleanly/services/account"
	"cleanly/services/admin"
	"cleanly/services/booking"
	"cleanly/services/catalog"
	"cleanly/services/chat"
	"cleanly/services/pricing"
	"cleanly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	utils.InitializeLogger(cfg.Env)
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Database(cfg.DatabaseName)

	cacheClient, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to Redis (cache): %v", err)
	}
	authClient, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisAuthDB)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to Redis (auth): %v", err)
	}

	utils.StartHealthMonitor(map[string]*redis.Client{
		"cache": cacheClient,
		"auth":  authClient,
	}, mongoClient)

	// Create the Gin router.
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimit(cfg.MaxRequestsPerMin))

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	serviceRepo := catalogRepoPkg.NewMongoServiceRepo(db)
	couponRepo := couponRepoPkg.NewMongoCouponRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	conversationRepo := chatRepoPkg.NewMongoConversationRepo(db)

	// services.
	tokens := utils.NewJWTManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	reminders := cron.NewReminderScheduler(cfg)
	defer reminders.Close()

	accountService := &account.DefaultAccountService{
		Repo:   userRepo,
		Tokens: tokens,
		Auth:   authClient,
	}
	pricingEngine := pricing.NewEngine(couponRepo)
	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		Catalog:   serviceRepo,
		Users:     userRepo,
		Pricing:   pricingEngine,
		Reminders: reminders,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo:     serviceRepo,
		Bookings: bookingRepo,
	}
	adminService := &admin.DefaultAdminService{
		Users:    userRepo,
		Bookings: bookingRepo,
		Coupons:  couponRepo,
		Cache:    cacheClient,
	}
	chatService := &chat.DefaultChatService{
		Repo:  conversationRepo,
		Users: userRepo,
	}

	// Assemble the handler bundle and register routes.
	bundle := &routes.Bundle{
		Auth:         handlers.NewAuthHandler(accountService),
		Users:        handlers.NewUserHandler(accountService),
		Services:     handlers.NewServiceHandler(catalogService),
		Bookings:     handlers.NewBookingHandler(bookingService),
		Chat:         handlers.NewChatHandler(chatService),
		Admin:        handlers.NewAdminHandler(adminService, bookingService),
		Authenticate: middleware.Authenticate(tokens, userRepo, authClient),
	}
	routes.Register(router, bundle)

	// Start the reminder worker alongside the HTTP server.
	worker := cron.StartReminderWorker(cfg, bookingRepo)

	// Start the HTTP server.
	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	worker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
