package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sweetcrumb/config"
	"sweetcrumb/database/ledger"
	"sweetcrumb/database/reviews"
	"sweetcrumb/database/subscribers"
	"sweetcrumb/handlers"
	"sweetcrumb/middleware"
	"sweetcrumb/routes"
	"sweetcrumb/services/availability"
	"sweetcrumb/services/booking"
	"sweetcrumb/services/notification"
	"sweetcrumb/services/payment"
	"sweetcrumb/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: failed to load config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.IsProduction())
	if err != nil {
		log.Fatalf("main: failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	closureDay, err := cfg.Closure()
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler(logger))
	router.Use(gin.Logger())
	router.Use(routes.CORS(cfg.Origins()))
	router.Use(middleware.RateLimit(cfg.MaxRequestsPerMin, logger))

	// Stores.
	ledgerStore := ledger.NewFileStore(cfg.LedgerFile)
	reviewStore := reviews.NewFileStore(cfg.ReviewFile)
	subscriberStore := subscribers.NewFileStore(cfg.SubscriberFile)

	// Notification transport: fall back to log output when SMTP is not set up
	// so bookings keep working on a fresh install.
	var notifier notification.Notifier
	if cfg.MailConfigured() {
		notifier = notification.NewSMTPNotifier(
			cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SenderAddress)
	} else {
		logger.Warn("SMTP not configured, booking notifications will only be logged")
		notifier = &notification.LogNotifier{Logger: logger}
	}
	dispatcher := &notification.Dispatcher{
		Notifier:     notifier,
		Logger:       logger,
		OwnerAddress: cfg.OwnerAddress,
		Timeout:      notification.DefaultTimeout,
	}

	// Services.
	gateway := payment.NewStripeGateway(cfg.StripeSecretKey, logger)
	availabilitySvc := &availability.Calculator{
		Ledger:     ledgerStore,
		ClosureDay: closureDay,
		HorizonCap: cfg.HorizonCap,
	}
	bookingSvc := &booking.DefaultService{
		Ledger:     ledgerStore,
		Gateway:    gateway,
		Dispatcher: dispatcher,
		Logger:     logger,
		Deposit:    cfg.DepositAmount,
		Currency:   cfg.DepositCurrency,
		ClosureDay: closureDay,
	}

	// Assemble the handler bundle and register routes.
	hb := &routes.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(availabilitySvc, cfg.HorizonDays, logger),
		Booking:      handlers.NewBookingHandler(bookingSvc, cfg.StripePublishableKey, logger),
		Reviews:      handlers.NewReviewHandler(reviewStore, logger),
		Subscribe:    handlers.NewSubscribeHandler(subscriberStore, logger),
	}
	routes.RegisterRoutes(router, hb)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	// Let in-flight booking notifications finish before exit.
	dispatcher.Wait()

	logger.Sugar().Info("main: server stopped gracefully")
}
