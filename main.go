// File: contour/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contour/config"
	"contour/cron"
	"contour/database"
	bookingRepoPkg "contour/database/repository/booking"
	departureRepoPkg "contour/database/repository/departure"
	expeditionRepoPkg "contour/database/repository/expedition"
	faqRepoPkg "contour/database/repository/faq"
	reviewRepoPkg "contour/database/repository/review"
	userRepoPkg "contour/database/repository/user"
	"contour/handlers"
	"contour/middleware"
	"contour/routes"
	bookingSvc "contour/services/booking"
	departureSvc "contour/services/departure"
	expeditionSvc "contour/services/expedition"
	faqSvc "contour/services/faq"
	"contour/services/mailer"
	reviewSvc "contour/services/review"
	statsSvc "contour/services/stats"
	"contour/services/tasks"
	userSvc "contour/services/user"
	"contour/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	groupDepartureRepo := departureRepoPkg.NewMongoGroupDepartureRepo()
	privateDepartureRepo := departureRepoPkg.NewMongoPrivateDepartureRepo()
	expeditionRepo := expeditionRepoPkg.NewMongoExpeditionRepo()
	faqRepo := faqRepoPkg.NewMongoFaqRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	for name, ensure := range map[string]func() error{
		"groupDepartures":   groupDepartureRepo.EnsureIndexes,
		"privateDepartures": privateDepartureRepo.EnsureIndexes,
		"faqs":              faqRepo.EnsureIndexes,
		"users":             userRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	mailService := mailer.NewSMTPMailer()
	reminderScheduler := tasks.NewAsynqScheduler()
	defer reminderScheduler.Close()

	// services.
	bookingService := &bookingSvc.DefaultBookingService{
		Repo:          bookingRepo,
		DepartureRepo: groupDepartureRepo,
		UserRepo:      userRepo,
		Mailer:        mailService,
		Scheduler:     reminderScheduler,
	}
	departureService := &departureSvc.DefaultDepartureService{
		GroupRepo:   groupDepartureRepo,
		PrivateRepo: privateDepartureRepo,
	}
	expeditionService := &expeditionSvc.DefaultExpeditionService{Repo: expeditionRepo}
	faqService := &faqSvc.DefaultFaqService{Repo: faqRepo}
	reviewService := &reviewSvc.DefaultReviewService{Repo: reviewRepo}
	userService := &userSvc.DefaultUserService{Repo: userRepo, Sessions: userSvc.RedisSessionStore{}}
	statsService := &statsSvc.DefaultStatsService{Bookings: bookingRepo}

	handlerBundle := &handlers.HandlerBundle{
		Booking:    &handlers.BookingHandler{Service: bookingService},
		Departure:  &handlers.DepartureHandler{Service: departureService},
		Expedition: &handlers.ExpeditionHandler{Service: expeditionService},
		Faq:        &handlers.FaqHandler{Service: faqService},
		Review:     &handlers.ReviewHandler{Service: reviewService},
		User:       &handlers.UserHandler{Service: userService},
		Stats:      &handlers.StatsHandler{Service: statsService},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder processing.
	cron.InitReminderWorker(mailService)
	reminderCron := cron.InitReminderScanner(bookingRepo, mailService)
	defer reminderCron.Stop()

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
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
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
