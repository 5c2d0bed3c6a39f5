package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evently-app/evently/config"
	"github.com/evently-app/evently/controller"
	"github.com/evently-app/evently/repository"
	"github.com/evently-app/evently/service"

	"github.com/flowchartsman/retry"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	mongoClient, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoDBURI))
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(ctx)
	}()

	retrier := retry.NewRetrier(5, 100*time.Millisecond, time.Second)
	err = retrier.Run(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return mongoClient.Ping(ctx, readpref.Primary())
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo ping failed")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	userRepository := repository.NewUserRepository(mongoClient, cfg.MongoDBName)
	eventRepository := repository.NewEventRepository(mongoClient, cfg.MongoDBName)
	followRepository := repository.NewFollowRepository(mongoClient, cfg.MongoDBName)
	bookingRepository := repository.NewBookingRepository(mongoClient, cfg.MongoDBName)
	reviewRepository := repository.NewReviewRepository(mongoClient, cfg.MongoDBName)
	notificationFeed := repository.NewNotificationFeedRepository(redisClient)

	notificationService := service.NewNotificationService(notificationFeed, cfg.NotifyLocale)
	userService := service.NewUserService(userRepository)
	eventService := service.NewEventService(eventRepository, followRepository, userRepository, notificationService)
	bookingService := service.NewBookingService(bookingRepository, eventRepository, userRepository, notificationService)
	reviewService := service.NewReviewService(reviewRepository, eventRepository)

	userController := &controller.UserController{UserService: userService}
	eventController := &controller.EventController{EventService: eventService}
	bookingController := &controller.BookingController{BookingService: bookingService}
	reviewController := &controller.ReviewController{ReviewService: reviewService}

	r := gin.Default()

	v1 := r.Group("/v1")

	users := v1.Group("/users")
	users.POST("/employee/create", userController.Create)
	users.PUT("/employee-update/:id", userController.Update)
	users.GET("/employee/list", userController.List)
	users.GET("/employee/:id", userController.Get)
	users.DELETE("/employee-remove/:id", userController.Delete)

	authed := v1.Group("", controller.Authenticate(cfg.JWTSecret))

	events := authed.Group("/events")
	events.POST("", eventController.Create)
	events.PUT("/:id", eventController.Update)
	events.GET("/trending", eventController.Trending)
	events.GET("/favorites", eventController.Favorites)
	events.POST("/:id/favorite", eventController.FavoriteToggle)
	events.POST("/:id/follow", eventController.Follow)
	events.POST("/:id/unfollow", eventController.Unfollow)
	events.GET("/:id/followers", eventController.Followers)
	events.POST("/:id/reviews", reviewController.Create)
	events.GET("/:id/reviews", reviewController.ListForEvent)

	bookings := authed.Group("/bookings")
	bookings.POST("", bookingController.Create)
	bookings.POST("/:id/cancel", bookingController.Cancel)
	bookings.GET("", bookingController.List)

	reviews := authed.Group("/reviews")
	reviews.POST("/:id/vote", reviewController.Vote)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	group.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	log.Info().Str("port", cfg.Port).Msg("server started")

	err = group.Wait()
	if err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
