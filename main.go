// File: gatherandgo/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gatherandgo/config"
	"gatherandgo/database"
	groupRepoPkg "gatherandgo/database/repository/group"
	userRepoPkg "gatherandgo/database/repository/user"
	"gatherandgo/handlers"
	"gatherandgo/middleware"
	"gatherandgo/routes"
	"gatherandgo/services/group"
	"gatherandgo/services/preferences"
	"gatherandgo/services/rating"
	"gatherandgo/services/recommendation"
	"gatherandgo/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"google.golang.org/api/iterator"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// repositories, backed by the configured store driver.
	var groupRepo groupRepoPkg.GroupRepository
	var userRepo userRepoPkg.UserRepository
	var storePing func(context.Context) error
	switch config.AppConfig.StoreDriver {
	case "firestore":
		database.InitFirestore()
		groupRepo = groupRepoPkg.NewFirestoreGroupRepo()
		userRepo = userRepoPkg.NewFirestoreUserRepo()
		storePing = func(ctx context.Context) error {
			// A bounded read doubles as a liveness probe; Firestore has no ping.
			_, err := database.FirestoreClient.Collections(ctx).Next()
			if err == iterator.Done {
				return nil
			}
			return err
		}
	default:
		database.InitDB()
		groupRepo = groupRepoPkg.NewMongoGroupRepo()
		userRepo = userRepoPkg.NewMongoUserRepo()
		storePing = func(ctx context.Context) error {
			return database.MongoClient.Ping(ctx, nil)
		}
	}

	utils.InitCache()
	utils.InitRatingsCache()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetRatingsCacheClient()},
		storePing,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	groupService := &group.DefaultGroupService{
		Repo: groupRepo,
	}
	preferenceService := &preferences.DefaultPreferenceService{
		Repo: userRepo,
	}
	recommendationService := &recommendation.DefaultRecommendationService{
		GroupRepo:   groupRepo,
		UserRepo:    userRepo,
		CacheClient: utils.GetCacheClient(),
		CacheTTL:    time.Duration(config.AppConfig.RecommendCacheTTL) * time.Second,
	}
	ledger := rating.NewRedisLedger(utils.GetRatingsCacheClient())

	preferencesHandler := handlers.NewPreferencesHandler(preferenceService)
	groupHandler := handlers.NewGroupHandler(groupService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, ledger, groupService)
	ratingHandler := handlers.NewRatingHandler(ledger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Preference endpoints.
		SavePreferencesHandler: preferencesHandler.SavePreferencesHandler,
		GetProfileHandler:      preferencesHandler.GetProfileHandler,

		// Group endpoints.
		CreateGroupHandler:   groupHandler.CreateGroupHandler,
		GetGroupHandler:      groupHandler.GetGroupHandler,
		ListGroupsHandler:    groupHandler.ListGroupsHandler,
		JoinGroupHandler:     groupHandler.JoinGroupHandler,
		InviteToGroupHandler: groupHandler.InviteToGroupHandler,
		FinalizeGroupHandler: groupHandler.FinalizeGroupHandler,

		// Recommendation endpoints.
		GroupRecommendationsHandler: recommendationHandler.GroupRecommendationsHandler,

		// Event rating endpoints.
		RateEventHandler:      ratingHandler.RateEventHandler,
		GetEventRatingHandler: ratingHandler.GetEventRatingHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
