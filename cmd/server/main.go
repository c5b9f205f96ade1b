// Package main runs the Intellica analytics API server with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Abhiwarkar/Intellica/config"
	"github.com/Abhiwarkar/Intellica/internal/analytics"
	"github.com/Abhiwarkar/Intellica/internal/auth"
	"github.com/Abhiwarkar/Intellica/internal/middleware"
	"github.com/Abhiwarkar/Intellica/internal/organizations"
	"github.com/Abhiwarkar/Intellica/internal/reports"
	"github.com/Abhiwarkar/Intellica/internal/settings"
	"github.com/Abhiwarkar/Intellica/internal/users"
	"github.com/Abhiwarkar/Intellica/pkg/database"
	"github.com/Abhiwarkar/Intellica/pkg/redis"
	"github.com/Abhiwarkar/Intellica/pkg/response"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), database.PoolSettings{
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	}, logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	// Redis backs logout token revocation. The API stays up without it;
	// logout then only discards the token client-side.
	var revoker *auth.RevocationStore
	rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
	if err != nil {
		logger.Warn("redis unavailable, token revocation disabled", zap.Error(err))
	} else {
		defer rdb.Close()
		revoker = auth.NewRevocationStore(rdb)
	}

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpireHours)

	// Auth + organizations
	authRepo := auth.NewRepository(pool)
	orgRepo := organizations.NewRepository(pool)
	authHandler := auth.NewHandler(authRepo, orgRepo, jwtService, tokenRevoker(revoker), logger)

	// Analytics (event ingestion, listing, overview, user metrics, seeding)
	analyticsRepo := analytics.NewRepository(pool)
	analyticsHandler := analytics.NewHandler(analyticsRepo, logger)

	// Reports (business overview, user activity, conversion funnel)
	reportsRepo := reports.NewRepository(pool)
	reportsHandler := reports.NewHandler(reportsRepo, logger)

	// Users + settings (admin)
	usersRepo := users.NewRepository(pool)
	usersHandler := users.NewHandler(usersRepo, logger)
	settingsHandler := settings.NewHandler(orgRepo, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	// Health
	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })
	router.GET("/", func(c *gin.Context) {
		response.OK(c, gin.H{"message": "Intellica analytics API", "status": "online"})
	})

	api := router.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// Protected API (JWT required)
	protected := api.Group("")
	protected.Use(middleware.JWT(jwtService, revocationChecker(revoker)))
	{
		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/auth/me", authHandler.Me)

		// Analytics: ingestion open to any authenticated caller, reads
		// gated at viewer and above, seeding at analyst and above.
		analyticsGroup := protected.Group("/analytics")
		{
			analyticsGroup.POST("/events", analyticsHandler.TrackEvent)
			analyticsGroup.GET("/events", middleware.RequireRole("viewer", "analyst", "admin"), analyticsHandler.ListEvents)
			analyticsGroup.GET("/overview", middleware.RequireRole("viewer", "analyst", "admin"), analyticsHandler.GetOverview)
			analyticsGroup.GET("/users", middleware.RequireRole("viewer", "analyst", "admin"), analyticsHandler.GetUserMetrics)
			analyticsGroup.POST("/generate-sample-data", middleware.RequireRole("analyst", "admin"), analyticsHandler.GenerateSampleData)
		}

		reportsGroup := protected.Group("/reports")
		{
			reportsGroup.GET("/overview", middleware.RequireRole("viewer", "analyst", "admin"), reportsHandler.GetBusinessOverview)
			reportsGroup.GET("/user-activity", middleware.RequireRole("viewer", "analyst", "admin"), reportsHandler.GetUserActivity)
			reportsGroup.GET("/conversion-funnel", middleware.RequireRole("analyst", "admin"), reportsHandler.GetConversionFunnel)
		}

		settingsGroup := protected.Group("/settings")
		{
			settingsGroup.GET("/general", settingsHandler.GetGeneral)
			settingsGroup.PUT("/general", middleware.RequireRole("admin"), settingsHandler.UpdateGeneral)
			settingsGroup.PUT("/integrations", middleware.RequireRole("admin"), settingsHandler.UpdateIntegrations)
		}

		usersGroup := protected.Group("/users")
		usersGroup.Use(middleware.RequireRole("admin"))
		{
			usersGroup.GET("", usersHandler.List)
			usersGroup.POST("", usersHandler.Create)
			usersGroup.GET("/:id", usersHandler.Get)
			usersGroup.PUT("/:id", usersHandler.Update)
			usersGroup.DELETE("/:id", usersHandler.Delete)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

// revocationChecker and tokenRevoker avoid handing consumers a non-nil
// interface wrapping a nil store.
func revocationChecker(store *auth.RevocationStore) auth.RevocationChecker {
	if store == nil {
		return nil
	}
	return store
}

func tokenRevoker(store *auth.RevocationStore) auth.TokenRevoker {
	if store == nil {
		return nil
	}
	return store
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
