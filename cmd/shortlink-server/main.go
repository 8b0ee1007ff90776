package main

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/truong-le-ofs/short-link/pkg/shortlink/analytics"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/auth"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/config"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/database"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/links"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/logging"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/redirect"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/resolver"

	_ "github.com/truong-le-ofs/short-link/api/swagger"
)

// @title Shortlink API
// @version 1.0
// @description A link shortener with scheduled targets, password gates and privacy-preserving analytics.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logging.New(cfg.Log.Level)

	db, err := database.Connect(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	log.Info().Str("path", cfg.Database.Path).Msg("database ready")

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	recorder := analytics.NewRecorder(db, analytics.StubGeoResolver{}, log, cfg.Analytics.QueueSize)
	defer recorder.Close()

	engine := resolver.NewEngine(db, recorder, log)

	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		authHandler := auth.NewHandler(db, tokens)
		authHandler.RegisterRoutes(api.Group("/auth"))

		protected := api.Group("", auth.Middleware(tokens))

		// Link management routes
		linksHandler := links.NewHandler(db)
		linksHandler.RegisterRoutes(protected)

		// Analytics routes
		analyticsHandler := analytics.NewHandler(db)
		analyticsHandler.RegisterRoutes(protected)
	}

	// Public resolution routes (must be registered last to avoid conflicts)
	redirectHandler := redirect.NewHandler(engine)
	redirectHandler.RegisterRoutes(r)

	log.Info().Str("port", cfg.Server.Port).Msg("starting shortlink server")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
