package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"songdeck/internal/config"
	database "songdeck/internal/db"

	"songdeck/internal/api/handlers"
	"songdeck/internal/api/middleware"
)

type Server struct {
	cfg    *config.Config
	db     *database.Client
	router *gin.Engine
}

func New(cfg *config.Config, db *database.Client) *Server {
	if cfg.Server.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:    cfg,
		db:     db,
		router: gin.Default(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	// CORS Configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}

	// "Authorization" must be allowed so clients can send the admin key
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}

	s.router.Use(cors.New(corsConfig))
	s.router.Use(middleware.CountRequests())
}

func (s *Server) setupRoutes() {
	songHandler := handlers.NewSongHandler(s.db.DB)
	adminHandler := handlers.NewAdminKeyHandler(s.db.DB, s.cfg.Auth.DefaultValidityDays)
	schedulerHandler := handlers.NewSchedulerHandler(s.db.DB)
	webHandler := handlers.NewWebHandler(s.db.DB)

	requireKey := middleware.RequireAdminKey(s.db.DB)

	// Health Check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "songdeck"})
	})

	// HTML surface
	s.router.LoadHTMLGlob(s.cfg.Server.TemplateDir + "/*.html")
	s.router.GET("/", webHandler.Index)
	s.router.POST("/add", webHandler.AddSong)
	s.router.GET("/play", webHandler.Play)

	api := s.router.Group("/api")
	{
		// ==========================================
		// PUBLIC ROUTES (No Key Required)
		// ==========================================
		api.GET("/songs", songHandler.GetSongs)
		api.GET("/songs/random", songHandler.GetRandomSongs)
		api.GET("/songs/:id", songHandler.GetSong)

		api.GET("/schedulers", schedulerHandler.GetSchedules)
		api.GET("/schedulers/:id", schedulerHandler.GetSchedule)

		api.POST("/admin/verify", adminHandler.VerifyKey)
		api.GET("/auth/key", adminHandler.CheckKey)

		// Key minting is open only while bootstrap is allowed. Leaving
		// it open means anyone can self-mint an admin key; the flag
		// exists so operators can close that door after first use.
		if s.cfg.Auth.AllowKeyBootstrap {
			api.POST("/admin/key", adminHandler.GenerateKey)
		} else {
			api.POST("/admin/key", requireKey, adminHandler.GenerateKey)
		}

		// ==========================================
		// PROTECTED ROUTES (Admin Key Required)
		// ==========================================
		protected := api.Group("/")
		protected.Use(requireKey)
		{
			protected.POST("/songs", songHandler.CreateSong)
			protected.PUT("/songs/:id", songHandler.UpdateSong)
			protected.DELETE("/songs/:id", songHandler.DeleteSong)

			protected.GET("/admin/keys", adminHandler.ListKeys)
			protected.POST("/admin/key/deactivate", adminHandler.DeactivateKey)

			protected.POST("/schedulers", schedulerHandler.CreateSchedule)
			protected.PUT("/schedulers/:id", schedulerHandler.UpdateSchedule)
			protected.DELETE("/schedulers/:id", schedulerHandler.DeleteSchedule)
		}
	}
}

// Router exposes the gin engine, mainly for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the server on the configured port
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
