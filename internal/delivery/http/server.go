package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/senda-infinita/internal/config"
	"github.com/senda-infinita/internal/delivery/http/handler"
	"github.com/senda-infinita/internal/delivery/http/middleware"
)

// Server is the Fiber HTTP server wiring middleware, handlers and routes.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	authHandler     *handler.AuthHandler
	routeHandler    *handler.RouteHandler
	reviewHandler   *handler.ReviewHandler
	favoriteHandler *handler.FavoriteHandler
	photoHandler    *handler.PhotoHandler
	profileHandler  *handler.ProfileHandler
	adminHandler    *handler.AdminHandler
	statsHandler    *handler.StatsHandler
}

// NewServer creates the HTTP server with all routes registered.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authHandler *handler.AuthHandler,
	routeHandler *handler.RouteHandler,
	reviewHandler *handler.ReviewHandler,
	favoriteHandler *handler.FavoriteHandler,
	photoHandler *handler.PhotoHandler,
	profileHandler *handler.ProfileHandler,
	adminHandler *handler.AdminHandler,
	statsHandler *handler.StatsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Senda Infinita API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		authHandler:     authHandler,
		routeHandler:    routeHandler,
		reviewHandler:   reviewHandler,
		favoriteHandler: favoriteHandler,
		photoHandler:    photoHandler,
		profileHandler:  profileHandler,
		adminHandler:    adminHandler,
		statsHandler:    statsHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Uploaded photos are served straight from disk.
	s.app.Static(s.config.Upload.PublicURL, s.config.Upload.Dir)

	auth := middleware.Auth(s.config.Auth.JWTSecret, s.logger)
	adminOnly := middleware.AdminOnly()

	api := s.app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/auth/register", s.authHandler.Register)
	api.Post("/auth/login", s.authHandler.Login)

	// Import must be registered before the slug route so "import" never
	// resolves as a slug.
	api.Post("/routes/import/ors", auth, adminOnly, s.routeHandler.ImportRoute)
	api.Get("/routes", s.routeHandler.ListRoutes)
	api.Get("/routes/:slug", s.routeHandler.GetRouteBySlug)

	api.Get("/routes/:id/reviews", s.reviewHandler.GetRouteReviews)
	api.Post("/routes/:id/reviews", auth, s.reviewHandler.CreateReview)
	api.Patch("/reviews/:id", auth, s.reviewHandler.UpdateReview)
	api.Delete("/reviews/:id", auth, s.reviewHandler.DeleteReview)

	api.Post("/routes/:id/favorite", auth, s.favoriteHandler.ToggleFavorite)
	api.Delete("/routes/:id/favorite", auth, s.favoriteHandler.RemoveFavorite)

	api.Get("/routes/:id/photos", s.photoHandler.GetRoutePhotos)
	api.Post("/routes/:id/photos", auth, s.photoHandler.UploadPhoto)
	api.Delete("/photos/:id", auth, s.photoHandler.DeletePhoto)

	api.Get("/me", auth, s.profileHandler.Me)
	api.Get("/me/reviews", auth, s.profileHandler.MyReviews)
	api.Get("/me/favorites", auth, s.profileHandler.MyFavorites)

	admin := api.Group("/admin", auth, adminOnly)
	admin.Get("/users", s.adminHandler.ListUsers)
	admin.Patch("/users/:id/role", s.adminHandler.UpdateUserRole)
	admin.Delete("/users/:id", s.adminHandler.DeleteUser)
	admin.Get("/reviews", s.adminHandler.ListReviews)
	admin.Delete("/reviews/:id", s.adminHandler.DeleteReview)
	admin.Get("/routes", s.adminHandler.ListRoutes)
	admin.Patch("/routes/:id", s.adminHandler.UpdateRoute)
	admin.Delete("/routes/:id", s.adminHandler.DeleteRoute)
	admin.Get("/photos", s.adminHandler.ListPhotos)
	admin.Delete("/photos/:id", s.adminHandler.DeletePhoto)

	api.Get("/stats", s.statsHandler.GetStatistics)
}

// Start runs the server until Shutdown is called.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
