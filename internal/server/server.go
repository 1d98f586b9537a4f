package server

import (
	"ai-study-tutor-be/internal/bootstrap"
	"ai-study-tutor-be/internal/config"
	"ai-study-tutor-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// multipartOverhead leaves room for boundaries and part headers so a file of
// exactly the upload limit still fits in the request body.
const multipartOverhead = 1024 * 1024

// bodyLimit admits files up to twice the upload limit so the upload service,
// not fasthttp, rejects them after the body has been read in full.
func bodyLimit(maxUpload int64) int {
	return int(2*maxUpload) + multipartOverhead
}

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "ai-study-tutor-be",
		BodyLimit:    bodyLimit(cfg.Upload.MaxBytes),
		ErrorHandler: serverutils.NewErrorHandler(container.Logger),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	// Routes
	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("SERVER", "Server is running", map[string]interface{}{
		"address": "http://localhost:" + s.cfg.App.Port,
	})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.HealthController.RegisterRoutes(api)
	c.UserController.RegisterRoutes(api)
	c.ConversationController.RegisterRoutes(api)
	c.MessageController.RegisterRoutes(api)
	c.UploadController.RegisterRoutes(api)
}
