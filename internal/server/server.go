// Package server wires the Fiber application: middleware, the /graphql
// endpoint, the playground page and operational routes.
package server

import (
	"context"

	"blogql/internal/config"
	"blogql/internal/graph"
	"blogql/internal/middleware"
	"blogql/internal/seed"
	"blogql/internal/service"
	"blogql/internal/store"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	store          *store.Store
	schema         *graphql.Schema
	promMiddleware *fiberprometheus.FiberPrometheus
	userService    *service.UserService
	postService    *service.PostService
	commentService *service.CommentService
}

// NewServer creates a new server instance with all dependencies over a fresh store.
func NewServer(cfg *config.Config) (*Server, error) {
	return NewServerWithStore(cfg, store.New())
}

// NewServerWithStore creates a Server over an already-initialized store.
// Use this in tests or when a bootstrap layer prepares the store.
func NewServerWithStore(cfg *config.Config, st *store.Store) (*Server, error) {
	userService := service.NewUserService(st, nil)
	postService := service.NewPostService(st, nil)
	commentService := service.NewCommentService(st, nil)

	resolver := graph.NewResolver(userService, postService, commentService)

	server := &Server{
		config:         cfg,
		store:          st,
		schema:         graph.ParseSchema(resolver),
		promMiddleware: fiberprometheus.New("blogql"),
		userService:    userService,
		postService:    postService,
		commentService: commentService,
	}
	return server, nil
}

// Seed applies config-driven seeding: the demo fixtures and optionally a
// batch of fake users generated through the service layer.
func (s *Server) Seed(ctx context.Context) error {
	if s.config.SeedDemoData {
		if err := seed.Demo(s.store); err != nil {
			return err
		}
	}
	if s.config.SeedFakeUsers > 0 {
		factory := seed.NewFactory(s.userService, s.postService, s.commentService)
		if err := factory.SeedFakeUsers(ctx, s.config.SeedFakeUsers); err != nil {
			return err
		}
	}
	return nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Tracing must run before ContextMiddleware so the trace ID is in locals
	app.Use(middleware.TracingMiddleware())

	// Context Middleware to propagate Request ID and Trace ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	app.Use(s.promMiddleware.Middleware)

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/healthz", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	s.promMiddleware.RegisterAt(app, "/metrics")

	// GraphQL endpoint; relay.Handler does parse/validate/execute
	app.Post("/graphql", adaptor.HTTPHandler(&relay.Handler{Schema: s.schema}))

	// Interactive playground
	if s.config.PlaygroundEnabled {
		app.Get("/", s.Playground)
	}
}

// BuildApp creates the Fiber app with middleware and routes applied.
func (s *Server) BuildApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "blogql",
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}
