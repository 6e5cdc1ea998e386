package app

import (
	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/health"
	"portfolio-backend/internal/market"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/portfolio"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all middleware and route registration.
// The DB and quote source are constructed by the caller (cmd/api in
// production, in-memory stores and stubs in tests) and injected here; no
// component reaches for ambient state.
func CreateApp(cfg *config.Config, db *gorm.DB, quotes market.Quoter) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
	})

	app.Use(middleware.CORS(cfg.FrontendOrigin))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	tokens := &auth.TokenService{Secret: []byte(cfg.JWTSecret), TTL: cfg.JWTTTL}

	api := app.Group("/api")

	// Health (no auth)
	healthHandlers := &health.Handlers{}
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			healthHandlers.DB = sqlDB
		}
	}
	api.Get("/health", healthHandlers.Check)

	// Auth (no auth middleware)
	authHandlers := &auth.Handlers{
		Service: &auth.Service{DB: db},
		Tokens:  tokens,
	}
	api.Post("/register", authHandlers.Register)
	api.Post("/login", authHandlers.Login)

	// Everything below requires a bearer token.
	api.Use(middleware.Protected(tokens))

	api.Get("/debug-token", authHandlers.DebugToken)

	portfolioHandlers := &portfolio.Handlers{
		Service: &portfolio.Service{DB: db, Quotes: quotes},
	}
	api.Get("/portfolio", portfolioHandlers.List)
	api.Post("/portfolio", portfolioHandlers.Add)
	api.Delete("/portfolio/:id", portfolioHandlers.Delete)

	marketHandlers := &market.Handlers{
		Service: &market.Service{Quotes: quotes},
	}
	api.Get("/popular-stocks", marketHandlers.PopularStocks)
	api.Get("/search-stock", marketHandlers.SearchStock)
	api.Get("/stock-history", marketHandlers.StockHistory)

	return app
}
