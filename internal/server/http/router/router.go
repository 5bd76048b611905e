package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/rbxmart/rbxmart/internal/config"
	"github.com/rbxmart/rbxmart/internal/server/http/handlers"
	"github.com/rbxmart/rbxmart/internal/server/http/middleware"
)

// Params bundles router dependencies for fx.
type Params struct {
	fx.In

	Facade handlers.StoreFacade
	Config *config.Config
	Logger *slog.Logger
}

// New builds the router from fx-provided dependencies.
func New(p Params) *gin.Engine {
	return Setup(p.Facade, p.Config.WebhookSecret, p.Logger)
}

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, webhookSecret string, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade, webhookSecret)
	catalogHandler := handlers.NewCatalogHandler(facade)
	promoHandler := handlers.NewPromoHandler(facade)

	api := engine.Group("/api")

	api.POST("/user/register", authHandler.Register)
	api.POST("/user/login", authHandler.Login)

	api.GET("/products", catalogHandler.Products)
	api.GET("/robux/packages", catalogHandler.RobuxPackages)

	// Gateway callbacks authenticate with a shared secret, not a user token.
	api.POST("/payment/webhook", paymentHandler.Webhook)

	authorized := api.Group("")
	authorized.Use(middleware.AuthRequired(facade))
	authorized.POST("/orders", orderHandler.Checkout)
	authorized.GET("/orders", orderHandler.List)
	authorized.GET("/orders/:id", orderHandler.Get)
	authorized.POST("/payment/refund", middleware.AdminRequired(facade), paymentHandler.Refund)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminRequired(facade))
	admin.POST("/products", catalogHandler.CreateProduct)
	admin.PATCH("/products/:id/stock", catalogHandler.UpdateStock)
	admin.PUT("/settings/gamepass-rate", catalogHandler.SetGamepassRate)
	admin.POST("/promocodes", promoHandler.Create)
	admin.GET("/promocodes", promoHandler.List)
	admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

	return engine
}
