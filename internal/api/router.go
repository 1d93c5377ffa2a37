package api

import (
	v1 "github.com/flexprice/playbill/internal/api/v1"
	"github.com/flexprice/playbill/internal/config"
	"github.com/flexprice/playbill/internal/logger"
	"github.com/flexprice/playbill/internal/rest/middleware"
	"github.com/flexprice/playbill/internal/sentry"
	"github.com/flexprice/playbill/internal/types"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health    *v1.HealthHandler
	Play      *v1.PlayHandler
	Invoice   *v1.InvoiceHandler
	Statement *v1.StatementHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger, sentrySvc *sentry.Service) *gin.Engine {
	if cfg.Deployment.Mode != types.ModeLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.SentryMiddleware(cfg),
		middleware.LoggerMiddleware(logger),
		middleware.ErrorHandler(logger, sentrySvc),
	)

	router.GET("/health", handlers.Health.Health)

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	statements := router.Group("/statements")
	{
		statements.POST("", handlers.Statement.CreateStatement)
		statements.POST("/bulk", handlers.Statement.CreateStatements)
	}

	plays := router.Group("/plays")
	{
		plays.POST("", handlers.Play.CreatePlay)
		plays.GET("", handlers.Play.ListPlays)
		plays.GET("/:id", handlers.Play.GetPlay)
	}

	invoices := router.Group("/invoices")
	{
		invoices.POST("", handlers.Invoice.CreateInvoice)
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
		invoices.GET("/:id/statement", handlers.Statement.GetInvoiceStatement)
	}
}
