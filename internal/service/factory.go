package service

import (
	"github.com/flexprice/playbill/internal/cache"
	"github.com/flexprice/playbill/internal/config"
	"github.com/flexprice/playbill/internal/domain/invoice"
	"github.com/flexprice/playbill/internal/domain/play"
	"github.com/flexprice/playbill/internal/logger"
	"github.com/flexprice/playbill/internal/pricing"
	"github.com/flexprice/playbill/internal/sentry"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger     *logger.Logger
	Config     *config.Configuration
	Cache      cache.Cache
	Calculator *pricing.Calculator
	Sentry     *sentry.Service

	// Repositories
	PlayRepo    play.Repository
	InvoiceRepo invoice.Repository
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	cache cache.Cache,
	calculator *pricing.Calculator,
	sentry *sentry.Service,
	playRepo play.Repository,
	invoiceRepo invoice.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:      logger,
		Config:      config,
		Cache:       cache,
		Calculator:  calculator,
		Sentry:      sentry,
		PlayRepo:    playRepo,
		InvoiceRepo: invoiceRepo,
	}
}
