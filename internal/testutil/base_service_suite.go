package testutil

import (
	"context"

	"github.com/flexprice/playbill/internal/cache"
	"github.com/flexprice/playbill/internal/config"
	"github.com/flexprice/playbill/internal/logger"
	"github.com/flexprice/playbill/internal/pricing"
	"github.com/flexprice/playbill/internal/repository/memory"
	"github.com/flexprice/playbill/internal/sentry"
	"github.com/flexprice/playbill/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds the in-memory repositories used by service tests
type Stores struct {
	PlayRepo    *memory.PlayStore
	InvoiceRepo *memory.InvoiceStore
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	stores     Stores
	cache      cache.Cache
	calculator *pricing.Calculator
	sentry     *sentry.Service
	logger     *logger.Logger
	config     *config.Configuration
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	s.config = config.GetDefaultConfig()
	s.config.Cache.Enabled = true
	s.logger = logger.NewNopLogger()
	s.sentry = sentry.NewSentryService(s.config, s.logger)

	var err error
	s.calculator, err = pricing.NewCalculatorFromConfig(s.config)
	s.Require().NoError(err)
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.stores = Stores{
		PlayRepo:    memory.NewPlayStore(),
		InvoiceRepo: memory.NewInvoiceStore(),
	}
	s.cache = cache.NewInMemoryCache(s.config, s.logger)
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.ClearStores()
}

func (s *BaseServiceTestSuite) ClearStores() {
	s.stores.PlayRepo.Clear()
	s.stores.InvoiceRepo.Clear()
	s.cache.Flush(s.ctx)
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetStores returns the in-memory repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetCache returns the test cache
func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

// GetCalculator returns the calculator for the default pricing table
func (s *BaseServiceTestSuite) GetCalculator() *pricing.Calculator {
	return s.calculator
}

// GetSentry returns a disabled sentry service
func (s *BaseServiceTestSuite) GetSentry() *sentry.Service {
	return s.sentry
}

// SeedPlays stores the plays of the BigCo catalog
func (s *BaseServiceTestSuite) SeedPlays() {
	for _, p := range BigCoCatalog() {
		s.Require().NoError(s.stores.PlayRepo.Create(s.ctx, p))
	}
}
