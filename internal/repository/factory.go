package repository

import (
	"github.com/flexprice/playbill/internal/config"
	"github.com/flexprice/playbill/internal/domain/invoice"
	"github.com/flexprice/playbill/internal/domain/play"
	"github.com/flexprice/playbill/internal/logger"
	"github.com/flexprice/playbill/internal/postgres"
	"github.com/flexprice/playbill/internal/repository/memory"
	postgresRepo "github.com/flexprice/playbill/internal/repository/postgres"
	"github.com/flexprice/playbill/internal/types"
)

// RepositoryParams holds what the repository constructors may need.
// DB is nil when storage is in memory.
type RepositoryParams struct {
	Config *config.Configuration
	DB     *postgres.DB
	Logger *logger.Logger
}

func NewPlayRepository(p RepositoryParams) play.Repository {
	if p.Config.Storage.Type == types.StorageTypePostgres {
		return postgresRepo.NewPlayRepository(p.DB, p.Logger)
	}
	return memory.NewPlayStore()
}

func NewInvoiceRepository(p RepositoryParams) invoice.Repository {
	if p.Config.Storage.Type == types.StorageTypePostgres {
		return postgresRepo.NewInvoiceRepository(p.DB, p.Logger)
	}
	return memory.NewInvoiceStore()
}
