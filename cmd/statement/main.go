package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/flexprice/playbill/internal/config"
	"github.com/flexprice/playbill/internal/loader"
	"github.com/flexprice/playbill/internal/logger"
	"github.com/flexprice/playbill/internal/pricing"
	"github.com/flexprice/playbill/internal/service"
)

func main() {
	playsPath := flag.String("plays", "plays.json", "Path to the plays catalog JSON")
	invoicesPath := flag.String("invoices", "invoices.json", "Path to the invoices JSON")
	flag.Parse()

	if err := run(context.Background(), *playsPath, *invoicesPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, playsPath, invoicesPath string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		logger.L.Errorw("failed to load config", "error", err)
		return err
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	calculator, err := pricing.NewCalculatorFromConfig(cfg)
	if err != nil {
		return err
	}

	catalog, err := loader.LoadPlays(playsPath)
	if err != nil {
		return err
	}

	invoices, err := loader.LoadInvoices(invoicesPath)
	if err != nil {
		return err
	}

	svc := service.NewStatementService(service.ServiceParams{
		Logger:     log,
		Config:     cfg,
		Calculator: calculator,
	})

	statements, err := svc.GenerateStatements(ctx, invoices, catalog)
	if err != nil {
		return err
	}

	for i, stmt := range statements {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(service.RenderText(stmt))
	}

	log.Debugw("printed statements", "count", len(statements))
	return nil
}
