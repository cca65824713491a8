package commands

import (
	"fmt"

	"github.com/Elwinc2799/credit-card-crawler/internal/config"
	"github.com/Elwinc2799/credit-card-crawler/internal/repositories"
	"github.com/Elwinc2799/credit-card-crawler/internal/scraping/collectors/ringgitplus"
	"github.com/Elwinc2799/credit-card-crawler/internal/services"
	"github.com/Elwinc2799/credit-card-crawler/pkg/logger"
)

type app struct {
	cfg        *config.Config
	listingURL string
	log        *logger.Logger
	repo       *repositories.XLSXRecordRepository
	scraper    *services.ScraperService
	shutdown   func()
}

func setup() (*app, error) {
	cfg, err := config.LoadConfigFrom(*configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFlags(cfg); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.App.Name, cfg.App.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	restore := log.Install()

	rp := cfg.Scraping.RinggitPlus
	collector, err := ringgitplus.NewRinggitPlusCollector(ringgitplus.Options{
		BaseURL:        rp.BaseURL,
		ListingPath:    rp.CashbackPath(),
		UserAgent:      rp.UserAgent,
		RequestTimeout: rp.RequestTimeout,
	})
	if err != nil {
		restore()
		return nil, err
	}

	repo := repositories.NewXLSXRecordRepository(cfg.App.OutputFile)
	svc := services.NewScraperService(collector, repo, rp.Banks, rp.OnDetailError, log.Desugar())

	shutdown := func() {
		_ = log.Sync()
		restore()
	}

	return &app{
		cfg:        cfg,
		listingURL: collector.ListingURL(),
		log:        log,
		repo:       repo,
		scraper:    svc,
		shutdown:   shutdown,
	}, nil
}
