// internal/services/scraper_service.go
package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Elwinc2799/credit-card-crawler/internal/domain"
	"github.com/Elwinc2799/credit-card-crawler/internal/repositories"
	"github.com/Elwinc2799/credit-card-crawler/internal/scraping/extract"
)

// ScrapeResult summarises one run.
type ScrapeResult struct {
	Cards   int
	Skipped int
	Records []domain.CardRecord
}

type ScraperService struct {
	scraper  domain.CardScraper
	repo     repositories.RecordRepository
	banks    []string
	onDetail domain.DetailFailurePolicy
	log      *zap.Logger
}

func NewScraperService(
	scraper domain.CardScraper,
	repo repositories.RecordRepository,
	banks []string,
	onDetail domain.DetailFailurePolicy,
	log *zap.Logger,
) *ScraperService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScraperService{
		scraper:  scraper,
		repo:     repo,
		banks:    banks,
		onDetail: onDetail,
		log:      log,
	}
}

// Scrape walks the listing and every card page, in listing order.
func (s *ScraperService) Scrape(ctx context.Context) (*ScrapeResult, error) {
	cards, err := s.scraper.ScrapeMainPage(ctx)
	if err != nil {
		return nil, fmt.Errorf("error scraping main page: %w", err)
	}
	s.log.Info("found cards", zap.Int("count", len(cards)))

	result := &ScrapeResult{Cards: len(cards)}
	for i, card := range cards {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		s.log.Debug("scraping card", zap.Int("index", i), zap.String("name", card.Name))
		bank := extract.ResolveBank(card.Name, s.banks)

		detail, err := s.scraper.ScrapeCardDetails(ctx, card.DetailLink)
		if err != nil {
			switch s.onDetail {
			case domain.DetailSkip:
				s.log.Warn("skipping card", zap.String("name", card.Name), zap.Error(err))
				result.Skipped++
				continue
			case domain.DetailPartial:
				s.log.Warn("keeping card without details", zap.String("name", card.Name), zap.Error(err))
				detail = domain.CardDetail{MinIncome: domain.NoInfo}
			default:
				return nil, fmt.Errorf("error scraping %s: %w", card.DetailLink, err)
			}
		}

		result.Records = append(result.Records, AssembleRecords(card, bank, detail)...)
	}

	return result, nil
}

// ScrapeAndStore runs Scrape and hands the records to the repository.
func (s *ScraperService) ScrapeAndStore(ctx context.Context) (*ScrapeResult, error) {
	result, err := s.Scrape(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, result.Records); err != nil {
		return nil, fmt.Errorf("error saving records: %w", err)
	}
	return result, nil
}
