// internal/api/handlers/scraping.go

package handlers

import (
	"errors"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/Elwinc2799/credit-card-crawler/internal/api/models"
	"github.com/Elwinc2799/credit-card-crawler/internal/scraping/collectors/ringgitplus"
	"github.com/Elwinc2799/credit-card-crawler/internal/services"
)

type ScrapingHandler struct {
	scraperService *services.ScraperService
	file           string

	// one run at a time; runs rewrite the same file
	mu sync.Mutex
}

func NewScrapingHandler(svc *services.ScraperService, file string) *ScrapingHandler {
	return &ScrapingHandler{scraperService: svc, file: file}
}

func (h *ScrapingHandler) HandleScrape(w http.ResponseWriter, r *http.Request) {
	if !h.mu.TryLock() {
		http.Error(w, "scrape already running", http.StatusConflict)
		return
	}
	defer h.mu.Unlock()

	result, err := h.scraperService.ScrapeAndStore(r.Context())
	if err != nil {
		zap.L().Error("scrape failed", zap.Error(err))

		var statusErr *ringgitplus.StatusError
		if errors.As(err, &statusErr) {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.ScrapeSummary{
		File:    h.file,
		Cards:   result.Cards,
		Skipped: result.Skipped,
		Records: len(result.Records),
	})
}
