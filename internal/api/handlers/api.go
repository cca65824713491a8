package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Elwinc2799/credit-card-crawler/internal/api/models"
	"github.com/Elwinc2799/credit-card-crawler/internal/repositories"
	"github.com/Elwinc2799/credit-card-crawler/internal/services"
)

type APIHandler struct {
	recordService *services.RecordService
	scraping      *ScrapingHandler
}

func NewAPIHandler(recordService *services.RecordService, scraping *ScrapingHandler) *APIHandler {
	return &APIHandler{recordService: recordService, scraping: scraping}
}

func (h *APIHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/scrape", h.scraping.HandleScrape).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/api/records", h.handleRecords).Methods(http.MethodGet)
}

func (h *APIHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}

func (h *APIHandler) handleRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.recordService.FindAll(r.Context())
	if errors.Is(err, repositories.ErrNoExport) {
		http.Error(w, "no export yet, run /api/scrape first", http.StatusNotFound)
		return
	}
	if err != nil {
		zap.L().Error("reading records", zap.Error(err))
		http.Error(w, "error reading records", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, models.FromDomain(records))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("writing response", zap.Error(err))
	}
}
