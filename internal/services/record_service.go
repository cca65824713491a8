package services

import (
	"context"

	"github.com/Elwinc2799/credit-card-crawler/internal/domain"
	"github.com/Elwinc2799/credit-card-crawler/internal/repositories"
)

type RecordService struct {
	repo repositories.RecordRepository
}

func NewRecordService(repo repositories.RecordRepository) *RecordService {
	return &RecordService{repo: repo}
}

// FindAll returns the records of the last export.
func (s *RecordService) FindAll(ctx context.Context) ([]domain.CardRecord, error) {
	return s.repo.FindAll(ctx)
}
