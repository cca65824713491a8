package repositories

import (
	"context"

	"github.com/Elwinc2799/credit-card-crawler/internal/domain"
)

type RecordRepository interface {
	Save(ctx context.Context, records []domain.CardRecord) error
	FindAll(ctx context.Context) ([]domain.CardRecord, error)
}
