package services

import (
	"strings"

	"github.com/Elwinc2799/credit-card-crawler/internal/domain"
)

// AssembleRecords flattens one card into output rows: one per cashback
// line item, or a single row with blank cashback columns when the card
// has none.
func AssembleRecords(card domain.CardSummary, bank *string, detail domain.CardDetail) []domain.CardRecord {
	base := domain.CardRecord{
		BankName:         bank,
		CardName:         card.Name,
		MinIncome:        detail.MinIncome,
		HeadlineCashback: card.HeadlineCashback,
		AnnualFee:        strings.Join(detail.AnnualFeeTiers, "\n"),
		AnnualFeeSimple:  detail.AnnualFeeSummary,
		CardLink:         card.DetailLink,
	}

	if len(detail.Cashback) == 0 {
		return []domain.CardRecord{base}
	}

	records := make([]domain.CardRecord, 0, len(detail.Cashback))
	for _, item := range detail.Cashback {
		item := item // per-iteration copy; go directive predates Go 1.22 loopvar semantics
		rec := base
		rec.CashbackCategory = &item.Category
		rec.CashbackRate = &item.Rate
		rec.MonthlyCap = &item.MonthlyCap
		rec.Spend = &item.Spend
		records = append(records, rec)
	}
	return records
}
