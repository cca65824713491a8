// internal/api/models/record.go

package models

import "github.com/Elwinc2799/credit-card-crawler/internal/domain"

type Record struct {
	BankName         *string `json:"bank_name"`
	CardName         string  `json:"card_name"`
	MinIncome        string  `json:"min_income"`
	Cashback         string  `json:"cashback"`
	CashbackCategory *string `json:"cashback_category"`
	CashbackRate     *string `json:"cashback_rate"`
	MonthlyCap       *string `json:"monthly_cap"`
	Spend            *string `json:"spend"`
	AnnualFee        string  `json:"annual_fee"`
	AnnualFeeSimple  *string `json:"annual_fee_simple"`
	CardLink         string  `json:"card_link"`
}

type ScrapeSummary struct {
	File    string `json:"file"`
	Cards   int    `json:"cards"`
	Skipped int    `json:"skipped"`
	Records int    `json:"records"`
}

func FromDomain(records []domain.CardRecord) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		out = append(out, Record{
			BankName:         r.BankName,
			CardName:         r.CardName,
			MinIncome:        r.MinIncome,
			Cashback:         r.HeadlineCashback,
			CashbackCategory: r.CashbackCategory,
			CashbackRate:     r.CashbackRate,
			MonthlyCap:       r.MonthlyCap,
			Spend:            r.Spend,
			AnnualFee:        r.AnnualFee,
			AnnualFeeSimple:  r.AnnualFeeSimple,
			CardLink:         r.CardLink,
		})
	}
	return out
}
