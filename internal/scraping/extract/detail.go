package extract

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/Elwinc2799/credit-card-crawler/internal/domain"
)

// ExtractDetail runs every detail-page extractor over one parsed page.
func ExtractDetail(doc *goquery.Document) (domain.CardDetail, error) {
	var detail domain.CardDetail
	detail.MinIncome, detail.Cashback = ExtractCashback(doc)

	tiers, err := ExtractAnnualFeeTiers(doc)
	if err != nil {
		return domain.CardDetail{}, err
	}
	detail.AnnualFeeTiers = tiers

	summary, err := ExtractAnnualFeeSummary(doc)
	if err != nil {
		return domain.CardDetail{}, err
	}
	detail.AnnualFeeSummary = summary

	return detail, nil
}
