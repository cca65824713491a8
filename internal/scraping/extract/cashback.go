package extract

import (
	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/Elwinc2799/credit-card-crawler/internal/domain"
)

// ExtractCashback reads the minimum income and the cashback table of a
// card detail page.
//
// The income is domain.NoInfo when the summary has no "Min. Income" entry.
// The line items are nil when the page has no cashback tile; rows with
// fewer than four cells are dropped.
func ExtractCashback(doc *goquery.Document) (string, []domain.CashbackLineItem) {
	return extractMinIncome(doc), extractCashbackItems(doc)
}

func extractMinIncome(doc *goquery.Document) string {
	dd := valueFor(doc.Find(SummarySelector).First(), MinIncomeLabel)
	if dd.Length() == 0 {
		return domain.NoInfo
	}
	if span := dd.Find("span").First(); span.Length() > 0 {
		return text(span)
	}
	return text(dd)
}

func extractCashbackItems(doc *goquery.Document) []domain.CashbackLineItem {
	tile := doc.Find(CashbackTileSelector).First()
	if tile.Length() == 0 {
		return nil
	}

	items := []domain.CashbackLineItem{}
	table := tile.Find("table").First()
	if table.Length() == 0 {
		return items
	}

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header
		}
		cells := row.Find("td")
		if cells.Length() < cashbackColumns {
			zap.L().Debug("skipping short cashback row", zap.Int("row", i), zap.Int("cells", cells.Length()))
			return
		}

		rateCell := cells.Eq(1)
		rate := text(rateCell)
		if span := rateCell.Find("span").First(); span.Length() > 0 {
			rate = text(span)
		}

		items = append(items, domain.CashbackLineItem{
			Category:   text(cells.Eq(0)),
			Rate:       rate,
			MonthlyCap: text(cells.Eq(2)),
			Spend:      text(cells.Eq(3)),
		})
	})

	return items
}
