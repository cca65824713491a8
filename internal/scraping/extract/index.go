package extract

import (
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/Elwinc2799/credit-card-crawler/internal/domain"
)

// ExtractCardIndex lists the cards of the cashback category in page order.
// Relative detail links are resolved against base.
func ExtractCardIndex(doc *goquery.Document, base *url.URL) ([]domain.CardSummary, error) {
	sidebar := doc.Find(SidebarSelector).First()
	if sidebar.Length() == 0 {
		return nil, fmt.Errorf("%w: %s not found", ErrStructureChanged, SidebarSelector)
	}
	products := sidebar.Find(ProductListSelector).First()
	if products.Length() == 0 {
		return nil, fmt.Errorf("%w: %s not found", ErrStructureChanged, ProductListSelector)
	}

	cards := []domain.CardSummary{}
	products.Find(ProductItemSelector).Each(func(i int, li *goquery.Selection) {
		anchor := li.Find(CardLinkSelector).First()
		href, ok := anchor.Attr("href")
		if !ok {
			zap.L().Warn("product entry without card link", zap.Int("index", i))
			return
		}

		link, err := resolve(base, href)
		if err != nil {
			zap.L().Warn("unparsable card link", zap.String("href", href), zap.Error(err))
			return
		}

		cards = append(cards, domain.CardSummary{
			Name:             text(anchor),
			HeadlineCashback: text(valueFor(li, CashbackLabel)),
			DetailLink:       link,
		})
	})

	return cards, nil
}

func resolve(base *url.URL, href string) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}
