package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractAnnualFeeTiers returns one "label description" line per annual
// fee tier listed in the fees tile, in page order. It returns nil when the
// page has no fees tile.
func ExtractAnnualFeeTiers(doc *goquery.Document) ([]string, error) {
	tile := doc.Find(FeesTileSelector).First()
	if tile.Length() == 0 {
		return nil, nil
	}

	tiers := []string{}
	dd := valueFor(tile.Find("dl").First(), AnnualFeeLabel)
	if dd.Length() == 0 {
		return tiers, nil
	}

	var err error
	dd.Find("li").EachWithBreak(func(i int, li *goquery.Selection) bool {
		span := li.Find("span").First()
		if span.Length() == 0 {
			err = fmt.Errorf("%w: tier %d %q", ErrMalformedFeeTier, i, text(li))
			return false
		}

		label := text(span)
		desc := strings.TrimSpace(strings.TrimPrefix(text(li), label))
		tiers = append(tiers, label+" "+desc)
		return true
	})
	if err != nil {
		return nil, err
	}

	return tiers, nil
}

// ExtractAnnualFeeSummary returns the one-line annual fee from the summary
// section, or nil when the page has no summary section.
func ExtractAnnualFeeSummary(doc *goquery.Document) (*string, error) {
	summary := doc.Find(SummarySelector).First()
	if summary.Length() == 0 {
		return nil, nil
	}

	dd := valueFor(summary, AnnualFeeLabel)
	if dd.Length() == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingLabel, AnnualFeeLabel)
	}

	fee := text(dd)
	return &fee, nil
}
