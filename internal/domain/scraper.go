// internal/domain/scraper.go
package domain

import "context"

// CardScraper walks the card listing and the detail page of each card.
type CardScraper interface {
	ScrapeMainPage(ctx context.Context) ([]CardSummary, error)
	ScrapeCardDetails(ctx context.Context, link string) (CardDetail, error)
}

// DetailFailurePolicy decides what happens to a card whose detail page
// cannot be fetched or parsed.
type DetailFailurePolicy string

const (
	// DetailAbort stops the whole run on the first failing detail page.
	DetailAbort DetailFailurePolicy = "abort"
	// DetailSkip drops the card and carries on.
	DetailSkip DetailFailurePolicy = "skip"
	// DetailPartial keeps the card with every detail column blanked.
	DetailPartial DetailFailurePolicy = "partial"
)

func (p DetailFailurePolicy) Valid() bool {
	switch p {
	case DetailAbort, DetailSkip, DetailPartial:
		return true
	}
	return false
}
