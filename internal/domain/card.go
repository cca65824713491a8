// internal/domain/card.go
package domain

// NoInfo marks a minimum income that was looked for and not found.
const NoInfo = "No Info"

// CardSummary is one entry of the cashback listing page.
type CardSummary struct {
	Name             string
	HeadlineCashback string
	DetailLink       string
}

// CashbackLineItem is one row of a card's cashback table.
type CashbackLineItem struct {
	Category   string
	Rate       string
	MonthlyCap string
	Spend      string
}

// CardDetail holds everything extracted from a single card detail page.
//
// A nil Cashback means the page has no cashback tile at all, while an
// empty slice means the tile exists but carries no usable rows. The same
// distinction applies to AnnualFeeTiers and the fees tile.
type CardDetail struct {
	MinIncome        string
	Cashback         []CashbackLineItem
	AnnualFeeTiers   []string
	AnnualFeeSummary *string
}

// CardRecord is one output row. Optional columns are pointers so that an
// absent value is distinguishable from an empty string.
type CardRecord struct {
	BankName         *string
	CardName         string
	MinIncome        string
	HeadlineCashback string
	CashbackCategory *string
	CashbackRate     *string
	MonthlyCap       *string
	Spend            *string
	AnnualFee        string
	AnnualFeeSimple  *string
	CardLink         string
}
