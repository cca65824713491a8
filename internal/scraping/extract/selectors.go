package extract

// Markup contract with ringgitplus.com. Every class name, id and label
// string the extractors depend on lives here.
const (
	// Listing page
	SidebarSelector     = "section.Sidebar"
	ProductListSelector = "ul.Products.CRCD"
	ProductItemSelector = "li"
	CardLinkSelector    = "h3 a"

	// Detail page
	SummarySelector      = "section.Summary"
	CashbackTileSelector = "section.Tile#cashback"
	FeesTileSelector     = "section.Tile#fees"

	// Labels matched by exact (trimmed) text
	CashbackLabel  = "Cashback"
	MinIncomeLabel = "Min. Income"
	AnnualFeeLabel = "Annual Fee"

	// Cashback table rows need at least this many cells.
	cashbackColumns = 4
)
