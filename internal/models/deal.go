package models

import "github.com/shopspring/decimal"

// WishlistItem is a single wishlisted game after name resolution.
type WishlistItem struct {
	AppID string
	Name  string
}

// DealTag classifies how strong a deal is. Lower severity is stronger.
type DealTag struct {
	Label    string
	Severity int
}

// Deal tiers, strongest first. A record that made it through price
// aggregation is at minimum on sale.
var (
	TagStoreLow   = DealTag{Label: "Steam All-Time Low", Severity: 0}
	TagHistorical = DealTag{Label: "Cross-Store Low", Severity: 1}
	TagMatching   = DealTag{Label: "Matching Lowest", Severity: 2}
	TagOnSale     = DealTag{Label: "On Sale", Severity: 3}
)

// PriceRecord is the best currently active store offer for one ITAD game id,
// together with the historical baselines used to judge it. Baselines the
// pricing service did not report stay nil.
type PriceRecord struct {
	ITADID          string
	CurrentPrice    decimal.Decimal
	RegularPrice    decimal.Decimal
	DiscountPercent int
	OfferURL        string
	StoreLow        *decimal.Decimal
	HistoricalLow   *decimal.Decimal
	OneYearLow      *decimal.Decimal
}

// DealResult is one row of a finished check run: a price record joined with
// its wishlist name and classified with a deal tag.
type DealResult struct {
	Name            string
	CurrentPrice    decimal.Decimal
	RegularPrice    decimal.Decimal
	DiscountPercent int
	OfferURL        string
	StoreLow        *decimal.Decimal
	HistoricalLow   *decimal.Decimal
	Tag             DealTag
}
