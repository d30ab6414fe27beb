package deals

import (
	"sort"

	"github.com/mhollis/dealscout/internal/models"
)

// Strategy selects the ordering of check results.
type Strategy string

const (
	// StrategyDeal groups by deal tier, strongest first, cheapest first
	// within a tier. The default.
	StrategyDeal Strategy = "deal"
	// StrategyDiscount orders by discount percentage, highest first.
	StrategyDiscount Strategy = "discount"
	// StrategyPrice orders by current price, cheapest first.
	StrategyPrice Strategy = "price"
)

// ParseStrategy maps a user-supplied sort name to a Strategy. Anything
// unrecognized falls back to StrategyDeal; ranking never fails.
func ParseStrategy(s string) Strategy {
	switch Strategy(s) {
	case StrategyDiscount:
		return StrategyDiscount
	case StrategyPrice:
		return StrategyPrice
	default:
		return StrategyDeal
	}
}

// unknownTagRank sorts results with an unrecognized tag after every known tier.
const unknownTagRank = 9

var tagOrder = map[string]int{
	models.TagStoreLow.Label:   models.TagStoreLow.Severity,
	models.TagHistorical.Label: models.TagHistorical.Severity,
	models.TagMatching.Label:   models.TagMatching.Severity,
	models.TagOnSale.Label:     models.TagOnSale.Severity,
}

func tagRank(tag models.DealTag) int {
	if rank, ok := tagOrder[tag.Label]; ok {
		return rank
	}
	return unknownTagRank
}

// Rank returns a new slice sorted per the strategy; the input is not
// mutated. All sorts are stable, so equal-key results keep their relative
// input order.
func Rank(results []models.DealResult, strategy Strategy) []models.DealResult {
	ranked := make([]models.DealResult, len(results))
	copy(ranked, results)

	switch strategy {
	case StrategyDiscount:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].DiscountPercent > ranked[j].DiscountPercent
		})
	case StrategyPrice:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].CurrentPrice.LessThan(ranked[j].CurrentPrice)
		})
	default:
		sort.SliceStable(ranked, func(i, j int) bool {
			ri, rj := tagRank(ranked[i].Tag), tagRank(ranked[j].Tag)
			if ri != rj {
				return ri < rj
			}
			return ranked[i].CurrentPrice.LessThan(ranked[j].CurrentPrice)
		})
	}
	return ranked
}
