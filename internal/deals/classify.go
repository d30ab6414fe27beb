// Package deals holds the decision logic of a check run: classifying each
// price record into a deal tier, ranking the classified results, and the
// pipeline that wires the external services together.
package deals

import "github.com/mhollis/dealscout/internal/models"

// tierRule pairs a deal tier with the predicate that grants it.
type tierRule struct {
	tag     models.DealTag
	applies func(models.PriceRecord) bool
}

// Evaluated in order, first match wins. A record can satisfy several
// conditions at once; the strongest claim must win, and the store-scoped
// all-time low is the strongest because it is least likely to be stale.
// An absent baseline never satisfies its tier.
var tierRules = []tierRule{
	{models.TagStoreLow, func(r models.PriceRecord) bool {
		return r.StoreLow != nil && r.CurrentPrice.LessThanOrEqual(*r.StoreLow)
	}},
	{models.TagHistorical, func(r models.PriceRecord) bool {
		return r.HistoricalLow != nil && r.CurrentPrice.LessThanOrEqual(*r.HistoricalLow)
	}},
	{models.TagMatching, func(r models.PriceRecord) bool {
		return r.OneYearLow != nil && r.CurrentPrice.LessThanOrEqual(*r.OneYearLow)
	}},
}

// Classify assigns exactly one deal tier to a price record. Records that
// match no baseline are still on sale, since the aggregator only emits
// records for games with an active deal.
func Classify(rec models.PriceRecord) models.DealTag {
	for _, rule := range tierRules {
		if rule.applies(rec) {
			return rule.tag
		}
	}
	return models.TagOnSale
}
