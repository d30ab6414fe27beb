package deals

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mhollis/dealscout/internal/models"
)

// InventoryService provides the user's wishlist with resolved names.
type InventoryService interface {
	Wishlist(ctx context.Context) ([]models.WishlistItem, error)
}

// MappingService resolves Steam app ids to ITAD game ids in one batch.
type MappingService interface {
	LookupIDs(ctx context.Context, appIDs []string) (map[string]string, error)
}

// PricingService returns the best active offer per ITAD game id in one batch.
type PricingService interface {
	Prices(ctx context.Context, itadIDs []string) ([]models.PriceRecord, error)
}

// Reason explains why a run ended with no results. These are normal end
// states, not errors.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonEmptyWishlist Reason = "wishlist empty"
	ReasonNoneResolved  Reason = "no items resolved"
	ReasonNothingOnSale Reason = "nothing on sale"
)

// Outcome is the terminal state of one check run.
type Outcome struct {
	Results []models.DealResult
	Reason  Reason
}

// Pipeline composes the three external services into one check run:
// resolve identities, aggregate prices, classify, join names, rank.
type Pipeline struct {
	inventory InventoryService
	mapping   MappingService
	pricing   PricingService
	logger    *logrus.Logger
}

// New creates a new Pipeline.
func New(inventory InventoryService, mapping MappingService, pricing PricingService, logger *logrus.Logger) *Pipeline {
	return &Pipeline{
		inventory: inventory,
		mapping:   mapping,
		pricing:   pricing,
		logger:    logger,
	}
}

// Run executes one full check. Any upstream batch failure aborts the run;
// an empty wishlist, zero resolved identities, or zero active deals end it
// early with the matching Reason and no further service calls.
func (p *Pipeline) Run(ctx context.Context, strategy Strategy) (Outcome, error) {
	items, err := p.inventory.Wishlist(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to fetch wishlist: %w", err)
	}
	if len(items) == 0 {
		return Outcome{Reason: ReasonEmptyWishlist}, nil
	}

	appIDs := make([]string, 0, len(items))
	names := make(map[string]string, len(items))
	for _, it := range items {
		appIDs = append(appIDs, it.AppID)
		names[it.AppID] = it.Name
	}

	p.logger.Infof("Resolving ITAD game ids for %d wishlist games", len(appIDs))
	resolved, err := p.mapping.LookupIDs(ctx, appIDs)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to resolve game ids: %w", err)
	}

	// Walk the wishlist order, not the response map, so the identity map
	// and everything downstream is deterministic.
	identity := models.NewIdentityMap()
	for _, appID := range appIDs {
		if itadID, ok := resolved[appID]; ok {
			identity.Add(appID, itadID)
		}
	}
	if identity.Len() == 0 {
		return Outcome{Reason: ReasonNoneResolved}, nil
	}
	p.logger.Infof("Resolved %d / %d games", identity.Len(), len(names))

	records, err := p.pricing.Prices(ctx, identity.ITADIDs())
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to fetch prices: %w", err)
	}
	if len(records) == 0 {
		return Outcome{Reason: ReasonNothingOnSale}, nil
	}

	results := make([]models.DealResult, 0, len(records))
	for _, rec := range records {
		var name string
		if appID, ok := identity.AppFor(rec.ITADID); ok {
			name = names[appID]
		}
		if name == "" {
			// Should not happen given the resolver's contract, but one
			// unjoinable record must not abort the run.
			name = "ITAD:" + rec.ITADID
			p.logger.Warnf("No wishlist name for price record %s, using placeholder", rec.ITADID)
		}

		results = append(results, models.DealResult{
			Name:            name,
			CurrentPrice:    rec.CurrentPrice,
			RegularPrice:    rec.RegularPrice,
			DiscountPercent: rec.DiscountPercent,
			OfferURL:        rec.OfferURL,
			StoreLow:        rec.StoreLow,
			HistoricalLow:   rec.HistoricalLow,
			Tag:             Classify(rec),
		})
	}

	return Outcome{Results: Rank(results, strategy)}, nil
}
