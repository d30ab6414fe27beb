package deals_test

import (
	"testing"

	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/mhollis/dealscout/internal/deals"
	"github.com/mhollis/dealscout/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestClassify(t *testing.T) {
	Convey("Given price records with different baseline combinations", t, func() {
		Convey("When the current price matches the store all-time low", func() {
			rec := models.PriceRecord{
				CurrentPrice: dec("5.00"),
				StoreLow:     decPtr("5.00"),
			}

			Convey("Then it should be tagged as a Steam all-time low", func() {
				So(deals.Classify(rec), ShouldResemble, models.TagStoreLow)
			})
		})

		Convey("When the record satisfies both the store low and the cross-store low", func() {
			rec := models.PriceRecord{
				CurrentPrice:  dec("4.00"),
				StoreLow:      decPtr("5.00"),
				HistoricalLow: decPtr("4.50"),
			}

			Convey("Then the store low wins the precedence", func() {
				So(deals.Classify(rec), ShouldResemble, models.TagStoreLow)
			})
		})

		Convey("When only the cross-store low condition holds", func() {
			// Above the store low, exactly at the cross-store low.
			rec := models.PriceRecord{
				CurrentPrice:  dec("5.00"),
				StoreLow:      decPtr("4.50"),
				HistoricalLow: decPtr("5.00"),
			}

			Convey("Then it should be tagged as a cross-store low", func() {
				So(deals.Classify(rec), ShouldResemble, models.TagHistorical)
			})
		})

		Convey("When only the one-year low condition holds", func() {
			rec := models.PriceRecord{
				CurrentPrice:  dec("9.99"),
				StoreLow:      decPtr("7.49"),
				HistoricalLow: decPtr("7.49"),
				OneYearLow:    decPtr("9.99"),
			}

			Convey("Then it should be tagged as matching the recent low", func() {
				So(deals.Classify(rec), ShouldResemble, models.TagMatching)
			})
		})

		Convey("When no baseline is reported at all", func() {
			rec := models.PriceRecord{
				CurrentPrice: dec("1.99"),
			}

			Convey("Then it should fall through to the on-sale default", func() {
				So(deals.Classify(rec), ShouldResemble, models.TagOnSale)
			})
		})

		Convey("When the price is below every reported baseline", func() {
			rec := models.PriceRecord{
				CurrentPrice:  dec("1.00"),
				StoreLow:      decPtr("2.00"),
				HistoricalLow: decPtr("3.00"),
				OneYearLow:    decPtr("4.00"),
			}

			Convey("Then the strongest claim still wins", func() {
				So(deals.Classify(rec), ShouldResemble, models.TagStoreLow)
			})
		})

		Convey("When baselines are missing, their tiers must never fire", func() {
			// Cheap price but no store low reported: tier 0 cannot apply.
			rec := models.PriceRecord{
				CurrentPrice:  dec("0.99"),
				HistoricalLow: decPtr("0.99"),
			}

			So(deals.Classify(rec), ShouldResemble, models.TagHistorical)
		})

		Convey("When the source data is inconsistent (historical low above one-year low)", func() {
			rec := models.PriceRecord{
				CurrentPrice:  dec("5.00"),
				StoreLow:      decPtr("5.00"),
				HistoricalLow: decPtr("6.00"),
				OneYearLow:    decPtr("5.00"),
			}

			Convey("Then precedence still resolves deterministically to the store low", func() {
				So(deals.Classify(rec), ShouldResemble, models.TagStoreLow)
			})
		})
	})
}
