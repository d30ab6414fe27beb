package deals_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mhollis/dealscout/internal/deals"
	"github.com/mhollis/dealscout/internal/models"
)

func TestParseStrategy(t *testing.T) {
	Convey("Given user-supplied sort names", t, func() {
		So(deals.ParseStrategy("deal"), ShouldEqual, deals.StrategyDeal)
		So(deals.ParseStrategy("discount"), ShouldEqual, deals.StrategyDiscount)
		So(deals.ParseStrategy("price"), ShouldEqual, deals.StrategyPrice)

		Convey("Unknown names fall back to the deal strategy", func() {
			So(deals.ParseStrategy("bogus"), ShouldEqual, deals.StrategyDeal)
			So(deals.ParseStrategy(""), ShouldEqual, deals.StrategyDeal)
		})
	})
}

func TestRank(t *testing.T) {
	Convey("Given a set of classified deal results", t, func() {
		// Item X: weakest tier, cheap. Item Y: strong tier, expensive.
		x := models.DealResult{Name: "X", CurrentPrice: dec("9.00"), DiscountPercent: 10, Tag: models.TagOnSale}
		y := models.DealResult{Name: "Y", CurrentPrice: dec("15.00"), DiscountPercent: 50, Tag: models.TagHistorical}
		results := []models.DealResult{x, y}

		Convey("When ranked by deal", func() {
			ranked := deals.Rank(results, deals.StrategyDeal)

			Convey("Then stronger tiers come first regardless of price", func() {
				So(ranked[0].Name, ShouldEqual, "Y")
				So(ranked[1].Name, ShouldEqual, "X")
			})

			Convey("And the input order is untouched", func() {
				So(results[0].Name, ShouldEqual, "X")
				So(results[1].Name, ShouldEqual, "Y")
			})
		})

		Convey("When ranked by price", func() {
			ranked := deals.Rank(results, deals.StrategyPrice)

			Convey("Then the cheapest comes first", func() {
				So(ranked[0].Name, ShouldEqual, "X")
				So(ranked[1].Name, ShouldEqual, "Y")
			})
		})

		Convey("When ranked by discount", func() {
			ranked := deals.Rank(results, deals.StrategyDiscount)

			Convey("Then the deepest discount comes first", func() {
				So(ranked[0].Name, ShouldEqual, "Y")
				So(ranked[1].Name, ShouldEqual, "X")
			})
		})
	})

	Convey("Given results within the same tier", t, func() {
		a := models.DealResult{Name: "A", CurrentPrice: dec("12.00"), Tag: models.TagStoreLow}
		b := models.DealResult{Name: "B", CurrentPrice: dec("3.00"), Tag: models.TagStoreLow}
		c := models.DealResult{Name: "C", CurrentPrice: dec("7.00"), Tag: models.TagOnSale}

		Convey("The deal strategy orders by price inside each tier group", func() {
			ranked := deals.Rank([]models.DealResult{a, c, b}, deals.StrategyDeal)
			So(ranked[0].Name, ShouldEqual, "B")
			So(ranked[1].Name, ShouldEqual, "A")
			So(ranked[2].Name, ShouldEqual, "C")
		})
	})

	Convey("Given results with equal sort keys", t, func() {
		a := models.DealResult{Name: "A", CurrentPrice: dec("5.00"), DiscountPercent: 30, Tag: models.TagOnSale}
		b := models.DealResult{Name: "B", CurrentPrice: dec("5.00"), DiscountPercent: 30, Tag: models.TagOnSale}
		c := models.DealResult{Name: "C", CurrentPrice: dec("5.00"), DiscountPercent: 30, Tag: models.TagOnSale}
		results := []models.DealResult{a, b, c}

		Convey("Price ranking preserves relative input order", func() {
			ranked := deals.Rank(results, deals.StrategyPrice)
			So(ranked[0].Name, ShouldEqual, "A")
			So(ranked[1].Name, ShouldEqual, "B")
			So(ranked[2].Name, ShouldEqual, "C")
		})

		Convey("Discount ranking preserves relative input order", func() {
			ranked := deals.Rank(results, deals.StrategyDiscount)
			So(ranked[0].Name, ShouldEqual, "A")
			So(ranked[1].Name, ShouldEqual, "B")
			So(ranked[2].Name, ShouldEqual, "C")
		})
	})

	Convey("Given a result carrying an unrecognized tag", t, func() {
		odd := models.DealResult{Name: "Odd", CurrentPrice: dec("0.50"), Tag: models.DealTag{Label: "Mystery", Severity: 42}}
		sale := models.DealResult{Name: "Sale", CurrentPrice: dec("20.00"), Tag: models.TagOnSale}

		Convey("The deal strategy sorts it last instead of failing", func() {
			ranked := deals.Rank([]models.DealResult{odd, sale}, deals.StrategyDeal)
			So(ranked[0].Name, ShouldEqual, "Sale")
			So(ranked[1].Name, ShouldEqual, "Odd")
		})
	})
}
