// Package display renders check results for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/mhollis/dealscout/internal/deals"
	"github.com/mhollis/dealscout/internal/models"
)

var currencySymbols = map[string]string{
	"BR": "R$",
	"US": "$",
	"GB": "£",
	"DE": "€",
	"FR": "€",
	"AU": "A$",
}

var sortLabels = map[deals.Strategy]string{
	deals.StrategyDeal:     "Best Deal",
	deals.StrategyDiscount: "Discount %",
	deals.StrategyPrice:    "Price",
}

var tagColors = map[int]*color.Color{
	models.TagStoreLow.Severity:   color.New(color.FgHiRed, color.Bold),
	models.TagHistorical.Severity: color.New(color.FgHiYellow, color.Bold),
	models.TagMatching.Severity:   color.New(color.FgYellow),
	models.TagOnSale.Severity:     color.New(color.FgGreen),
}

// CurrencySymbol returns the display symbol for a country code, or the
// empty string for countries without a mapping.
func CurrencySymbol(country string) string {
	return currencySymbols[strings.ToUpper(country)]
}

// Render writes the results table plus a summary footer to w.
func Render(w io.Writer, results []models.DealResult, strategy deals.Strategy, country string) {
	sym := CurrencySymbol(country)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Game", "Sale", "Price", "Regular", "Discount", "Steam Low", "All-Store Low"})
	table.SetAutoWrapText(false)
	table.SetRowLine(true)

	for _, r := range results {
		table.Append([]string{
			r.Name,
			colorize(r.Tag),
			sym + r.CurrentPrice.StringFixed(2),
			sym + r.RegularPrice.StringFixed(2),
			fmt.Sprintf("-%d%%", r.DiscountPercent),
			formatLow(sym, r.StoreLow),
			formatLow(sym, r.HistoricalLow),
		})
	}
	table.Render()

	fmt.Fprintf(w, "\n%d games on sale | country: %s | sorted by: %s\n",
		len(results), strings.ToUpper(country), sortLabel(strategy))
}

func colorize(tag models.DealTag) string {
	if c, ok := tagColors[tag.Severity]; ok {
		return c.Sprint(tag.Label)
	}
	return tag.Label
}

func formatLow(sym string, low *decimal.Decimal) string {
	if low == nil {
		return "N/A"
	}
	return sym + low.StringFixed(2)
}

func sortLabel(strategy deals.Strategy) string {
	if label, ok := sortLabels[strategy]; ok {
		return label
	}
	return string(strategy)
}
