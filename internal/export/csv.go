// Package export renders packages into downloadable documents: an RFC 4180
// CSV breakdown and a plain-text insertion order. Documents are built
// entirely in memory; packages are small.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"chicago-hub/internal/core/domain"
	"chicago-hub/internal/core/pricing"
)

var csvHeader = []string{"Publication", "Channel", "Item Name", "Pricing", "Monthly Cost"}

// PackageCSV serialises a package into CSV with per-publication subtotals,
// per-channel totals and a grand total row. When the package runs longer
// than one month a duration total row follows the monthly total.
func PackageCSV(pkg *domain.Package) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("csv: write header: %w", err)
	}

	channelTotals := map[domain.Channel]decimal.Decimal{}
	channelOrder := []domain.Channel{}
	grand := decimal.Zero

	for _, pub := range pkg.Publications {
		subtotal := decimal.Zero
		for _, item := range pub.Items {
			cost := pricing.MonthlyCost(item)
			subtotal = subtotal.Add(cost)
			if _, seen := channelTotals[item.Channel]; !seen {
				channelOrder = append(channelOrder, item.Channel)
			}
			channelTotals[item.Channel] = channelTotals[item.Channel].Add(cost)

			row := []string{
				pub.PublicationName,
				string(item.Channel),
				item.ItemName,
				rateCell(item),
				Money(cost),
			}
			if err := w.Write(row); err != nil {
				return nil, fmt.Errorf("csv: write row: %w", err)
			}
		}
		grand = grand.Add(subtotal)
		subtotalRow := []string{pub.PublicationName + " SUBTOTAL", "", "", "", Money(subtotal)}
		if err := w.Write(subtotalRow); err != nil {
			return nil, fmt.Errorf("csv: write subtotal: %w", err)
		}
	}

	if err := w.Write([]string{"", "", "", "", ""}); err != nil {
		return nil, fmt.Errorf("csv: write spacer: %w", err)
	}
	for _, ch := range channelOrder {
		row := []string{fmt.Sprintf("%s TOTAL", ch), "", "", "", Money(channelTotals[ch])}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csv: write channel total: %w", err)
		}
	}

	if err := w.Write([]string{"TOTAL MONTHLY COST", "", "", "", Money(grand)}); err != nil {
		return nil, fmt.Errorf("csv: write total: %w", err)
	}
	if pkg.DurationMonths > 1 {
		term := grand.Mul(decimal.NewFromFloat(pkg.DurationMonths))
		label := fmt.Sprintf("TOTAL FOR %s MONTHS", formatDuration(pkg.DurationMonths))
		if err := w.Write([]string{label, "", "", "", Money(term)}); err != nil {
			return nil, fmt.Errorf("csv: write term total: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}

// rateCell compresses the pricing model and frequency into one cell so the
// document stays five columns wide. Impression models show the reach percent,
// flat models need no multiplier.
func rateCell(item domain.LineItem) string {
	switch {
	case item.PricingModel.ImpressionBased():
		return fmt.Sprintf("%s @ %d%%", item.PricingModel, item.Frequency)
	case item.PricingModel == domain.PricingFlat || item.PricingModel == domain.PricingMonthly:
		return string(item.PricingModel)
	default:
		return fmt.Sprintf("%s x %s", item.PricingModel, strconv.Itoa(item.Frequency))
	}
}

// Money formats a decimal amount as a dollar string with two places.
func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func formatDuration(months float64) string {
	return strconv.FormatFloat(months, 'f', -1, 64)
}
