package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"chicago-hub/internal/core/domain"
	"chicago-hub/internal/core/pricing"
)

const ioRule = "================================================================"

// InsertionOrder renders a package as a plain-text insertion order with a
// client block, per-publication line item listing, totals and a signature
// block. The hub name heads the document; now stamps the issue date.
func InsertionOrder(pkg *domain.Package, hubName string, now time.Time) []byte {
	var b strings.Builder

	b.WriteString(ioRule + "\n")
	b.WriteString("INSERTION ORDER\n")
	if hubName != "" {
		b.WriteString(hubName + "\n")
	}
	b.WriteString(ioRule + "\n\n")

	fmt.Fprintf(&b, "Date:           %s\n", now.Format("January 2, 2006"))
	fmt.Fprintf(&b, "Order ID:       %s\n", pkg.ID)
	fmt.Fprintf(&b, "Package:        %s\n", pkg.Name)
	if pkg.ClientName != "" {
		fmt.Fprintf(&b, "Client:         %s\n", pkg.ClientName)
	}
	fmt.Fprintf(&b, "Term:           %s month(s)\n\n", formatDuration(pkg.DurationMonths))

	monthly := pricing.TotalMonthlyCost(pkg.Items())
	for _, pub := range pkg.Publications {
		fmt.Fprintf(&b, "%s\n", pub.PublicationName)
		b.WriteString(strings.Repeat("-", len(pub.PublicationName)) + "\n")
		for _, item := range pub.Items {
			cost := pricing.MonthlyCost(item)
			fmt.Fprintf(&b, "  %-32s %-16s %s x%-4d %12s/mo\n",
				item.ItemName, item.Channel, item.PricingModel, item.Frequency, Money(cost))
		}
		subtotal := pricing.TotalMonthlyCost(pub.Items)
		fmt.Fprintf(&b, "  %-58s %12s/mo\n\n", "Subtotal", Money(subtotal))
	}

	b.WriteString(ioRule + "\n")
	fmt.Fprintf(&b, "MONTHLY TOTAL:  %s\n", Money(monthly))
	if pkg.DurationMonths != 1 {
		term := monthly.Mul(decimal.NewFromFloat(pkg.DurationMonths))
		fmt.Fprintf(&b, "TERM TOTAL:     %s (%s months)\n", Money(term), formatDuration(pkg.DurationMonths))
	}
	b.WriteString(ioRule + "\n\n")

	b.WriteString("This insertion order confirms the advertising commitment\n")
	b.WriteString("described above. Rates are monthly unless noted.\n\n")
	b.WriteString("Client Signature:   ____________________________  Date: __________\n\n")
	b.WriteString("Hub Representative: ____________________________  Date: __________\n")

	return []byte(b.String())
}
