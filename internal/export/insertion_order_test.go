package export

import (
	"strings"
	"testing"
	"time"
)

func TestInsertionOrder(t *testing.T) {
	pkg := singleItemPackage()
	pkg.ClientName = "Acme Hardware"
	pkg.DurationMonths = 6

	issued := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	out := string(InsertionOrder(pkg, "Chicago Independent Media", issued))

	for _, want := range []string{
		"INSERTION ORDER",
		"Chicago Independent Media",
		"Date:           January 15, 2026",
		"Client:         Acme Hardware",
		"Term:           6 month(s)",
		"The Daily Dispatch",
		"MONTHLY TOTAL:  $200.00",
		"TERM TOTAL:     $1200.00 (6 months)",
		"Client Signature:",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("order missing %q:\n%s", want, out)
		}
	}
}

// TestInsertionOrderSingleMonth omits the term total when the package runs
// one month.
func TestInsertionOrderSingleMonth(t *testing.T) {
	out := string(InsertionOrder(singleItemPackage(), "", time.Now()))
	if strings.Contains(out, "TERM TOTAL") {
		t.Fatalf("unexpected term total in one-month order:\n%s", out)
	}
}
