package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/nestegg/balance-projector/internal/domain"
)

// ConsoleVerboseFormatter renders the console layout with the per-bucket
// breakdown columns and a closing balance summary.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console-verbose" }

func (c ConsoleVerboseFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	writeParameterSummary(&buf, result.Parameters)

	fmt.Fprintf(&buf, "\n%4s    %15s    %15s    %15s    %12s    %12s    %12s\n",
		"Age", "Balance", "Pre-Tax", "After-Tax", "Yearly", "Monthly", "After Tax")
	fmt.Fprintln(&buf, strings.Repeat("-", 108))
	for i := range result.Records {
		rec := &result.Records[i]
		fmt.Fprintf(&buf, "%4d    $%14s    $%14s    $%14s    $%10s    $%10s    $%10s\n",
			rec.Age,
			groupThousands(rec.TotalBalance.StringFixed(2)),
			groupThousands(rec.PretaxBalance.StringFixed(2)),
			groupThousands(rec.AfterTaxBalance.StringFixed(2)),
			groupThousands(rec.Withdrawal.StringFixed(2)),
			groupThousands(rec.MonthlyWithdrawal().StringFixed(2)),
			groupThousands(rec.AfterTaxMonthly.StringFixed(2)),
		)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Final Balance: %s\n", FormatCurrency(result.Records.FinalBalance()))
	if age, ok := result.Records.DepletionAge(); ok {
		fmt.Fprintf(&buf, "Savings Depleted At Age: %d\n", age)
	}
	return buf.Bytes(), nil
}
