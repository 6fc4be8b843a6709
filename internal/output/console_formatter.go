package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/nestegg/balance-projector/internal/domain"
)

// ConsoleFormatter renders the parameter summary and the fixed-width
// projection table in the tool's original console layout.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	writeParameterSummary(&buf, result.Parameters)

	fmt.Fprintf(&buf, "\n%4s    %15s    %12s    %12s    %12s\n", "Age", "Balance", "Yearly", "Monthly", "After Tax")
	fmt.Fprintln(&buf, strings.Repeat("-", 70))
	for i := range result.Records {
		rec := &result.Records[i]
		fmt.Fprintf(&buf, "%4d    $%14s    $%10s    $%10s    $%10s\n",
			rec.Age,
			groupThousands(rec.TotalBalance.StringFixed(2)),
			groupThousands(rec.Withdrawal.StringFixed(2)),
			groupThousands(rec.MonthlyWithdrawal().StringFixed(2)),
			groupThousands(rec.AfterTaxMonthly.StringFixed(2)),
		)
	}
	return buf.Bytes(), nil
}

// writeParameterSummary echoes the parsed inputs ahead of the table, one
// labelled line per input in flag order.
func writeParameterSummary(buf *bytes.Buffer, params domain.SimulationParameters) {
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "Retirement Balance Projections:")
	fmt.Fprintf(buf, "Current Age: %d\n", params.CurrentAge)
	fmt.Fprintf(buf, "Final Age: %d\n", params.FinalAge)
	fmt.Fprintf(buf, "Current Balance: %s\n", FormatCurrency(params.CurrentBalance))
	fmt.Fprintf(buf, "Current After-Tax Balance: %s\n", FormatCurrency(params.CurrentAfterTaxBalance))
	fmt.Fprintf(buf, "Yearly Contribution: %s\n", FormatCurrency(params.YearlyContribution))
	fmt.Fprintf(buf, "Yearly After-Tax Contribution: %s\n", FormatCurrency(params.YearlyContributionAfterTax))
	fmt.Fprintf(buf, "Yearly Return: %s\n", FormatRate(params.YearlyReturn))
	fmt.Fprintf(buf, "Retirement Age: %d\n", params.RetirementAge)
	fmt.Fprintf(buf, "Withdrawal Rate: %s\n", FormatRate(params.WithdrawalRate))
	fmt.Fprintf(buf, "Retirement Return: %s\n", FormatRate(params.RetirementReturn))
	fmt.Fprintf(buf, "Tax Rate: %s\n", FormatRate(params.TaxRate))
	fmt.Fprintf(buf, "Withdrawal Increase: %s\n", FormatRate(params.WithdrawalIncrease))
}
