package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/nestegg/balance-projector/internal/domain"
)

// CSVExporter writes one row per projected year, raw two-decimal values
// without currency symbols so the output loads cleanly into spreadsheets.
type CSVExporter struct{}

func (c CSVExporter) Name() string { return "csv" }

func (c CSVExporter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"age", "total_balance", "pretax_balance", "after_tax_balance", "withdrawal", "monthly_withdrawal", "after_tax_monthly"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range result.Records {
		rec := &result.Records[i]
		row := []string{
			strconv.Itoa(rec.Age),
			rec.TotalBalance.StringFixed(2),
			rec.PretaxBalance.StringFixed(2),
			rec.AfterTaxBalance.StringFixed(2),
			rec.Withdrawal.StringFixed(2),
			rec.MonthlyWithdrawal().StringFixed(2),
			rec.AfterTaxMonthly.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
