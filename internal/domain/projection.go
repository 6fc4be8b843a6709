package domain

import (
	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// YearRecord is one output row of a projection. All balances are
// start-of-year snapshots, taken before that year's contribution or
// withdrawal and before growth is applied.
type YearRecord struct {
	Age             int             `json:"age"`
	TotalBalance    decimal.Decimal `json:"total_balance"`
	Withdrawal      decimal.Decimal `json:"withdrawal"`
	AfterTaxMonthly decimal.Decimal `json:"after_tax_monthly"`
	PretaxBalance   decimal.Decimal `json:"pretax_balance"`
	AfterTaxBalance decimal.Decimal `json:"after_tax_balance"`
}

// MonthlyWithdrawal returns the gross withdrawal spread over twelve months.
// It is derived at render time, not stored on the record.
func (yr *YearRecord) MonthlyWithdrawal() decimal.Decimal {
	return yr.Withdrawal.Div(monthsPerYear)
}

// IsDepleted reports whether the savings were exhausted at the start of
// this year.
func (yr *YearRecord) IsDepleted() bool {
	return yr.TotalBalance.LessThanOrEqual(decimal.Zero)
}

// Projection is the ordered output of one engine run: one YearRecord per
// age from CurrentAge through FinalAge inclusive, in increasing age order.
type Projection []YearRecord

// FinalBalance returns the total balance reported for the last simulated
// year, or zero for an empty projection.
func (p Projection) FinalBalance() decimal.Decimal {
	if len(p) == 0 {
		return decimal.Zero
	}
	return p[len(p)-1].TotalBalance
}

// DepletionAge returns the first age whose record shows exhausted savings.
// The second return is false when the balance outlasts the projection.
func (p Projection) DepletionAge() (int, bool) {
	for i := range p {
		if p[i].IsDepleted() {
			return p[i].Age, true
		}
	}
	return 0, false
}

// ProjectionResult pairs a projection with the parameters that produced it,
// the unit formatters consume and the JSON output serializes.
type ProjectionResult struct {
	Parameters SimulationParameters `json:"parameters"`
	Records    Projection           `json:"records"`
}
