package domain

import (
	"github.com/shopspring/decimal"
)

// SimulationParameters holds every input needed for one projection run.
// Ages are whole years. All rate fields are percentages in [0, 100] as the
// user supplies them; the calculation engine divides by 100 before use.
type SimulationParameters struct {
	CurrentAge    int `yaml:"current_age" json:"current_age"`
	FinalAge      int `yaml:"final_age" json:"final_age"`
	RetirementAge int `yaml:"retirement_age" json:"retirement_age"`

	CurrentBalance             decimal.Decimal `yaml:"current_balance" json:"current_balance"`
	CurrentAfterTaxBalance     decimal.Decimal `yaml:"current_after_tax_balance,omitempty" json:"current_after_tax_balance"`
	YearlyContribution         decimal.Decimal `yaml:"yearly_contribution" json:"yearly_contribution"`
	YearlyContributionAfterTax decimal.Decimal `yaml:"yearly_contribution_after_tax,omitempty" json:"yearly_contribution_after_tax"`

	YearlyReturn       decimal.Decimal `yaml:"yearly_return" json:"yearly_return"`
	RetirementReturn   decimal.Decimal `yaml:"retirement_return" json:"retirement_return"`
	WithdrawalRate     decimal.Decimal `yaml:"withdrawal_rate" json:"withdrawal_rate"`
	WithdrawalIncrease decimal.Decimal `yaml:"withdrawal_increase" json:"withdrawal_increase"`
	TaxRate            decimal.Decimal `yaml:"tax_rate" json:"tax_rate"`
}

// Horizon returns the number of simulated years, one per age from
// CurrentAge through FinalAge inclusive.
func (sp *SimulationParameters) Horizon() int {
	return sp.FinalAge - sp.CurrentAge + 1
}

// PretaxBalance returns the starting pre-tax bucket balance, the portion of
// the current balance not held after tax.
func (sp *SimulationParameters) PretaxBalance() decimal.Decimal {
	return sp.CurrentBalance.Sub(sp.CurrentAfterTaxBalance)
}
