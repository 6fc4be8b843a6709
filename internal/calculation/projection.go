package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nestegg/balance-projector/internal/domain"
)

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalTwelve  = decimal.NewFromInt(12)
	decimalHundred = decimal.NewFromInt(100)
)

// Project simulates the savings balance one year per age, from CurrentAge
// through FinalAge inclusive. Ages before RetirementAge accumulate: each
// bucket receives its own contribution at year end. From RetirementAge on,
// a withdrawal fixed at retirement (total balance times the withdrawal
// rate) and escalated yearly by the withdrawal increase is split across
// the buckets in proportion to their start-of-year balances. Growth
// compounds both buckets after the year's cash flow, at the accumulation
// rate before retirement and the retirement rate from then on.
//
// Every record reports start-of-year values, captured before that year's
// cash flow and growth. The engine performs no validation and no I/O; the
// caller is expected to have validated the parameters.
func (pe *ProjectionEngine) Project(params domain.SimulationParameters) domain.Projection {
	yearlyReturn := params.YearlyReturn.Div(decimalHundred)
	retirementReturn := params.RetirementReturn.Div(decimalHundred)
	withdrawalRate := params.WithdrawalRate.Div(decimalHundred)
	withdrawalIncrease := params.WithdrawalIncrease.Div(decimalHundred)
	taxRate := params.TaxRate.Div(decimalHundred)

	pretax := params.PretaxBalance()
	afterTax := params.CurrentAfterTaxBalance

	projection := make(domain.Projection, 0, params.Horizon())

	// The withdrawal base is fixed once at the retirement year and carried
	// across iterations; it is never recomputed from the live balance.
	baseWithdrawal := decimal.Zero

	for age := params.CurrentAge; age <= params.FinalAge; age++ {
		totalBalance := pretax.Add(afterTax)

		withdrawal := decimal.Zero
		afterTaxMonthly := decimal.Zero
		pretaxShare := decimal.Zero
		afterTaxShare := decimal.Zero

		if age >= params.RetirementAge {
			if age == params.RetirementAge {
				baseWithdrawal = totalBalance.Mul(withdrawalRate)
				if pe.Debug {
					pe.Logger.Debugf("age %d: withdrawal base fixed at $%s", age, baseWithdrawal.StringFixed(2))
				}
			} else {
				baseWithdrawal = baseWithdrawal.Mul(decimalOne.Add(withdrawalIncrease))
			}
			withdrawal = baseWithdrawal

			pretaxRatio, afterTaxRatio := bucketRatios(pretax, afterTax)
			pretaxShare = withdrawal.Mul(pretaxRatio)
			afterTaxShare = withdrawal.Mul(afterTaxRatio)
			afterTaxMonthly = pretaxShare.Mul(decimalOne.Sub(taxRate)).Add(afterTaxShare).Div(decimalTwelve)
		}

		projection = append(projection, domain.YearRecord{
			Age:             age,
			TotalBalance:    totalBalance,
			Withdrawal:      withdrawal,
			AfterTaxMonthly: afterTaxMonthly,
			PretaxBalance:   pretax,
			AfterTaxBalance: afterTax,
		})

		// Cash flow comes after the snapshot: contributions while working,
		// the split withdrawal once retired. A non-positive total zeroes
		// both buckets for good.
		if age < params.RetirementAge {
			pretax = pretax.Add(params.YearlyContribution)
			afterTax = afterTax.Add(params.YearlyContributionAfterTax)
		} else if totalBalance.LessThanOrEqual(decimal.Zero) {
			pretax = decimal.Zero
			afterTax = decimal.Zero
		} else {
			pretax = pretax.Sub(pretaxShare)
			afterTax = afterTax.Sub(afterTaxShare)
		}

		growth := decimalOne.Add(yearlyReturn)
		if age >= params.RetirementAge {
			growth = decimalOne.Add(retirementReturn)
		}
		pretax = pretax.Mul(growth)
		afterTax = afterTax.Mul(growth)

		if pe.Debug {
			pe.Logger.Debugf("age %d: start total=$%s withdrawal=$%s year-end pretax=$%s after-tax=$%s",
				age, totalBalance.StringFixed(2), withdrawal.StringFixed(2),
				pretax.StringFixed(2), afterTax.StringFixed(2))
		}
	}

	return projection
}

// bucketRatios returns each bucket's share of the combined balance. Both
// ratios are zero when the combined balance is not positive, which keeps
// the withdrawal split free of division by zero and of negative drift.
func bucketRatios(pretax, afterTax decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	total := pretax.Add(afterTax)
	if total.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero
	}
	return pretax.Div(total), afterTax.Div(total)
}
