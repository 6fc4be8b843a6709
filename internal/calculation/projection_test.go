package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestegg/balance-projector/internal/domain"
)

func TestProjectTwoYearWalkthrough(t *testing.T) {
	params := domain.SimulationParameters{
		CurrentAge:         30,
		FinalAge:           31,
		RetirementAge:      31,
		CurrentBalance:     decimal.NewFromInt(1000),
		YearlyContribution: decimal.NewFromInt(100),
		YearlyReturn:       decimal.NewFromInt(10),
		RetirementReturn:   decimal.NewFromInt(4),
		WithdrawalRate:     decimal.NewFromInt(4),
	}

	projection := NewProjectionEngine().Project(params)
	require.Len(t, projection, 2)

	first := projection[0]
	assert.Equal(t, 30, first.Age)
	assert.True(t, first.TotalBalance.Equal(decimal.NewFromInt(1000)),
		"expected starting balance 1000, got %s", first.TotalBalance)
	assert.True(t, first.Withdrawal.IsZero(), "no withdrawal before retirement, got %s", first.Withdrawal)
	assert.True(t, first.AfterTaxMonthly.IsZero())
	assert.True(t, first.PretaxBalance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, first.AfterTaxBalance.IsZero())

	second := projection[1]
	assert.Equal(t, 31, second.Age)
	// (1000 + 100) * 1.10 = 1210
	assert.True(t, second.TotalBalance.Equal(decimal.NewFromInt(1210)),
		"expected balance 1210, got %s", second.TotalBalance)
	// 1210 * 0.04 = 48.40
	assert.True(t, second.Withdrawal.Equal(decimal.NewFromFloat(48.4)),
		"expected withdrawal 48.40, got %s", second.Withdrawal)
	// 48.40 / 12 ~= 4.0333
	expectedMonthly := decimal.NewFromFloat(4.0333)
	assert.True(t, second.AfterTaxMonthly.Sub(expectedMonthly).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"expected after-tax monthly near %s, got %s", expectedMonthly, second.AfterTaxMonthly)
}

func TestProjectHorizonAndAges(t *testing.T) {
	tests := []struct {
		name          string
		currentAge    int
		finalAge      int
		retirementAge int
		wantYears     int
	}{
		{"multi-decade run", 25, 90, 65, 66},
		{"two years", 30, 31, 31, 2},
		{"retire immediately", 60, 75, 60, 16},
		{"retire at final age", 50, 70, 70, 21},
	}

	engine := NewProjectionEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := domain.SimulationParameters{
				CurrentAge:         tt.currentAge,
				FinalAge:           tt.finalAge,
				RetirementAge:      tt.retirementAge,
				CurrentBalance:     decimal.NewFromInt(100000),
				YearlyContribution: decimal.NewFromInt(5000),
				YearlyReturn:       decimal.NewFromInt(7),
				RetirementReturn:   decimal.NewFromInt(4),
				WithdrawalRate:     decimal.NewFromInt(4),
				WithdrawalIncrease: decimal.NewFromInt(2),
				TaxRate:            decimal.NewFromInt(15),
			}

			projection := engine.Project(params)
			require.Len(t, projection, tt.wantYears)
			for i, record := range projection {
				assert.Equal(t, tt.currentAge+i, record.Age, "record %d has the wrong age", i)
			}
		})
	}
}

func TestProjectAccumulationPhase(t *testing.T) {
	params := domain.SimulationParameters{
		CurrentAge:                 30,
		FinalAge:                   60,
		RetirementAge:              55,
		CurrentBalance:             decimal.NewFromInt(50000),
		CurrentAfterTaxBalance:     decimal.NewFromInt(10000),
		YearlyContribution:         decimal.NewFromInt(6000),
		YearlyContributionAfterTax: decimal.NewFromInt(2000),
		YearlyReturn:               decimal.NewFromInt(8),
		RetirementReturn:           decimal.NewFromInt(3),
		WithdrawalRate:             decimal.NewFromInt(4),
		WithdrawalIncrease:         decimal.NewFromInt(2),
		TaxRate:                    decimal.NewFromInt(20),
	}

	projection := NewProjectionEngine().Project(params)
	require.NotEmpty(t, projection)

	first := projection[0]
	assert.True(t, first.TotalBalance.Equal(params.CurrentBalance),
		"first record should report the starting balance, got %s", first.TotalBalance)
	assert.True(t, first.PretaxBalance.Equal(decimal.NewFromInt(40000)))
	assert.True(t, first.AfterTaxBalance.Equal(decimal.NewFromInt(10000)))

	growth := decimal.NewFromFloat(1.08)
	contributions := decimal.NewFromInt(8000)
	for i, record := range projection {
		if record.Age >= params.RetirementAge {
			break
		}
		assert.True(t, record.Withdrawal.IsZero(), "age %d: withdrawal before retirement", record.Age)
		assert.True(t, record.AfterTaxMonthly.IsZero(), "age %d: monthly income before retirement", record.Age)

		next := projection[i+1]
		expected := record.TotalBalance.Add(contributions).Mul(growth)
		assert.True(t, next.TotalBalance.Equal(expected),
			"age %d: expected next balance %s, got %s", record.Age, expected, next.TotalBalance)
	}
}

func TestProjectWithdrawalSchedule(t *testing.T) {
	params := domain.SimulationParameters{
		CurrentAge:                 55,
		FinalAge:                   70,
		RetirementAge:              60,
		CurrentBalance:             decimal.NewFromInt(400000),
		CurrentAfterTaxBalance:     decimal.NewFromInt(100000),
		YearlyContribution:         decimal.NewFromInt(10000),
		YearlyContributionAfterTax: decimal.NewFromInt(5000),
		YearlyReturn:               decimal.NewFromInt(6),
		RetirementReturn:           decimal.NewFromInt(3),
		WithdrawalRate:             decimal.NewFromInt(4),
		WithdrawalIncrease:         decimal.NewFromInt(3),
		TaxRate:                    decimal.NewFromInt(22),
	}

	projection := NewProjectionEngine().Project(params)
	require.Len(t, projection, 16)

	// The base is fixed at the retirement year from that year's balance.
	retirementIdx := params.RetirementAge - params.CurrentAge
	atRetirement := projection[retirementIdx]
	require.Equal(t, params.RetirementAge, atRetirement.Age)
	expectedBase := atRetirement.TotalBalance.Mul(decimal.NewFromFloat(0.04))
	assert.True(t, atRetirement.Withdrawal.Equal(expectedBase),
		"expected first withdrawal %s, got %s", expectedBase, atRetirement.Withdrawal)

	// Every later year escalates the prior withdrawal by the increase rate,
	// regardless of how the balance moves.
	escalation := decimal.NewFromFloat(1.03)
	for i := retirementIdx + 1; i < len(projection); i++ {
		expected := projection[i-1].Withdrawal.Mul(escalation)
		assert.True(t, projection[i].Withdrawal.Equal(expected),
			"age %d: expected withdrawal %s, got %s", projection[i].Age, expected, projection[i].Withdrawal)
	}
}

func TestProjectBucketSplitWithTax(t *testing.T) {
	params := domain.SimulationParameters{
		CurrentAge:             65,
		FinalAge:               66,
		RetirementAge:          65,
		CurrentBalance:         decimal.NewFromInt(1000),
		CurrentAfterTaxBalance: decimal.NewFromInt(250),
		YearlyReturn:           decimal.NewFromInt(7),
		RetirementReturn:       decimal.NewFromInt(0),
		WithdrawalRate:         decimal.NewFromInt(10),
		TaxRate:                decimal.NewFromInt(20),
	}

	projection := NewProjectionEngine().Project(params)
	require.Len(t, projection, 2)

	// Year one: withdrawal 100 splits 75/25 along the bucket ratio. The
	// pre-tax share is taxed at 20%, so monthly = (75*0.8 + 25) / 12.
	first := projection[0]
	assert.True(t, first.Withdrawal.Equal(decimal.NewFromInt(100)))
	expectedMonthly := decimal.NewFromInt(85).Div(decimal.NewFromInt(12))
	assert.True(t, first.AfterTaxMonthly.Equal(expectedMonthly),
		"expected monthly %s, got %s", expectedMonthly, first.AfterTaxMonthly)

	// Year two: each bucket shed exactly its share, growth was flat.
	second := projection[1]
	assert.True(t, second.PretaxBalance.Equal(decimal.NewFromInt(675)),
		"expected pre-tax 675, got %s", second.PretaxBalance)
	assert.True(t, second.AfterTaxBalance.Equal(decimal.NewFromInt(225)),
		"expected after-tax 225, got %s", second.AfterTaxBalance)
	assert.True(t, second.TotalBalance.Equal(decimal.NewFromInt(900)))
	assert.True(t, second.Withdrawal.Equal(decimal.NewFromInt(100)))
	assert.True(t, second.AfterTaxMonthly.Equal(expectedMonthly),
		"ratios are unchanged, monthly income should match year one")
}

func TestProjectDepletionClampsBuckets(t *testing.T) {
	params := domain.SimulationParameters{
		CurrentAge:             70,
		FinalAge:               74,
		RetirementAge:          70,
		CurrentBalance:         decimal.NewFromInt(1000),
		CurrentAfterTaxBalance: decimal.NewFromInt(400),
		YearlyReturn:           decimal.NewFromInt(5),
		RetirementReturn:       decimal.NewFromInt(0),
		WithdrawalRate:         decimal.NewFromInt(100),
	}

	projection := NewProjectionEngine().Project(params)
	require.Len(t, projection, 5)

	first := projection[0]
	assert.True(t, first.TotalBalance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, first.Withdrawal.Equal(decimal.NewFromInt(1000)))

	// Everything was withdrawn in year one; the buckets stay pinned at
	// zero with no division errors, while the base keeps its schedule.
	for _, record := range projection[1:] {
		assert.True(t, record.TotalBalance.IsZero(), "age %d: balance should be zero, got %s", record.Age, record.TotalBalance)
		assert.True(t, record.PretaxBalance.IsZero(), "age %d: pre-tax bucket should be zero", record.Age)
		assert.True(t, record.AfterTaxBalance.IsZero(), "age %d: after-tax bucket should be zero", record.Age)
		assert.True(t, record.AfterTaxMonthly.IsZero(), "age %d: no income from an empty balance", record.Age)
		assert.True(t, record.Withdrawal.Equal(decimal.NewFromInt(1000)), "age %d: schedule keeps the base", record.Age)
	}
}

func TestProjectOverdraftClampsAfterOneYear(t *testing.T) {
	params := domain.SimulationParameters{
		CurrentAge:         70,
		FinalAge:           75,
		RetirementAge:      70,
		CurrentBalance:     decimal.NewFromInt(1000),
		YearlyReturn:       decimal.NewFromInt(5),
		RetirementReturn:   decimal.NewFromInt(0),
		WithdrawalRate:     decimal.NewFromInt(50),
		WithdrawalIncrease: decimal.NewFromInt(100),
	}

	projection := NewProjectionEngine().Project(params)
	require.Len(t, projection, 6)

	// The doubling withdrawal overshoots in year two, so year three reports
	// the overdraft once and the clamp zeroes the buckets from then on.
	want := []struct {
		age          int
		totalBalance decimal.Decimal
		withdrawal   decimal.Decimal
	}{
		{70, decimal.NewFromInt(1000), decimal.NewFromInt(500)},
		{71, decimal.NewFromInt(500), decimal.NewFromInt(1000)},
		{72, decimal.NewFromInt(-500), decimal.NewFromInt(2000)},
		{73, decimal.Zero, decimal.NewFromInt(4000)},
		{74, decimal.Zero, decimal.NewFromInt(8000)},
		{75, decimal.Zero, decimal.NewFromInt(16000)},
	}

	for i, w := range want {
		record := projection[i]
		assert.Equal(t, w.age, record.Age)
		assert.True(t, record.TotalBalance.Equal(w.totalBalance),
			"age %d: expected balance %s, got %s", w.age, w.totalBalance, record.TotalBalance)
		assert.True(t, record.Withdrawal.Equal(w.withdrawal),
			"age %d: expected withdrawal %s, got %s", w.age, w.withdrawal, record.Withdrawal)
	}

	// Once the overdraft year has been observed, nothing goes negative again.
	for _, record := range projection[3:] {
		assert.True(t, record.PretaxBalance.IsZero(), "age %d: pre-tax bucket should be zero", record.Age)
		assert.True(t, record.AfterTaxBalance.IsZero(), "age %d: after-tax bucket should be zero", record.Age)
		assert.True(t, record.AfterTaxMonthly.IsZero(), "age %d: no income from an empty balance", record.Age)
	}
}

func TestProjectSingleBucketEquivalence(t *testing.T) {
	params := domain.SimulationParameters{
		CurrentAge:         40,
		FinalAge:           60,
		RetirementAge:      55,
		CurrentBalance:     decimal.NewFromInt(200000),
		YearlyContribution: decimal.NewFromInt(12000),
		YearlyReturn:       decimal.NewFromInt(6),
		RetirementReturn:   decimal.NewFromInt(3),
		WithdrawalRate:     decimal.NewFromInt(4),
		WithdrawalIncrease: decimal.NewFromInt(2),
		TaxRate:            decimal.NewFromInt(25),
	}

	projection := NewProjectionEngine().Project(params)
	require.Len(t, projection, 21)

	// With the after-tax bucket empty throughout, the totals must follow
	// the plain single-balance recurrence with the same ordering: snapshot,
	// cash flow, growth.
	balance := params.CurrentBalance
	base := decimal.Zero
	yearlyGrowth := decimalOne.Add(params.YearlyReturn.Div(decimalHundred))
	retirementGrowth := decimalOne.Add(params.RetirementReturn.Div(decimalHundred))
	rate := params.WithdrawalRate.Div(decimalHundred)
	escalation := decimalOne.Add(params.WithdrawalIncrease.Div(decimalHundred))

	for i, record := range projection {
		age := params.CurrentAge + i
		assert.True(t, record.TotalBalance.Equal(balance),
			"age %d: expected total %s, got %s", age, balance, record.TotalBalance)
		assert.True(t, record.AfterTaxBalance.IsZero(), "age %d: after-tax bucket should stay empty", age)

		if age < params.RetirementAge {
			balance = balance.Add(params.YearlyContribution).Mul(yearlyGrowth)
			continue
		}
		if age == params.RetirementAge {
			base = balance.Mul(rate)
		} else {
			base = base.Mul(escalation)
		}
		if balance.LessThanOrEqual(decimal.Zero) {
			balance = decimal.Zero
		} else {
			balance = balance.Sub(base)
		}
		balance = balance.Mul(retirementGrowth)
	}
}

func TestBucketRatios(t *testing.T) {
	tests := []struct {
		name         string
		pretax       decimal.Decimal
		afterTax     decimal.Decimal
		wantPretax   decimal.Decimal
		wantAfterTax decimal.Decimal
	}{
		{"three to one split", decimal.NewFromInt(750), decimal.NewFromInt(250), decimal.NewFromFloat(0.75), decimal.NewFromFloat(0.25)},
		{"all pretax", decimal.NewFromInt(1000), decimal.Zero, decimal.NewFromInt(1), decimal.Zero},
		{"all after tax", decimal.Zero, decimal.NewFromInt(500), decimal.Zero, decimal.NewFromInt(1)},
		{"empty buckets", decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero},
		{"negative total", decimal.NewFromInt(-100), decimal.NewFromInt(40), decimal.Zero, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPretax, gotAfterTax := bucketRatios(tt.pretax, tt.afterTax)
			assert.True(t, gotPretax.Equal(tt.wantPretax),
				"pre-tax ratio: expected %s, got %s", tt.wantPretax, gotPretax)
			assert.True(t, gotAfterTax.Equal(tt.wantAfterTax),
				"after-tax ratio: expected %s, got %s", tt.wantAfterTax, gotAfterTax)
		})
	}
}
