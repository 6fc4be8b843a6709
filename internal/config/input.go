package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/nestegg/balance-projector/internal/domain"
)

var maxPercent = decimal.NewFromInt(100)

// InputParser handles parameter files and input validation.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads simulation parameters from a YAML file and validates
// them with ValidateParameters.
func (ip *InputParser) LoadFromFile(filename string) (*domain.SimulationParameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameter file %s: %w", filename, err)
	}

	var params domain.SimulationParameters
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateParameters(&params); err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}

	return &params, nil
}

// ValidateParameters checks every precondition the projection engine
// trusts. Each violated condition yields its own error, and validation
// always runs before the engine does.
func (ip *InputParser) ValidateParameters(params *domain.SimulationParameters) error {
	if err := ip.validateAges(params); err != nil {
		return err
	}
	if err := ip.validateRates(params); err != nil {
		return err
	}
	return ip.validateBalances(params)
}

func (ip *InputParser) validateAges(params *domain.SimulationParameters) error {
	if params.FinalAge <= params.CurrentAge {
		return fmt.Errorf("final age must be greater than current age")
	}
	if params.RetirementAge < params.CurrentAge {
		return fmt.Errorf("retirement age must be greater than or equal to current age")
	}
	if params.RetirementAge > params.FinalAge {
		return fmt.Errorf("retirement age must be less than or equal to final age")
	}
	return nil
}

func (ip *InputParser) validateRates(params *domain.SimulationParameters) error {
	if outsidePercentRange(params.YearlyReturn) {
		return fmt.Errorf("yearly return must be between 0 and 100")
	}
	if outsidePercentRange(params.RetirementReturn) {
		return fmt.Errorf("retirement return must be between 0 and 100")
	}
	if outsidePercentRange(params.WithdrawalRate) {
		return fmt.Errorf("withdrawal rate must be between 0 and 100")
	}
	if outsidePercentRange(params.TaxRate) {
		return fmt.Errorf("tax rate must be between 0 and 100")
	}
	if outsidePercentRange(params.WithdrawalIncrease) {
		return fmt.Errorf("withdrawal increase rate must be between 0 and 100")
	}
	return nil
}

func (ip *InputParser) validateBalances(params *domain.SimulationParameters) error {
	if params.CurrentAfterTaxBalance.LessThan(decimal.Zero) {
		return fmt.Errorf("current after-tax balance cannot be negative")
	}
	if params.CurrentAfterTaxBalance.GreaterThan(params.CurrentBalance) {
		return fmt.Errorf("current after-tax balance cannot exceed current balance")
	}
	if params.YearlyContributionAfterTax.LessThan(decimal.Zero) {
		return fmt.Errorf("yearly after-tax contribution cannot be negative")
	}
	return nil
}

func outsidePercentRange(rate decimal.Decimal) bool {
	return rate.LessThan(decimal.Zero) || rate.GreaterThan(maxPercent)
}

// ExampleParameters returns a complete parameter set demonstrating the
// file format accepted by LoadFromFile.
func (ip *InputParser) ExampleParameters() *domain.SimulationParameters {
	return &domain.SimulationParameters{
		CurrentAge:                 35,
		FinalAge:                   90,
		RetirementAge:              65,
		CurrentBalance:             decimal.NewFromInt(150000),
		CurrentAfterTaxBalance:     decimal.NewFromInt(30000),
		YearlyContribution:         decimal.NewFromInt(15000),
		YearlyContributionAfterTax: decimal.NewFromInt(5000),
		YearlyReturn:               decimal.NewFromInt(7),
		RetirementReturn:           decimal.NewFromInt(4),
		WithdrawalRate:             decimal.NewFromInt(4),
		WithdrawalIncrease:         decimal.NewFromInt(2),
		TaxRate:                    decimal.NewFromInt(22),
	}
}
