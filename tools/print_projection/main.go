package main

import (
	"fmt"
	"os"

	"github.com/nestegg/balance-projector/internal/calculation"
	"github.com/nestegg/balance-projector/internal/config"
	"github.com/nestegg/balance-projector/internal/domain"
)

// Quick probe for eyeballing engine numbers without the full CLI. Pass a
// parameter file, or run bare to use the built-in example.
func main() {
	parser := config.NewInputParser()

	var params *domain.SimulationParameters
	if len(os.Args) > 1 {
		loaded, err := parser.LoadFromFile(os.Args[1])
		if err != nil {
			panic(err)
		}
		params = loaded
	} else {
		params = parser.ExampleParameters()
	}

	projection := calculation.NewProjectionEngine().Project(*params)
	fmt.Printf("Years projected: %d\n", len(projection))

	atRetirement := projection[params.RetirementAge-params.CurrentAge]
	fmt.Printf("Balance at retirement (age %d): %s\n", atRetirement.Age, atRetirement.TotalBalance.StringFixed(2))
	fmt.Printf("First withdrawal: %s\n", atRetirement.Withdrawal.StringFixed(2))
	fmt.Printf("First after-tax monthly: %s\n", atRetirement.AfterTaxMonthly.StringFixed(2))
	fmt.Printf("Final balance (age %d): %s\n", params.FinalAge, projection.FinalBalance().StringFixed(2))
	if age, ok := projection.DepletionAge(); ok {
		fmt.Printf("Savings depleted at age %d\n", age)
	}
}
