package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nestegg/balance-projector/internal/calculation"
	"github.com/nestegg/balance-projector/internal/config"
	"github.com/nestegg/balance-projector/internal/domain"
	"github.com/nestegg/balance-projector/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "nestegg %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// requiredFlags are the inputs the root command insists on unless a
// parameter file supplies them through --input.
var requiredFlags = []string{
	"current-age",
	"final-age",
	"current-balance",
	"yearly-contribution",
	"yearly-return",
	"retirement-age",
	"withdrawal-rate",
	"retirement-return",
	"tax-rate",
	"withdrawal-increase",
}

var rootCmd = &cobra.Command{
	Use:   "nestegg",
	Short: "Retirement savings balance projector",
	Long: `Projects a retirement savings balance year by year, through accumulation
and decumulation, across a pre-tax and an after-tax (Roth) bucket.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()

		var params *domain.SimulationParameters
		inputFile, _ := cmd.Flags().GetString("input")
		if inputFile != "" {
			loaded, err := parser.LoadFromFile(inputFile)
			if err != nil {
				return err
			}
			params = loaded
		} else {
			if err := checkRequiredFlags(cmd); err != nil {
				return err
			}
			params = &domain.SimulationParameters{}
		}
		applyFlagOverrides(cmd, params)

		if err := parser.ValidateParameters(params); err != nil {
			return err
		}

		engine := calculation.NewProjectionEngine()
		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			engine.SetLogger(simpleCLILogger{})
		}
		engine.Debug = debugMode

		projection := engine.Project(*params)
		result := &domain.ProjectionResult{Parameters: *params, Records: projection}

		formatName, _ := cmd.Flags().GetString("format")
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose && output.NormalizeFormatName(formatName) == "console" {
			formatName = "console-verbose"
		}

		data, err := output.FormatResult(result, formatName)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

// checkRequiredFlags enforces the required inputs by hand so that --input
// can stand in for them; cobra's own required marking would demand every
// flag even when a parameter file is given.
func checkRequiredFlags(cmd *cobra.Command) error {
	var missing []string
	for _, name := range requiredFlags {
		if !cmd.Flags().Changed(name) {
			missing = append(missing, fmt.Sprintf("%q", name))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", "))
	}
	return nil
}

// applyFlagOverrides copies every explicitly set flag onto the parameters,
// on top of whatever a parameter file provided.
func applyFlagOverrides(cmd *cobra.Command, params *domain.SimulationParameters) {
	flags := cmd.Flags()
	if flags.Changed("current-age") {
		params.CurrentAge, _ = flags.GetInt("current-age")
	}
	if flags.Changed("final-age") {
		params.FinalAge, _ = flags.GetInt("final-age")
	}
	if flags.Changed("retirement-age") {
		params.RetirementAge, _ = flags.GetInt("retirement-age")
	}
	if flags.Changed("current-balance") {
		v, _ := flags.GetFloat64("current-balance")
		params.CurrentBalance = decimal.NewFromFloat(v)
	}
	if flags.Changed("current-after-tax-balance") {
		v, _ := flags.GetFloat64("current-after-tax-balance")
		params.CurrentAfterTaxBalance = decimal.NewFromFloat(v)
	}
	if flags.Changed("yearly-contribution") {
		v, _ := flags.GetFloat64("yearly-contribution")
		params.YearlyContribution = decimal.NewFromFloat(v)
	}
	if flags.Changed("yearly-contribution-after-tax") {
		v, _ := flags.GetFloat64("yearly-contribution-after-tax")
		params.YearlyContributionAfterTax = decimal.NewFromFloat(v)
	}
	if flags.Changed("yearly-return") {
		v, _ := flags.GetFloat64("yearly-return")
		params.YearlyReturn = decimal.NewFromFloat(v)
	}
	if flags.Changed("retirement-return") {
		v, _ := flags.GetFloat64("retirement-return")
		params.RetirementReturn = decimal.NewFromFloat(v)
	}
	if flags.Changed("withdrawal-rate") {
		v, _ := flags.GetFloat64("withdrawal-rate")
		params.WithdrawalRate = decimal.NewFromFloat(v)
	}
	if flags.Changed("withdrawal-increase") {
		v, _ := flags.GetFloat64("withdrawal-increase")
		params.WithdrawalIncrease = decimal.NewFromFloat(v)
	}
	if flags.Changed("tax-rate") {
		v, _ := flags.GetFloat64("tax-rate")
		params.TaxRate = decimal.NewFromFloat(v)
	}
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a parameter file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]

		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(inputFile); err != nil {
			return err
		}

		fmt.Printf("Parameter file %s is valid\n", inputFile)
		return nil
	},
}

var exampleConfigCmd = &cobra.Command{
	Use:   "example-config",
	Short: "Print an example parameter file",
	Long:  "Prints a complete YAML parameter file to stdout, suitable as a starting point for --input.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		data, err := yaml.Marshal(parser.ExampleParameters())
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rootCmd.Flags().Int("current-age", 0, "Current age")
	rootCmd.Flags().Int("final-age", 0, "Target final age for projections")
	rootCmd.Flags().Float64("current-balance", 0, "Current retirement account balance")
	rootCmd.Flags().Float64("current-after-tax-balance", 0, "Portion of the current balance held after tax (Roth)")
	rootCmd.Flags().Float64("yearly-contribution", 0, "Amount contributed per year")
	rootCmd.Flags().Float64("yearly-contribution-after-tax", 0, "Amount contributed per year to the after-tax bucket")
	rootCmd.Flags().Float64("yearly-return", 0, "Expected yearly return rate during accumulation as a percentage (e.g., 7 for 7%)")
	rootCmd.Flags().Int("retirement-age", 0, "Age at which to start withdrawals")
	rootCmd.Flags().Float64("withdrawal-rate", 0, "Annual withdrawal rate as a percentage (e.g., 4 for 4%)")
	rootCmd.Flags().Float64("retirement-return", 0, "Expected yearly return rate during retirement as a percentage (e.g., 4 for 4%)")
	rootCmd.Flags().Float64("tax-rate", 0, "Tax rate on pre-tax withdrawals as a percentage (e.g., 22 for 22%)")
	rootCmd.Flags().Float64("withdrawal-increase", 0, "Annual increase in withdrawal amount as a percentage (e.g., 2 for 2%)")
	rootCmd.Flags().String("input", "", "Load parameters from a YAML file; explicitly set flags override file values")
	rootCmd.Flags().StringP("format", "f", "console", "Output format (console, console-verbose, csv, json)")
	rootCmd.Flags().BoolP("verbose", "v", false, "Show the pre-tax/after-tax bucket breakdown per row")
	rootCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exampleConfigCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
