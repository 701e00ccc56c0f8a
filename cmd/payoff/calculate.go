package main

import (
	"fmt"
	"strings"

	"github.com/payoffcalc/payoff-calculator/internal/calculation"
	"github.com/payoffcalc/payoff-calculator/internal/config"
	"github.com/payoffcalc/payoff-calculator/internal/domain"
	"github.com/payoffcalc/payoff-calculator/internal/output"
	"github.com/payoffcalc/payoff-calculator/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "PAYOFF"

func newCalculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the required payment and compare payoff scenarios",
		Example: `  payoff calculate --principal 9000 --fee-rate 0.05 --months 20 --additional 100
  payoff calculate --config inputs.yaml --format html --output report.html
  PAYOFF_CUSTOM_APY_ENABLED=true PAYOFF_CURRENT_PAYMENT=300 payoff calculate`,
		RunE: runCalculate,
	}

	f := cmd.Flags()
	f.StringP("config", "c", "", "YAML inputs file; flags and PAYOFF_* variables override it")
	f.String("principal", "", "balance transferred (e.g. 9000)")
	f.String("fee-rate", "", "balance transfer fee as a fraction (0.05 = 5%)")
	f.Int("months", 0, "promotional period in months")
	f.String("additional", "", "extra amount paid each month")
	f.Bool("custom-apy-enabled", false, "also simulate the debt at a regular APY")
	f.String("custom-apy", "", "regular APY as a percentage (21 = 21%)")
	f.String("current-payment", "", "monthly payment to test against the regular APY")
	f.StringP("format", "f", "console", "output format (see 'payoff formats')")
	f.StringP("output", "o", "", "write the report to this file instead of stdout")
	f.Bool("timestamped", false, "write the report to payoff_report_<timestamp>.<ext>")
	return cmd
}

func runCalculate(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if err := v.BindPFlags(cmd.InheritedFlags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	formatter, err := output.Resolve(v.GetString("format"))
	if err != nil {
		return err
	}

	inputs, err := loadInputs(v)
	if err != nil {
		return err
	}

	verbose := v.GetBool("verbose")
	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger.Sugar())
	engine.Debug = verbose
	results := engine.RunScenarios(*inputs)

	path := v.GetString("output")
	if path == "" && !v.GetBool("timestamped") {
		data, err := formatter.Format(results)
		if err != nil {
			return fmt.Errorf("format %s: %w", formatter.Name(), err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	written, err := output.WriteFormatted(formatter, results, path, output.FileExtension(formatter.Name()))
	if err != nil {
		return err
	}
	logger.Sugar().Infof("report written to %s", written)
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", written)
	return nil
}

// loadInputs starts from the calculator defaults or the --config file, then applies
// every flag or PAYOFF_* variable that was set, and validates the result.
func loadInputs(v *viper.Viper) (*domain.PayoffInputs, error) {
	parser := config.NewInputParser()
	inputs := parser.CreateExampleInputs()
	if path := v.GetString("config"); path != "" {
		loaded, err := parser.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		inputs = loaded
	}

	var err error
	if v.IsSet("principal") {
		if inputs.Principal, err = moneyValue(v, "principal"); err != nil {
			return nil, err
		}
	}
	if v.IsSet("fee-rate") {
		if inputs.BalanceTransferFeeRate, err = decimalValue(v, "fee-rate"); err != nil {
			return nil, err
		}
	}
	if v.IsSet("months") {
		inputs.DesiredMonths = v.GetInt("months")
	}
	if v.IsSet("additional") {
		if inputs.AdditionalPayment, err = moneyValue(v, "additional"); err != nil {
			return nil, err
		}
	}
	if v.IsSet("custom-apy-enabled") {
		inputs.CustomAPYEnabled = v.GetBool("custom-apy-enabled")
	}
	if v.IsSet("custom-apy") {
		if inputs.CustomAPY, err = decimalValue(v, "custom-apy"); err != nil {
			return nil, err
		}
	}
	if v.IsSet("current-payment") {
		if inputs.CurrentMonthlyPayment, err = moneyValue(v, "current-payment"); err != nil {
			return nil, err
		}
	}

	if err := parser.ValidateInputs(inputs); err != nil {
		return nil, err
	}
	return inputs, nil
}

func decimalValue(v *viper.Viper, key string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", key, raw, err)
	}
	return d, nil
}

func moneyValue(v *viper.Viper, key string) (money.Money, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return money.Zero(), nil
	}
	m, err := money.NewMoneyFromString(raw)
	if err != nil {
		return money.Zero(), fmt.Errorf("invalid --%s %q: %w", key, raw, err)
	}
	return m, nil
}
