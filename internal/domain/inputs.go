package domain

import (
	"github.com/payoffcalc/payoff-calculator/pkg/money"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// PayoffInputs holds every parameter the calculator derives its scenarios from.
type PayoffInputs struct {
	Principal              money.Money     `yaml:"principal" json:"principal"`
	BalanceTransferFeeRate decimal.Decimal `yaml:"balance_transfer_fee_rate" json:"balance_transfer_fee_rate"`
	DesiredMonths          int             `yaml:"desired_months" json:"desired_months"`
	AdditionalPayment      money.Money     `yaml:"additional_payment" json:"additional_payment"`

	// Custom APY models what happens on the card's regular rate instead of the
	// promotional 0%. CustomAPY is a percentage: 21 means 21% per year.
	CustomAPYEnabled      bool            `yaml:"custom_apy_enabled" json:"custom_apy_enabled"`
	CustomAPY             decimal.Decimal `yaml:"custom_apy" json:"custom_apy"`
	CurrentMonthlyPayment money.Money     `yaml:"current_monthly_payment" json:"current_monthly_payment"`
}

// UnmarshalYAML accepts amounts written either as numbers or quoted strings.
// Blank or missing optional amounts default to zero.
func (pi *PayoffInputs) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Principal              string `yaml:"principal"`
		BalanceTransferFeeRate string `yaml:"balance_transfer_fee_rate"`
		DesiredMonths          int    `yaml:"desired_months"`
		AdditionalPayment      string `yaml:"additional_payment"`
		CustomAPYEnabled       bool   `yaml:"custom_apy_enabled"`
		CustomAPY              string `yaml:"custom_apy"`
		CurrentMonthlyPayment  string `yaml:"current_monthly_payment"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	principal, err := parseDecimal(aux.Principal)
	if err != nil {
		return err
	}
	feeRate, err := parseDecimal(aux.BalanceTransferFeeRate)
	if err != nil {
		return err
	}
	additional, err := parseDecimal(aux.AdditionalPayment)
	if err != nil {
		return err
	}
	apy, err := parseDecimal(aux.CustomAPY)
	if err != nil {
		return err
	}
	current, err := parseDecimal(aux.CurrentMonthlyPayment)
	if err != nil {
		return err
	}

	pi.Principal = money.NewMoneyFromDecimal(principal)
	pi.BalanceTransferFeeRate = feeRate
	pi.DesiredMonths = aux.DesiredMonths
	pi.AdditionalPayment = money.NewMoneyFromDecimal(additional)
	pi.CustomAPYEnabled = aux.CustomAPYEnabled
	pi.CustomAPY = apy
	pi.CurrentMonthlyPayment = money.NewMoneyFromDecimal(current)
	return nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// CustomAnnualRate converts the percentage APY into a fractional annual rate.
func (pi PayoffInputs) CustomAnnualRate() decimal.Decimal {
	return pi.CustomAPY.Div(decimal.NewFromInt(100))
}

// HasCurrentPaymentScenario reports whether the current-payment comparison applies.
func (pi PayoffInputs) HasCurrentPaymentScenario() bool {
	return pi.CustomAPYEnabled && pi.CurrentMonthlyPayment.IsPositive()
}
