package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/payoffcalc/payoff-calculator/internal/domain"
	"github.com/payoffcalc/payoff-calculator/pkg/money"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MaxDesiredMonths matches the simulation ceiling of the custom APY scenarios.
const MaxDesiredMonths = 1000

// ErrInvalidInputs is wrapped by every validation failure.
var ErrInvalidInputs = errors.New("invalid payoff inputs")

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads payoff inputs from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.PayoffInputs, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	inputs, err := ip.Parse(data)
	if err != nil {
		return nil, err
	}
	return inputs, nil
}

// Parse decodes and validates YAML input data.
func (ip *InputParser) Parse(data []byte) (*domain.PayoffInputs, error) {
	var inputs domain.PayoffInputs
	if err := yaml.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInputs(&inputs); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &inputs, nil
}

// ValidateInputs checks the inputs at the boundary. The calculation engine itself
// accepts anything and never fails.
func (ip *InputParser) ValidateInputs(inputs *domain.PayoffInputs) error {
	if inputs == nil {
		return fmt.Errorf("%w: no inputs provided", ErrInvalidInputs)
	}
	if !inputs.Principal.IsPositive() {
		return fmt.Errorf("%w: principal must be positive", ErrInvalidInputs)
	}
	if inputs.BalanceTransferFeeRate.IsNegative() {
		return fmt.Errorf("%w: balance transfer fee rate cannot be negative", ErrInvalidInputs)
	}
	if inputs.DesiredMonths <= 0 {
		return fmt.Errorf("%w: desired months must be positive", ErrInvalidInputs)
	}
	if inputs.DesiredMonths > MaxDesiredMonths {
		return fmt.Errorf("%w: desired months cannot exceed %d", ErrInvalidInputs, MaxDesiredMonths)
	}
	if inputs.AdditionalPayment.IsNegative() {
		return fmt.Errorf("%w: additional payment cannot be negative", ErrInvalidInputs)
	}

	// Checked even when disabled, so a later toggle cannot expose a bad value.
	if inputs.CustomAPY.IsNegative() {
		return fmt.Errorf("%w: custom APY cannot be negative", ErrInvalidInputs)
	}
	if inputs.CurrentMonthlyPayment.IsNegative() {
		return fmt.Errorf("%w: current monthly payment cannot be negative", ErrInvalidInputs)
	}

	return nil
}

// CreateExampleInputs returns the calculator's default inputs
func (ip *InputParser) CreateExampleInputs() *domain.PayoffInputs {
	return &domain.PayoffInputs{
		Principal:              money.NewMoney(9000),
		BalanceTransferFeeRate: decimal.NewFromFloat(0.05),
		DesiredMonths:          20,
		AdditionalPayment:      money.Zero(),
		CustomAPYEnabled:       false,
		CustomAPY:              decimal.NewFromInt(21),
		CurrentMonthlyPayment:  money.Zero(),
	}
}
