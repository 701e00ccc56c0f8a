package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/payoffcalc/payoff-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport formats results with the named formatter and writes them to path
// (or a timestamped file). It returns the file written.
func GenerateReport(results *domain.PayoffComparison, format, path string) (string, error) {
	f, err := Resolve(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, results, path, FileExtension(format))
}

// Resolve looks up a formatter, enriching the error with the available names and aliases.
func Resolve(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// SaveInputs writes inputs as YAML that config.InputParser can load back.
func SaveInputs(inputs *domain.PayoffInputs, filename string) error {
	b, err := yaml.Marshal(inputs)
	if err != nil {
		return fmt.Errorf("marshal inputs: %w", err)
	}
	return os.WriteFile(filename, b, 0644)
}
