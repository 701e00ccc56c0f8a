package output

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/payoffcalc/payoff-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned for format names that resolve to no formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(results *domain.PayoffComparison) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.PayoffComparison) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.PayoffComparison) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                      { return ff.ID }

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider used for report file names (use only in tests).
func SetNowFunc(f func() time.Time) {
	if f == nil {
		f = time.Now
	}
	nowFunc = f
}

// ReportFileName is the default file name for a report written at t.
func ReportFileName(t time.Time, ext string) string {
	return fmt.Sprintf("payoff_report_%s.%s", t.Format("20060102_150405"), ext)
}

// WriteFormatted runs a formatter and writes the output to path, or to a timestamped
// file in the working directory when path is empty.
func WriteFormatted(f Formatter, results *domain.PayoffComparison, path, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", f.Name(), err)
	}
	filename := path
	if filename == "" {
		filename = ReportFileName(nowFunc(), ext)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleVerboseFormatter{},
	ConsoleFormatter{},
	CSVTableFormatter{},
	CSVScheduleExporter{},
	HTMLFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":         "console",
	"txt":          "console",
	"table":        "console",
	"summary":      "console-lite",
	"csv-table":    "csv",
	"csv-detailed": "detailed-csv",
	"schedule":     "detailed-csv",
	"html-report":  "html",
	"chart":        "html",
	"json-pretty":  "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// FileExtension returns the extension reports of the named format are written with.
func FileExtension(name string) string {
	switch n := NormalizeFormatName(name); n {
	case "console", "console-lite":
		return "txt"
	case "detailed-csv":
		return "csv"
	default:
		return n
	}
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
