package greenops

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the English-locale printer used for thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats f with the given number of decimals and thousand separators.
// Example: FormatFloat(1234.5678, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Sprintf("%v", f)
	}
	if precision <= 0 {
		return FormatNumber(int64(math.Round(f)))
	}

	formatted := strconv.FormatFloat(math.Abs(f), 'f', precision, 64)
	intPart, fracPart, _ := strings.Cut(formatted, ".")
	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return formatted
	}

	out := FormatNumber(whole) + "." + fracPart
	// No "-0.00" for values that round to zero.
	if f < 0 && strings.Trim(intPart+fracPart, "0") != "" {
		out = "-" + out
	}
	return out
}

// FormatLarge abbreviates millions and billions ("~1.5 billion"); smaller
// values are comma-separated integers.
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	}
	return FormatNumber(int64(math.Round(n)))
}

// FormatPercent formats a percentage with one decimal, e.g. "82.4%".
func FormatPercent(pct float64) string {
	return FormatFloat(pct, 1) + "%"
}
