package strkit

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Blank reports whether s is absent or contains only white space.
func Blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// OrNil returns s, or nil when s is blank.
func OrNil(s *string) *string {
	if Blank(s) {
		return nil
	}

	return s
}

// FormatThousands prints n with a comma between each group of three digits,
// e.g. 1234567890 becomes "1,234,567,890".
func FormatThousands(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// FormatThousandsString formats a numeric string like FormatThousands. The
// value may use Persian or Arabic-Indic digits and may carry a fraction,
// which is rounded half to even. Anything unparsable is formatted as 0.
func FormatThousandsString(s string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(ToWesternDigits(s)), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return FormatThousands(0)
	}

	return FormatThousands(int64(math.RoundToEven(f)))
}

// PercentOf returns percent% of value.
func PercentOf(percent int, value float64) float64 {
	switch percent {
	case 0:
		return 0
	case 100:
		return value
	}

	return value * float64(percent) / 100
}
