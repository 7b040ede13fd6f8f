package render

import (
	"strconv"
	"strings"
)

func Int(v *int) string {
	if v == nil {
		return Placeholder
	}
	return strconv.Itoa(*v)
}

// IntOr renders a missing count as fallback, e.g. "0" for goals.
func IntOr(v *int, fallback string) string {
	if v == nil {
		return fallback
	}
	return strconv.Itoa(*v)
}

func Str(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return Placeholder
	}
	return *v
}

func Float(v *float64, prec int) string {
	if v == nil {
		return Placeholder
	}
	return strconv.FormatFloat(*v, 'f', prec, 64)
}

// Percent renders a 0..1 probability as "52.0%".
func Percent(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return strconv.FormatFloat(*v*100, 'f', 1, 64) + "%"
}

// Thousands renders a positive count with comma separators. Zero and missing
// values render as the placeholder.
func Thousands(v *int) string {
	if v == nil || *v == 0 {
		return Placeholder
	}
	return groupThousands(*v)
}

func groupThousands(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.Itoa(n)
	if len(digits) <= 3 {
		return sign + digits
	}

	var b strings.Builder
	b.WriteString(sign)
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
