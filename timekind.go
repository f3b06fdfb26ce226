package units

import (
	"fmt"
	"strings"
)

// Time is the kind for durations: the SI second, with sub-second
// metric prefixes, plus the calendar units up to the Julian year
// (365.25 days) used throughout this package's conversion tables.
var Time = NewKind("time", KindConfig{
	Units: []UnitDef{
		{Symbol: "s", Prefixes: SmallMetric},
		{Symbol: "min", Prefixes: 0},
		{Symbol: "h", Prefixes: 0},
		{Symbol: "d", Prefixes: 0},
		{Symbol: "wk", Prefixes: 0},
		{Symbol: "yr", Prefixes: 0},
	},
	Conversions: []ConversionDef{
		{Initial: "min", Final: "s", Multiplier: 60},
		{Initial: "h", Final: "min", Multiplier: 60},
		{Initial: "d", Final: "h", Multiplier: 24},
		{Initial: "wk", Final: "d", Multiplier: 7},
		{Initial: "yr", Final: "d", Multiplier: 365.25},
	},
}, WithParts(PartsConfig{PartUnits: []string{"d", "h", "min", "s"}}))

// ToDateIntervalSpecifier renders m, a Time measurement, as an
// ISO 8601 duration ("PnDTnHnMnS"), decomposing down to smallest (one
// of Time's configured part units: "d", "h", "min", or "s") the same
// way ToParts does, truncating fractional parts above smallest and
// carrying the remainder into the last one. A negative duration is
// prefixed with a leading "-", per ISO 8601's signed-duration form.
func ToDateIntervalSpecifier(m Measurement, smallest string) (string, error) {
	if m.Kind() != Time {
		return "", newTypeError("ToDateIntervalSpecifier requires a time measurement, got %s", m.Kind().Name)
	}
	units, err := truncatedPartUnits(Time, smallest)
	if err != nil {
		return "", err
	}
	sign, parts, err := ToParts(m, smallest, 3)
	if err != nil {
		return "", err
	}

	var days, hours, minutes, seconds float64
	var hasSeconds bool
	for i, u := range units {
		switch u {
		case "d":
			days = parts[i]
		case "h":
			hours = parts[i]
		case "min":
			minutes = parts[i]
		case "s":
			seconds = parts[i]
			hasSeconds = true
		}
	}

	var b strings.Builder
	b.WriteString("P")
	if days != 0 {
		fmt.Fprintf(&b, "%gD", days)
	}
	if hours != 0 || minutes != 0 || (hasSeconds && seconds != 0) {
		b.WriteString("T")
		if hours != 0 {
			fmt.Fprintf(&b, "%gH", hours)
		}
		if minutes != 0 {
			fmt.Fprintf(&b, "%gM", minutes)
		}
		if hasSeconds && (seconds != 0 || (days == 0 && hours == 0 && minutes == 0)) {
			secStr := strconvTrim(seconds)
			fmt.Fprintf(&b, "%sS", secStr)
		}
	}
	if b.Len() == 1 {
		b.WriteString("0D")
	}
	out := b.String()
	if sign < 0 && out != "P0D" {
		out = "-" + out
	}
	return out, nil
}

func strconvTrim(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		s = "0"
	}
	return s
}
