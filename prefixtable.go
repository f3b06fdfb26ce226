package units

import "math"

// PrefixSet is a bitwise combination of the three closed prefix
// families a unit may opt into. Zero means "no prefixes".
type PrefixSet int

const (
	SmallMetric PrefixSet = 1 << iota
	LargeMetric
	Binary
)

// Composite prefix sets, as named in the unit-conversion domain.
const (
	Metric   = SmallMetric | LargeMetric
	LargeAll = LargeMetric | Binary
	All      = SmallMetric | LargeMetric | Binary
)

// smallMetricPrefixes holds the sub-unity SI prefixes, q through d.
// "u" is the ASCII alias for the canonical "μ"; both resolve to the
// same factor and both are materialized as distinct unit-table keys.
var smallMetricPrefixes = map[string]float64{
	"q": 1e-30, "r": 1e-27, "y": 1e-24, "z": 1e-21, "a": 1e-18,
	"f": 1e-15, "p": 1e-12, "n": 1e-9, "μ": 1e-6, "u": 1e-6,
	"m": 1e-3, "c": 1e-2, "d": 1e-1,
}

// largeMetricPrefixes holds the super-unity SI prefixes, da through Q.
var largeMetricPrefixes = map[string]float64{
	"da": 1e1, "h": 1e2, "k": 1e3, "M": 1e6, "G": 1e9,
	"T": 1e12, "P": 1e15, "E": 1e18, "Z": 1e21, "Y": 1e24,
	"R": 1e27, "Q": 1e30,
}

// binaryPrefixes holds the IEC binary prefixes, Ki through Yi.
var binaryPrefixes = map[string]float64{
	"Ki": math.Pow(2, 10), "Mi": math.Pow(2, 20), "Gi": math.Pow(2, 30),
	"Ti": math.Pow(2, 40), "Pi": math.Pow(2, 50), "Ei": math.Pow(2, 60),
	"Zi": math.Pow(2, 70), "Yi": math.Pow(2, 80),
}

// prefixesForSet returns the merged prefix->factor table for the
// families selected by set. The returned map is freshly allocated and
// safe for the caller to keep.
func prefixesForSet(set PrefixSet) map[string]float64 {
	out := make(map[string]float64)
	if set&SmallMetric != 0 {
		for k, v := range smallMetricPrefixes {
			out[k] = v
		}
	}
	if set&LargeMetric != 0 {
		for k, v := range largeMetricPrefixes {
			out[k] = v
		}
	}
	if set&Binary != 0 {
		for k, v := range binaryPrefixes {
			out[k] = v
		}
	}
	return out
}
