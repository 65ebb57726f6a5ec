package company

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Sort orders companies by most recent batch first, unknown batches last,
// then by case-insensitive name. Ties keep their input order.
func Sort(companies []Company) {
	sort.SliceStable(companies, func(i, j int) bool {
		return less(companies[i], companies[j])
	})
}

func less(a, b Company) bool {
	aKnown, aVal := batchKey(a)
	bKnown, bVal := batchKey(b)
	if aKnown != bKnown {
		return aKnown
	}
	if aVal != bVal {
		return aVal > bVal
	}
	return strings.ToLower(a.Name) < strings.ToLower(b.Name)
}

// batchKey reports whether the record carries a batch index and its numeric
// value. A non-empty index that does not parse ranks below every parsable one.
func batchKey(c Company) (bool, float64) {
	if c.BatchIndex == "" {
		return false, math.Inf(-1)
	}
	v, err := strconv.ParseFloat(c.BatchIndex, 64)
	if err != nil || math.IsNaN(v) {
		return true, math.Inf(-1)
	}
	return true, v
}
