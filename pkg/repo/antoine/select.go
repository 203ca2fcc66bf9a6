package antoine

import (
	"sort"
	"strings"

	"github.com/scienceol/psat/pkg/common/code"
	"github.com/scienceol/psat/pkg/repo/model"
)

// NormalizeName is the lookup key of a substance name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// pick returns the first record, by ascending TMin, whose range covers
// temperature.
func pick(name string, temperature float64, coefs []*model.AntoineCoef) (*model.AntoineCoef, error) {
	if len(coefs) == 0 {
		return nil, code.SubstanceNotFound.WithMsgf("no antoine coefficients for %q", name)
	}
	sorted := make([]*model.AntoineCoef, len(coefs))
	copy(sorted, coefs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].TMin < sorted[j].TMin })

	for _, c := range sorted {
		if c.Covers(temperature) {
			return c, nil
		}
	}
	return nil, code.TemperatureOutOfRange.WithMsgf("%q has no coefficients valid at %g K (%s)",
		name, temperature, ranges(sorted))
}

func ranges(coefs []*model.AntoineCoef) string {
	parts := make([]string, 0, len(coefs))
	for _, c := range coefs {
		parts = append(parts, formatRange(c))
	}
	return strings.Join(parts, ", ")
}
