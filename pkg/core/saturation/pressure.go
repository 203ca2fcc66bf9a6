package saturation

import (
	"math"

	"github.com/scienceol/psat/pkg/common/code"
)

// Coefficients of log10(P/bar) = A - B/(T/K + C).
type Coefficients struct {
	A, B, C float64
}

// Pressure evaluates the Antoine equation at temperature (K) and returns the
// vapor pressure in bar. A zero denominator or a non-finite result is a
// code.AntoineDomainErr.
func Pressure(coef Coefficients, temperature float64) (float64, error) {
	denom := temperature + coef.C
	if denom == 0 {
		return 0, code.AntoineDomainErr.WithMsgf("temperature %g K + C %g is zero", temperature, coef.C)
	}

	p := math.Pow(10, coef.A-coef.B/denom)
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, code.AntoineDomainErr.WithMsgf("non-finite pressure at %g K (A=%g B=%g C=%g)",
			temperature, coef.A, coef.B, coef.C)
	}
	return p, nil
}
