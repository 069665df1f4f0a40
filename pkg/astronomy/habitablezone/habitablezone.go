package habitablezone

import (
	"math"

	"github.com/exoscope/exoscope-client/internal/types"
)

// SolarEffTempK is the effective temperature of the Sun.
const SolarEffTempK = 5778.0

// Kopparapu et al. (2014) empirical flux coefficients. Index 0 is the
// recent-Venus inner edge, index 1 the early-Mars outer edge.
var (
	sEffSun = [2]float64{1.776, 0.320}
	coeffA  = [2]float64{0.013, 0.094}
	coeffB  = [2]float64{2.04e-4, 1.73e-4}
	coeffC  = [2]float64{-2.89e-8, -5.44e-9}
)

// Boundaries computes the inner and outer habitable zone radii in AU for a
// star with effective temperature starEffTempK:
//
//	Seff = S0 + a·ΔT + b·ΔT² + c·ΔT³   with ΔT = T − 5778 K
//	L    = (T / 5778)⁴                 (solar luminosities)
//	r    = sqrt(L / Seff)
//
// For extreme temperatures Seff can go non-positive, making the corresponding
// radius NaN. That is passed through unguarded; display and membership logic
// tolerate NaN boundaries.
func Boundaries(starEffTempK float64) types.HabitableZone {
	deltaT := starEffTempK - SolarEffTempK
	luminosity := math.Pow(starEffTempK/SolarEffTempK, 4)

	var radii [2]float64
	for i := 0; i < 2; i++ {
		sEff := sEffSun[i] + coeffA[i]*deltaT + coeffB[i]*deltaT*deltaT + coeffC[i]*deltaT*deltaT*deltaT
		radii[i] = math.Sqrt(luminosity / sEff)
	}

	return types.HabitableZone{InnerAU: radii[0], OuterAU: radii[1]}
}

// Contains reports whether an orbit with the given semi-major axis lies
// inside the zone, bounds inclusive. NaN boundaries or NaN axis compare
// false, so degenerate zones never claim members.
func Contains(zone types.HabitableZone, semiMajorAxisAU float64) bool {
	return zone.InnerAU <= semiMajorAxisAU && semiMajorAxisAU <= zone.OuterAU
}
