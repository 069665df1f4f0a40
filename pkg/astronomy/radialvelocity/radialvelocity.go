package radialvelocity

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/exoscope/exoscope-client/internal/types"
)

// Physical constants in SI units.
const (
	GravitationalConstant = 6.67430e-11 // m³ kg⁻¹ s⁻²
	EarthMassKg           = 5.97216787e24
	SolarMassKg           = 1.98840987e30
	SecondsPerDay         = 86400.0
)

// CurveSamples is the fixed number of points on a generated velocity curve.
const CurveSamples = 1000

// Amplitude computes the radial velocity semi-amplitude K in m/s for a
// planet of the given mass (Earth masses) orbiting a star of the given mass
// (Solar masses) with the given period (days) and eccentricity.
//
//	K = (2πG / P)^(1/3) · Mp / M*^(2/3) / sqrt(1 − e²)
//
// The function is total over physically valid inputs. It does not validate:
// eccentricity ≥ 1 or non-positive masses/periods yield NaN or Inf, which
// callers filter upstream.
func Amplitude(planetMassEarth, starMassSolar, orbitalPeriodDays, eccentricity float64) float64 {
	planetMassKg := planetMassEarth * EarthMassKg
	starMassKg := starMassSolar * SolarMassKg
	periodSeconds := orbitalPeriodDays * SecondsPerDay

	k := math.Cbrt(2 * math.Pi * GravitationalConstant / periodSeconds)
	k *= planetMassKg / math.Pow(starMassKg, 2.0/3.0)
	k /= math.Sqrt(1 - eccentricity*eccentricity)
	return k
}

// Curve generates the velocity-vs-time signal for semi-amplitude k (m/s) and
// orbital period periodDays, sampled at exactly CurveSamples evenly spaced
// points over [0, spanDays] inclusive of both endpoints:
//
//	v(t) = K · sin(2π · t / P)
//
// The result depends only on the inputs; no state is retained between calls.
func Curve(k, periodDays, spanDays float64) []types.RVSample {
	times := floats.Span(make([]float64, CurveSamples), 0, spanDays)

	samples := make([]types.RVSample, CurveSamples)
	for i, t := range times {
		samples[i] = types.RVSample{
			TimeDays:    t,
			VelocityMps: k * math.Sin(2*math.Pi*t/periodDays),
		}
	}
	return samples
}

// CurveForRecord derives the full radial velocity curve for one catalog
// record, spanning two orbital periods. The eccentricity is the caller's
// uniform filter value, not the record's own.
func CurveForRecord(rec types.PlanetRecord, eccentricity float64) types.RadialVelocityCurve {
	k := Amplitude(rec.PlanetMassEarth, rec.StarMassSolar, rec.OrbitalPeriodDays, eccentricity)
	span := 2 * rec.OrbitalPeriodDays

	return types.RadialVelocityCurve{
		PlanetName:   rec.Name,
		HostName:     rec.HostName,
		AmplitudeMps: k,
		PeriodDays:   rec.OrbitalPeriodDays,
		SpanDays:     span,
		Samples:      Curve(k, rec.OrbitalPeriodDays, span),
	}
}
