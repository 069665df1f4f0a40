package types

import (
	"fmt"
	"math"
)

// PlanetRecord represents one confirmed-planet row from the exoplanet
// archive. Field names follow the archive's ps table columns. Optional
// columns that were missing or unparseable in the response are zero; rows
// missing a required column never survive ingestion.
type PlanetRecord struct {
	Name              string  `json:"pl_name"`
	HostName          string  `json:"hostname"`
	PlanetMassEarth   float64 `json:"pl_bmasse"`   // Earth masses
	OrbitalPeriodDays float64 `json:"pl_orbper"`   // days
	SemiMajorAxisAU   float64 `json:"pl_orbsmax"`  // AU
	Eccentricity      float64 `json:"pl_orbeccen"` // 0 = circular
	StarMassSolar     float64 `json:"st_mass"`     // Solar masses
	StarEffTempK      float64 `json:"st_teff"`     // K
	PlanetRadiusEarth float64 `json:"pl_rade"`     // Earth radii, optional
}

// HasStellarTemp reports whether the record carries a usable effective
// temperature for habitable zone calculations.
func (r PlanetRecord) HasStellarTemp() bool {
	return !math.IsNaN(r.StarEffTempK) && r.StarEffTempK > 0
}

// RVSample is a single point on a radial velocity curve.
type RVSample struct {
	TimeDays    float64 `json:"time_days"`
	VelocityMps float64 `json:"velocity_mps"`
}

// RadialVelocityCurve is the derived stellar wobble signal for one planet.
// Samples span [0, SpanDays] with a fixed sample count.
type RadialVelocityCurve struct {
	PlanetName   string     `json:"planet_name"`
	HostName     string     `json:"host_name"`
	AmplitudeMps float64    `json:"amplitude_mps"`
	PeriodDays   float64    `json:"period_days"`
	SpanDays     float64    `json:"span_days"`
	Samples      []RVSample `json:"samples"`
}

// HabitableZone bounds the stellar distance interval where liquid surface
// water is plausible. Boundaries may be NaN for extreme temperatures.
type HabitableZone struct {
	InnerAU float64 `json:"inner_au"`
	OuterAU float64 `json:"outer_au"`
}

// HabitableRecord annotates a planet record with its star's habitable zone
// and the membership flag derived from the planet's semi-major axis.
type HabitableRecord struct {
	PlanetRecord
	Zone   HabitableZone `json:"habitable_zone"`
	InZone bool          `json:"in_zone"`
}

// Range is a closed [Min, Max] interval over a numeric column.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies inside the closed interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// FilterCriteria holds the user-adjustable filter parameters. Eccentricity
// is a single value applied uniformly to every amplitude computation, not a
// range.
type FilterCriteria struct {
	MassRange    Range   `json:"mass_range"`   // Earth masses
	PeriodRange  Range   `json:"period_range"` // days
	Eccentricity float64 `json:"eccentricity"`
}

// Validate checks interval ordering and the eccentricity domain.
func (c FilterCriteria) Validate() error {
	if c.MassRange.Min > c.MassRange.Max {
		return fmt.Errorf("mass range min %.4g exceeds max %.4g", c.MassRange.Min, c.MassRange.Max)
	}
	if c.PeriodRange.Min > c.PeriodRange.Max {
		return fmt.Errorf("period range min %.4g exceeds max %.4g", c.PeriodRange.Min, c.PeriodRange.Max)
	}
	if c.Eccentricity < 0 || c.Eccentricity > 1 {
		return fmt.Errorf("eccentricity %.4g outside [0, 1]", c.Eccentricity)
	}
	return nil
}

// CatalogSummary aggregates descriptive statistics over a record set.
type CatalogSummary struct {
	Count           int     `json:"count"`
	MeanMassEarth   float64 `json:"mean_mass_earth"`
	StdDevMassEarth float64 `json:"stddev_mass_earth"`
	MeanPeriodDays  float64 `json:"mean_period_days"`
	MinPeriodDays   float64 `json:"min_period_days"`
	MaxPeriodDays   float64 `json:"max_period_days"`
	HabitableCount  int     `json:"habitable_count"`
}
