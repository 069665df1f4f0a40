package analysis

import (
	"log"

	"gonum.org/v1/gonum/stat"

	"github.com/exoscope/exoscope-client/internal/types"
	"github.com/exoscope/exoscope-client/pkg/selection"
)

// Summarize computes descriptive statistics over a fetched record set:
// mass mean/spread, period extent, and how many planets sit inside their
// star's habitable zone.
func Summarize(records []types.PlanetRecord) types.CatalogSummary {
	if len(records) == 0 {
		return types.CatalogSummary{}
	}

	masses := make([]float64, len(records))
	periods := make([]float64, len(records))
	for i, rec := range records {
		masses[i] = rec.PlanetMassEarth
		periods[i] = rec.OrbitalPeriodDays
	}

	minPeriod, maxPeriod := periods[0], periods[0]
	for _, p := range periods[1:] {
		if p < minPeriod {
			minPeriod = p
		}
		if p > maxPeriod {
			maxPeriod = p
		}
	}

	summary := types.CatalogSummary{
		Count:           len(records),
		MeanMassEarth:   stat.Mean(masses, nil),
		StdDevMassEarth: stat.StdDev(masses, nil),
		MeanPeriodDays:  stat.Mean(periods, nil),
		MinPeriodDays:   minPeriod,
		MaxPeriodDays:   maxPeriod,
		HabitableCount:  len(selection.SelectHabitable(records)),
	}

	log.Printf("Catalog summary: %d planets, mass=%.2f±%.2f M⊕, period %.2f-%.2f days, %d in habitable zone",
		summary.Count, summary.MeanMassEarth, summary.StdDevMassEarth,
		summary.MinPeriodDays, summary.MaxPeriodDays, summary.HabitableCount)

	return summary
}
