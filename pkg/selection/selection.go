package selection

import (
	"github.com/exoscope/exoscope-client/internal/types"
	"github.com/exoscope/exoscope-client/pkg/astronomy/habitablezone"
)

// Select returns the records whose planet mass and orbital period both fall
// inside the closed intervals of criteria. Input order is preserved and the
// input slice is never mutated. An empty result is a valid outcome, not an
// error.
func Select(records []types.PlanetRecord, criteria types.FilterCriteria) []types.PlanetRecord {
	filtered := make([]types.PlanetRecord, 0, len(records))
	for _, rec := range records {
		if !criteria.MassRange.Contains(rec.PlanetMassEarth) {
			continue
		}
		if !criteria.PeriodRange.Contains(rec.OrbitalPeriodDays) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}

// AnnotateZones computes each record's habitable zone from its star's
// effective temperature and flags membership by comparing the semi-major
// axis against the zone with inclusive bounds. Records without a usable
// stellar temperature get NaN boundaries and are never members.
func AnnotateZones(records []types.PlanetRecord) []types.HabitableRecord {
	annotated := make([]types.HabitableRecord, len(records))
	for i, rec := range records {
		zone := habitablezone.Boundaries(rec.StarEffTempK)
		annotated[i] = types.HabitableRecord{
			PlanetRecord: rec,
			Zone:         zone,
			InZone:       habitablezone.Contains(zone, rec.SemiMajorAxisAU),
		}
	}
	return annotated
}

// SelectHabitable returns the habitable zone members of records. This view
// is independent of the mass/period filter; the two selections are never
// composed.
func SelectHabitable(records []types.PlanetRecord) []types.HabitableRecord {
	members := make([]types.HabitableRecord, 0)
	for _, rec := range AnnotateZones(records) {
		if rec.InZone {
			members = append(members, rec)
		}
	}
	return members
}
