package analysis

import (
	"math"
	"testing"

	"github.com/exoscope/exoscope-client/internal/types"
)

func TestSummarize_Statistics(t *testing.T) {
	records := []types.PlanetRecord{
		{Name: "a b", PlanetMassEarth: 2, OrbitalPeriodDays: 100},
		{Name: "c d", PlanetMassEarth: 4, OrbitalPeriodDays: 600},
		{Name: "e f", PlanetMassEarth: 6, OrbitalPeriodDays: 200},
	}

	s := Summarize(records)

	if s.Count != 3 {
		t.Errorf("Count = %d, want 3", s.Count)
	}
	if math.Abs(s.MeanMassEarth-4) > 1e-12 {
		t.Errorf("MeanMassEarth = %f, want 4", s.MeanMassEarth)
	}
	// Sample standard deviation: sqrt((4+0+4)/2) = 2.
	if math.Abs(s.StdDevMassEarth-2) > 1e-12 {
		t.Errorf("StdDevMassEarth = %f, want 2", s.StdDevMassEarth)
	}
	if math.Abs(s.MeanPeriodDays-300) > 1e-12 {
		t.Errorf("MeanPeriodDays = %f, want 300", s.MeanPeriodDays)
	}
	if s.MinPeriodDays != 100 || s.MaxPeriodDays != 600 {
		t.Errorf("period extent = [%f, %f], want [100, 600]", s.MinPeriodDays, s.MaxPeriodDays)
	}
	// No stellar temperatures, no habitable members.
	if s.HabitableCount != 0 {
		t.Errorf("HabitableCount = %d, want 0", s.HabitableCount)
	}
}

func TestSummarize_CountsHabitableMembers(t *testing.T) {
	records := []types.PlanetRecord{
		{Name: "a b", PlanetMassEarth: 1, OrbitalPeriodDays: 365, SemiMajorAxisAU: 1.0, StarEffTempK: 5778},
		{Name: "c d", PlanetMassEarth: 300, OrbitalPeriodDays: 4000, SemiMajorAxisAU: 5.2, StarEffTempK: 5778},
	}

	s := Summarize(records)
	if s.HabitableCount != 1 {
		t.Errorf("HabitableCount = %d, want 1", s.HabitableCount)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	if s != (types.CatalogSummary{}) {
		t.Errorf("expected zero summary for empty input, got %+v", s)
	}
}
