package catalog

import (
	"strings"
	"testing"
)

func TestBuildQuery(t *testing.T) {
	q := BuildQuery(250)

	if !strings.HasPrefix(q, "SELECT TOP 250") {
		t.Errorf("query missing row cap: %q", q)
	}
	for _, col := range []string{
		"pl_name", "hostname", "pl_bmasse", "pl_orbper",
		"pl_orbsmax", "pl_orbeccen", "st_mass", "st_teff", "pl_rade",
	} {
		if !strings.Contains(q, col) {
			t.Errorf("query missing column %s", col)
		}
	}
	// Rows missing any required column are excluded server-side.
	for _, clause := range []string{
		"pl_bmasse IS NOT NULL",
		"pl_orbper IS NOT NULL",
		"pl_orbsmax IS NOT NULL",
		"st_mass IS NOT NULL",
	} {
		if !strings.Contains(q, clause) {
			t.Errorf("query missing filter %q", clause)
		}
	}
	if !strings.Contains(q, "ORDER BY") || !strings.Contains(q, "pl_orbper ASC") {
		t.Errorf("query missing period sort: %q", q)
	}
}
