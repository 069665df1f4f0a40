package catalog

import "fmt"

// BuildQuery returns the ADQL query for up to limit rows from the archive's
// ps table. The projection, non-null filter, and ascending period sort are
// fixed: the four columns every derivation needs are filtered server-side so
// most incomplete rows never cross the wire.
func BuildQuery(limit int) string {
	return fmt.Sprintf(`SELECT TOP %d
    pl_name,
    hostname,
    pl_bmasse,
    pl_orbper,
    pl_orbsmax,
    pl_orbeccen,
    st_mass,
    st_teff,
    pl_rade
FROM
    ps
WHERE
    pl_bmasse IS NOT NULL AND
    pl_orbper IS NOT NULL AND
    pl_orbsmax IS NOT NULL AND
    st_mass IS NOT NULL
ORDER BY
    pl_orbper ASC`, limit)
}
