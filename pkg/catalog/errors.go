package catalog

import errorsmod "cosmossdk.io/errors"

// Catalog error taxonomy. Fetch failures are returned as values wrapping
// these sentinels; callers keep their prior data and test with errors.Is.
var (
	// ErrFetch covers transport failures, non-success statuses, and invalid
	// query parameters.
	ErrFetch = errorsmod.Register("catalog", 2, "catalog fetch failed")

	// ErrBadResponse covers response bodies that cannot be decoded.
	ErrBadResponse = errorsmod.Register("catalog", 3, "malformed catalog response")
)
