package people

import "strings"

// NotAvailable replaces any missing name before normalization.
const NotAvailable = "N/A"

// Normalize converts a possibly missing name to the uppercase form used for
// both grouping keys and grouped values.
func Normalize(name *string) string {
	if name == nil {
		return NotAvailable
	}
	return strings.ToUpper(*name)
}
