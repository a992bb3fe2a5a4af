package validators

import "strings"

// NormalizePlate upper-cases and trims a license plate so it can act as
// a case-insensitive unique key.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
