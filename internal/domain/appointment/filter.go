package appointment

import "github.com/tallerapp/workshop-manager/internal/dates"

// ReportFilter enumerates every optional filter of the reporting query.
// Each field has exactly one effect in the repository; there is no
// dynamically accumulated where-clause.
type ReportFilter struct {
	// Client matches client name or phone by substring.
	Client string
	// Plate matches the vehicle plate by substring (upper-cased).
	Plate string
	// Range bounds the appointment date, inclusive on both ends.
	Range *dates.Range
}
