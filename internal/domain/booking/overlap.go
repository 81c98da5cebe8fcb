package booking

import "github.com/google/uuid"

// StoredRange is the minimal projection of an existing booking needed for
// conflict detection.
type StoredRange struct {
	BookingID uuid.UUID
	Range     DateRange
}

// FindConflicts returns every stored range that overlaps the candidate.
// A booking being updated is excluded from the scan by id, never by date
// equality, so rescheduling over one's own prior dates is not a conflict.
func FindConflicts(candidate DateRange, existing []StoredRange, excludeID uuid.UUID) []StoredRange {
	var conflicts []StoredRange
	for _, sr := range existing {
		if excludeID != uuid.Nil && sr.BookingID == excludeID {
			continue
		}
		if candidate.Overlaps(sr.Range) {
			conflicts = append(conflicts, sr)
		}
	}
	return conflicts
}

// HasConflict reports whether any stored range overlaps the candidate.
func HasConflict(candidate DateRange, existing []StoredRange, excludeID uuid.UUID) bool {
	return len(FindConflicts(candidate, existing, excludeID)) > 0
}
