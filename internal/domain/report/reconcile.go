package report

import (
	"fmt"
	"sort"
	"strings"
)

// VisitInput is the desired state of one visit record in a report write.
// A nil ID means "create"; a non-nil ID must belong to the target report
// and means "update in place".
type VisitInput struct {
	ID              *uint
	CustomerID      uint
	VisitContent    string
	VisitTime       *string
	DurationMinutes *int
}

// ReconcilePlan is the minimal persistence operation set derived from
// diffing the incoming visit list against the report's existing records.
// Deletes must be applied before updates, updates before creates.
type ReconcilePlan struct {
	ToDelete []uint
	ToUpdate []VisitInput
	ToCreate []VisitInput
}

// UnknownVisitIDsError reports update-partition ids that do not belong to
// the target report. Guards against cross-report id injection.
type UnknownVisitIDsError struct {
	IDs []uint
}

func (e *UnknownVisitIDsError) Error() string {
	return fmt.Sprintf("visit record ids do not belong to this report: %s", formatIDs(e.IDs))
}

// ReconcileVisits partitions the incoming visits by id-presence, then
// membership-filters the update partition against the existing id set:
//
//	toDelete = existingIDs − requestIDs
//	toUpdate = incoming with id ∈ existingIDs
//	toCreate = incoming without id
//
// Any incoming id outside existingIDs fails with UnknownVisitIDsError.
// The partitions are disjoint by construction.
func ReconcileVisits(existingIDs []uint, incoming []VisitInput) (*ReconcilePlan, error) {
	existing := make(map[uint]bool, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = true
	}

	plan := &ReconcilePlan{}
	requested := make(map[uint]bool, len(incoming))
	var unknown []uint

	for _, in := range incoming {
		if in.ID == nil {
			plan.ToCreate = append(plan.ToCreate, in)
			continue
		}
		id := *in.ID
		if !existing[id] {
			unknown = append(unknown, id)
			continue
		}
		requested[id] = true
		plan.ToUpdate = append(plan.ToUpdate, in)
	}

	if len(unknown) > 0 {
		sortIDs(unknown)
		return nil, &UnknownVisitIDsError{IDs: unknown}
	}

	for _, id := range existingIDs {
		if !requested[id] {
			plan.ToDelete = append(plan.ToDelete, id)
		}
	}
	sortIDs(plan.ToDelete)

	return plan, nil
}

// DistinctCustomerIDs returns the deduplicated customer ids referenced by
// the incoming visits, for the bulk existence check. Duplicates across
// visits are legal (same customer visited twice in a day); uniqueness only
// applies to the lookup.
func DistinctCustomerIDs(incoming []VisitInput) []uint {
	seen := make(map[uint]bool, len(incoming))
	ids := make([]uint, 0, len(incoming))
	for _, in := range incoming {
		if in.CustomerID == 0 || seen[in.CustomerID] {
			continue
		}
		seen[in.CustomerID] = true
		ids = append(ids, in.CustomerID)
	}
	sortIDs(ids)
	return ids
}

// MissingIDs returns the ids in want that are absent from have, sorted.
func MissingIDs(want, have []uint) []uint {
	present := make(map[uint]bool, len(have))
	for _, id := range have {
		present[id] = true
	}
	var missing []uint
	for _, id := range want {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	sortIDs(missing)
	return missing
}

func sortIDs(ids []uint) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

func formatIDs(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}

// FormatIDs renders an id list for error messages ("1, 2, 3").
func FormatIDs(ids []uint) string {
	return formatIDs(ids)
}
