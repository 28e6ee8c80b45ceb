package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestReconcileVisits_Partitioning(t *testing.T) {
	tests := []struct {
		name         string
		existingIDs  []uint
		incoming     []VisitInput
		wantDelete   []uint
		wantUpdateID []uint
		wantCreate   int
	}{
		{
			name:        "all existing kept, one new added",
			existingIDs: []uint{1, 2},
			incoming: []VisitInput{
				{ID: uintPtr(1), CustomerID: 10, VisitContent: "a"},
				{ID: uintPtr(2), CustomerID: 11, VisitContent: "b"},
				{CustomerID: 12, VisitContent: "c"},
			},
			wantDelete:   []uint{},
			wantUpdateID: []uint{1, 2},
			wantCreate:   1,
		},
		{
			name:        "dropped ids are deleted",
			existingIDs: []uint{1, 2, 3},
			incoming: []VisitInput{
				{ID: uintPtr(2), CustomerID: 10, VisitContent: "keep"},
			},
			wantDelete:   []uint{1, 3},
			wantUpdateID: []uint{2},
			wantCreate:   0,
		},
		{
			name:        "full replacement",
			existingIDs: []uint{5, 6},
			incoming: []VisitInput{
				{CustomerID: 10, VisitContent: "x"},
				{CustomerID: 10, VisitContent: "y"},
			},
			wantDelete:   []uint{5, 6},
			wantUpdateID: []uint{},
			wantCreate:   2,
		},
		{
			name:        "no existing visits, all created",
			existingIDs: nil,
			incoming: []VisitInput{
				{CustomerID: 7, VisitContent: "first"},
			},
			wantDelete:   []uint{},
			wantUpdateID: []uint{},
			wantCreate:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := ReconcileVisits(tt.existingIDs, tt.incoming)
			require.NoError(t, err)
			require.NotNil(t, plan)

			assert.ElementsMatch(t, tt.wantDelete, plan.ToDelete)

			updateIDs := make([]uint, 0, len(plan.ToUpdate))
			for _, in := range plan.ToUpdate {
				require.NotNil(t, in.ID)
				updateIDs = append(updateIDs, *in.ID)
			}
			assert.ElementsMatch(t, tt.wantUpdateID, updateIDs)
			assert.Len(t, plan.ToCreate, tt.wantCreate)

			// Partitions must be disjoint: no id appears in both
			// delete and update sets.
			for _, deleted := range plan.ToDelete {
				assert.NotContains(t, updateIDs, deleted)
			}
		})
	}
}

func TestReconcileVisits_UnknownIDsRejected(t *testing.T) {
	existing := []uint{1, 2}
	incoming := []VisitInput{
		{ID: uintPtr(1), CustomerID: 10, VisitContent: "fine"},
		{ID: uintPtr(99), CustomerID: 10, VisitContent: "injected"},
		{ID: uintPtr(42), CustomerID: 10, VisitContent: "injected too"},
	}

	plan, err := ReconcileVisits(existing, incoming)
	require.Error(t, err)
	assert.Nil(t, plan)

	var unknownErr *UnknownVisitIDsError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, []uint{42, 99}, unknownErr.IDs)
	assert.Contains(t, err.Error(), "42, 99")
}

func TestReconcileVisits_Idempotent(t *testing.T) {
	existing := []uint{1, 2, 3}
	incoming := []VisitInput{
		{ID: uintPtr(1), CustomerID: 10, VisitContent: "a"},
		{ID: uintPtr(2), CustomerID: 11, VisitContent: "b"},
		{ID: uintPtr(3), CustomerID: 12, VisitContent: "c"},
	}

	plan, err := ReconcileVisits(existing, incoming)
	require.NoError(t, err)
	assert.Empty(t, plan.ToDelete)
	assert.Empty(t, plan.ToCreate)
	assert.Len(t, plan.ToUpdate, 3)
}

func TestDistinctCustomerIDs(t *testing.T) {
	incoming := []VisitInput{
		{CustomerID: 3, VisitContent: "a"},
		{CustomerID: 1, VisitContent: "b"},
		{CustomerID: 3, VisitContent: "same customer twice is allowed"},
		{CustomerID: 2, VisitContent: "c"},
	}

	ids := DistinctCustomerIDs(incoming)
	assert.Equal(t, []uint{1, 2, 3}, ids)
}

func TestMissingIDs(t *testing.T) {
	tests := []struct {
		name string
		want []uint
		have []uint
		miss []uint
	}{
		{"none missing", []uint{1, 2}, []uint{1, 2, 3}, nil},
		{"some missing", []uint{1, 5, 9}, []uint{1}, []uint{5, 9}},
		{"all missing", []uint{4, 2}, nil, []uint{2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.miss, MissingIDs(tt.want, tt.have))
		})
	}
}
