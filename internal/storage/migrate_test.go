package storage

import (
	"testing"
	"time"

	"reloading-bench-backend/internal/storage/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func legacyTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestMigrateFromRifles_OneActionOneBarrelPerRifle(t *testing.T) {
	created := legacyTime(t, "2023-05-01T10:00:00Z")
	updated := legacyTime(t, "2023-06-01T10:00:00Z")

	old := &legacySnapshot{
		Rifles: []legacyRifle{
			{
				ID:           "rifle-1",
				Name:         "Tikka T3x",
				Caliber:      "6.5 Creedmoor",
				BarrelLength: "26\"",
				TwistRate:    "1:8",
				ActionType:   "Bolt",
				ScopeDetails: "Vortex 5-25x50",
				ZeroDistance: "100m",
				Notes:        "factory barrel",
				CreatedAt:    created,
				UpdatedAt:    updated,
			},
		},
	}

	out := migrateFromRifles(old)

	require.Len(t, out.Actions, 1)
	require.Len(t, out.Barrels, 1)

	action := out.Actions[0]
	barrel := out.Barrels[0]

	assert.Equal(t, "Tikka T3x", action.Name)
	assert.Equal(t, "", action.SerialNumber)
	assert.Equal(t, "Vortex 5-25x50", action.ScopeDetails)
	assert.Equal(t, "Action type: Bolt\nfactory barrel", action.Notes)
	assert.Equal(t, created, action.CreatedAt)
	assert.Equal(t, updated, action.UpdatedAt)

	require.NotNil(t, barrel.ActionID)
	assert.Equal(t, action.ID, *barrel.ActionID)
	assert.Equal(t, "6.5 Creedmoor", barrel.Caliber)
	assert.Equal(t, "26\"", barrel.BarrelLength)
	assert.Equal(t, "1:8", barrel.TwistRate)
	assert.Equal(t, "100m", barrel.ZeroDistance)
	assert.Equal(t, "", barrel.SerialNumber)
	assert.Equal(t, "", barrel.Notes)
	assert.Equal(t, created, barrel.CreatedAt)
	assert.Equal(t, updated, barrel.UpdatedAt)

	assert.NotEqual(t, action.ID, barrel.ID)
}

func TestMigrateFromRifles_NotesSegmentsDropped(t *testing.T) {
	old := &legacySnapshot{
		Rifles: []legacyRifle{
			{ID: "r1", Name: "A", ActionType: "", Notes: "just notes"},
			{ID: "r2", Name: "B", ActionType: "Bolt", Notes: ""},
			{ID: "r3", Name: "C", ActionType: "", Notes: ""},
		},
	}

	out := migrateFromRifles(old)

	require.Len(t, out.Actions, 3)
	assert.Equal(t, "just notes", out.Actions[0].Notes)
	assert.Equal(t, "Action type: Bolt", out.Actions[1].Notes)
	assert.Equal(t, "", out.Actions[2].Notes)
}

func TestMigrateFromRifles_BoxReferencesRemappedToBarrel(t *testing.T) {
	assigned := legacyTime(t, "2023-05-02T08:00:00Z")
	unassigned := legacyTime(t, "2023-07-02T08:00:00Z")
	rifleID := "rifle-1"

	old := &legacySnapshot{
		Rifles: []legacyRifle{
			{ID: rifleID, Name: "Tikka T3x", Caliber: "6.5 Creedmoor"},
		},
		Boxes: []legacyBox{
			{
				ID:             "box-1",
				Brand:          "Lapua",
				BoxNumber:      "3",
				NumberOfRounds: 50,
				RifleID:        &rifleID,
				Status:         models.StatusActive,
				RifleHistory: []legacyRifleHistoryEntry{
					{
						RifleID:        rifleID,
						RifleName:      "N",
						AssignedDate:   assigned,
						UnassignedDate: &unassigned,
					},
				},
			},
		},
	}

	out := migrateFromRifles(old)

	require.Len(t, out.Boxes, 1)
	box := out.Boxes[0]

	// The box points at the barrel generated for its rifle, not the action.
	require.NotNil(t, box.BarrelID)
	assert.Equal(t, out.Barrels[0].ID, *box.BarrelID)

	require.Len(t, box.BarrelHistory, 1)
	entry := box.BarrelHistory[0]
	assert.Equal(t, out.Barrels[0].ID, entry.BarrelID)
	assert.Equal(t, "N", entry.BarrelName)
	assert.Equal(t, assigned, entry.AssignedDate)
	require.NotNil(t, entry.UnassignedDate)
	assert.Equal(t, unassigned, *entry.UnassignedDate)
}

func TestMigrateFromRifles_UnmappedHistoryIDFallsBack(t *testing.T) {
	old := &legacySnapshot{
		Rifles: []legacyRifle{
			{ID: "rifle-1", Name: "A"},
		},
		Boxes: []legacyBox{
			{
				ID: "box-1",
				RifleHistory: []legacyRifleHistoryEntry{
					{RifleID: "long-gone-rifle", AssignedDate: legacyTime(t, "2022-01-01T00:00:00Z")},
				},
			},
		},
	}

	out := migrateFromRifles(old)

	require.Len(t, out.Boxes[0].BarrelHistory, 1)
	// The raw id carries through rather than the entry being dropped.
	assert.Equal(t, "long-gone-rifle", out.Boxes[0].BarrelHistory[0].BarrelID)
}

func TestMigrateFromRifles_UnknownBoxRifleIDYieldsNil(t *testing.T) {
	gone := "gone"
	old := &legacySnapshot{
		Rifles: []legacyRifle{{ID: "rifle-1", Name: "A"}},
		Boxes: []legacyBox{
			{ID: "box-1", RifleID: &gone},
			{ID: "box-2", RifleID: nil},
		},
	}

	out := migrateFromRifles(old)

	assert.Nil(t, out.Boxes[0].BarrelID)
	assert.Nil(t, out.Boxes[1].BarrelID)
}

func TestMigrateFromRifles_ModernCollectionsStartEmpty(t *testing.T) {
	old := &legacySnapshot{
		Rifles: []legacyRifle{{ID: "rifle-1", Name: "A"}},
		Components: &models.Components{
			Powders:     []string{"H4350"},
			Primers:     []string{"CCI BR-2"},
			Projectiles: []string{"140gr ELD-M"},
		},
	}

	out := migrateFromRifles(old)

	assert.Equal(t, []string{"H4350"}, out.Components.Powders)
	assert.Empty(t, out.Loads)
	assert.Empty(t, out.Cartridges)
	assert.Empty(t, out.Elevations)
	assert.NotNil(t, out.Loads)
	assert.NotNil(t, out.Cartridges)
	assert.NotNil(t, out.Elevations)
}

func TestMigrateFromRifles_ZeroTimestampsDefault(t *testing.T) {
	before := time.Now()
	old := &legacySnapshot{
		Rifles: []legacyRifle{{ID: "rifle-1", Name: "A"}},
	}

	out := migrateFromRifles(old)
	after := time.Now()

	action := out.Actions[0]
	assert.False(t, action.CreatedAt.Before(before))
	assert.False(t, action.CreatedAt.After(after))
	// With no stored updatedAt, both stamps share the fallback.
	assert.Equal(t, action.CreatedAt, action.UpdatedAt)
	assert.Equal(t, action.CreatedAt, out.Barrels[0].CreatedAt)
}
