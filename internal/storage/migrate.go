package storage

import (
	"strings"
	"time"

	"reloading-bench-backend/internal/storage/models"

	"github.com/sirupsen/logrus"
)

// migrateFromRifles rewrites a rifle-era snapshot into the current
// action+barrel shape. Each rifle becomes one action plus one barrel
// attached to it; box references and assignment history are remapped to
// the new barrel ids. The transform is best effort over trusted local
// data: it never reports row-level errors.
func migrateFromRifles(old *legacySnapshot) *models.Snapshot {
	actions := make([]models.Action, 0, len(old.Rifles))
	barrels := make([]models.Barrel, 0, len(old.Rifles))
	rifleToBarrel := make(map[string]string, len(old.Rifles))

	for _, rifle := range old.Rifles {
		created := rifle.CreatedAt
		if created.IsZero() {
			created = time.Now()
		}
		updated := rifle.UpdatedAt
		if updated.IsZero() {
			updated = created
		}

		action := models.Action{
			ID:           models.NewID(),
			Name:         rifle.Name,
			SerialNumber: "",
			ScopeDetails: rifle.ScopeDetails,
			Notes:        migratedActionNotes(rifle.ActionType, rifle.Notes),
			CreatedAt:    created,
			UpdatedAt:    updated,
		}
		actions = append(actions, action)

		barrel := models.Barrel{
			ID:           models.NewID(),
			ActionID:     &action.ID,
			SerialNumber: "",
			Caliber:      rifle.Caliber,
			BarrelLength: rifle.BarrelLength,
			TwistRate:    rifle.TwistRate,
			ZeroDistance: rifle.ZeroDistance,
			Notes:        "",
			CreatedAt:    created,
			UpdatedAt:    updated,
		}
		barrels = append(barrels, barrel)

		// Boxes referenced rifles as what is now the barrel.
		rifleToBarrel[rifle.ID] = barrel.ID
	}

	boxes := make([]models.AmmoBox, 0, len(old.Boxes))
	for _, lb := range old.Boxes {
		boxes = append(boxes, migrateBox(lb, rifleToBarrel))
	}

	out := &models.Snapshot{
		Boxes:      boxes,
		Actions:    actions,
		Barrels:    barrels,
		Components: legacyComponents(old),
		Loads:      []models.SavedLoad{},
		Cartridges: []models.Cartridge{},
		Elevations: []models.Elevation{},
	}
	out.Normalize()

	logrus.Infof("Migrated %d rifle(s) -> %d action(s) + %d barrel(s)",
		len(old.Rifles), len(actions), len(barrels))

	return out
}

func migrateBox(lb legacyBox, rifleToBarrel map[string]string) models.AmmoBox {
	var barrelID *string
	if lb.RifleID != nil {
		if mapped, ok := rifleToBarrel[*lb.RifleID]; ok {
			barrelID = &mapped
		}
	}

	history := make([]models.BarrelHistoryEntry, 0, len(lb.RifleHistory))
	for _, h := range lb.RifleHistory {
		mapped, ok := rifleToBarrel[h.RifleID]
		if !ok {
			// Unmapped ids are carried through rather than dropped.
			mapped = h.RifleID
		}
		history = append(history, models.BarrelHistoryEntry{
			BarrelID:       mapped,
			BarrelName:     h.RifleName,
			AssignedDate:   h.AssignedDate,
			UnassignedDate: h.UnassignedDate,
		})
	}

	loadHistory := lb.LoadHistory
	if loadHistory == nil {
		loadHistory = []models.LoadHistoryEntry{}
	}

	return models.AmmoBox{
		ID:             lb.ID,
		Brand:          lb.Brand,
		BoxNumber:      lb.BoxNumber,
		NumberOfRounds: lb.NumberOfRounds,
		BarrelID:       barrelID,
		Status:         lb.Status,
		CurrentLoad:    lb.CurrentLoad,
		LoadHistory:    loadHistory,
		BarrelHistory:  history,
		CreatedAt:      lb.CreatedAt,
		UpdatedAt:      lb.UpdatedAt,
	}
}

// migratedActionNotes folds the rifle's action type and free-text notes
// into the new action's notes field, dropping empty segments.
func migratedActionNotes(actionType, notes string) string {
	segments := make([]string, 0, 2)
	if actionType != "" {
		segments = append(segments, "Action type: "+actionType)
	}
	if notes != "" {
		segments = append(segments, notes)
	}
	return strings.Join(segments, "\n")
}

func legacyComponents(old *legacySnapshot) models.Components {
	if old.Components == nil {
		return models.Components{
			Powders:     []string{},
			Primers:     []string{},
			Projectiles: []string{},
		}
	}
	return *old.Components
}
