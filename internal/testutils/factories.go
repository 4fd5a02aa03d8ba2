package testutils

import (
	"time"

	"reloading-bench-backend/internal/storage/models"
)

// BoxFactory provides methods to create test AmmoBox data
type BoxFactory struct{}

// NewBoxFactory creates a new BoxFactory
func NewBoxFactory() *BoxFactory {
	return &BoxFactory{}
}

// Create creates a test box with default values
func (f *BoxFactory) Create() *models.AmmoBox {
	now := time.Now()
	return &models.AmmoBox{
		ID:             models.NewID(),
		Brand:          "Lapua",
		BoxNumber:      "1",
		NumberOfRounds: 50,
		Status:         models.StatusActive,
		LoadHistory:    []models.LoadHistoryEntry{},
		BarrelHistory:  []models.BarrelHistoryEntry{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// WithRounds sets the box's round count
func (f *BoxFactory) WithRounds(n int) *models.AmmoBox {
	box := f.Create()
	box.NumberOfRounds = n
	return box
}

// WithBarrel assigns the box to a barrel with an open history entry
func (f *BoxFactory) WithBarrel(barrelID string, assigned time.Time) *models.AmmoBox {
	box := f.Create()
	box.BarrelID = &barrelID
	box.BarrelHistory = []models.BarrelHistoryEntry{
		{
			BarrelID:     barrelID,
			BarrelName:   "6.5 Creedmoor 26\"",
			AssignedDate: assigned,
		},
	}
	return box
}

// BarrelFactory provides methods to create test Barrel data
type BarrelFactory struct{}

// NewBarrelFactory creates a new BarrelFactory
func NewBarrelFactory() *BarrelFactory {
	return &BarrelFactory{}
}

// Create creates a test barrel with default values
func (f *BarrelFactory) Create() *models.Barrel {
	now := time.Now()
	return &models.Barrel{
		ID:           models.NewID(),
		SerialNumber: "B-1001",
		Caliber:      "6.5 Creedmoor",
		BarrelLength: "26\"",
		TwistRate:    "1:8",
		ZeroDistance: "100m",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// WithAction attaches the barrel to an action
func (f *BarrelFactory) WithAction(actionID string) *models.Barrel {
	barrel := f.Create()
	barrel.ActionID = &actionID
	return barrel
}

// ActionFactory provides methods to create test Action data
type ActionFactory struct{}

// NewActionFactory creates a new ActionFactory
func NewActionFactory() *ActionFactory {
	return &ActionFactory{}
}

// Create creates a test action with default values
func (f *ActionFactory) Create() *models.Action {
	now := time.Now()
	return &models.Action{
		ID:           models.NewID(),
		Name:         "Tikka T3x",
		SerialNumber: "A-2001",
		ScopeDetails: "Vortex Viper PST 5-25x50",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// SavedLoadFactory provides methods to create test SavedLoad data
type SavedLoadFactory struct{}

// NewSavedLoadFactory creates a new SavedLoadFactory
func NewSavedLoadFactory() *SavedLoadFactory {
	return &SavedLoadFactory{}
}

// Create creates a test saved load with default values
func (f *SavedLoadFactory) Create() *models.SavedLoad {
	now := time.Now()
	return &models.SavedLoad{
		ID:           models.NewID(),
		Name:         "140gr ELD-M match",
		PowderCharge: "41.5gr",
		Powder:       "H4350",
		Primer:       "CCI BR-2",
		Projectile:   "Hornady 140gr ELD-M",
		Length:       "2.810\"",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// TestLoad returns a load recipe for reload tests
func TestLoad() *models.Load {
	return &models.Load{
		PowderCharge: "41.5gr",
		Powder:       "H4350",
		Primer:       "CCI BR-2",
		Projectile:   "Hornady 140gr ELD-M",
		Length:       "2.810\"",
	}
}
