package service

import (
	"reloading-bench-backend/internal/storage/models"
)

// BoxServiceInterface defines box operations
type BoxServiceInterface interface {
	List(filter BoxFilter) ([]models.AmmoBox, error)
	Get(id string) (*models.AmmoBox, error)
	Create(req CreateBoxRequest) (*models.AmmoBox, error)
	Update(id string, req UpdateBoxRequest) (*models.AmmoBox, error)
	Delete(id string) error
	Reload(id string, req ReloadRequest) (*models.AmmoBox, error)
	AssignBarrel(id string, req AssignBarrelRequest) (*models.AmmoBox, error)
	SetStatus(id string, status string) (*models.AmmoBox, error)
}

// ActionServiceInterface defines firearm action operations
type ActionServiceInterface interface {
	List() ([]models.Action, error)
	Get(id string) (*ActionDetailResponse, error)
	Create(req CreateActionRequest) (*models.Action, error)
	Update(id string, req UpdateActionRequest) (*models.Action, error)
	Delete(id string) error
}

// BarrelServiceInterface defines barrel operations
type BarrelServiceInterface interface {
	List(actionID string) ([]BarrelResponse, error)
	Get(id string) (*BarrelDetailResponse, error)
	Create(req CreateBarrelRequest) (*models.Barrel, error)
	Update(id string, req UpdateBarrelRequest) (*models.Barrel, error)
	Delete(id string) error
}

// ComponentServiceInterface defines component list operations
type ComponentServiceInterface interface {
	Get() (*models.Components, error)
	Add(listName, name string) (*models.Components, error)
	Rename(listName string, index int, name string) (*models.Components, error)
	Remove(listName string, index int) (*models.Components, error)
}

// SavedLoadServiceInterface defines saved load recipe operations
type SavedLoadServiceInterface interface {
	List() ([]models.SavedLoad, error)
	Get(id string) (*models.SavedLoad, error)
	Create(req CreateSavedLoadRequest) (*models.SavedLoad, error)
	Update(id string, req UpdateSavedLoadRequest) (*models.SavedLoad, error)
	Delete(id string) error
}

// CartridgeServiceInterface defines factory cartridge operations
type CartridgeServiceInterface interface {
	List() ([]models.Cartridge, error)
	Get(id string) (*models.Cartridge, error)
	Create(req CreateCartridgeRequest) (*models.Cartridge, error)
	Update(id string, req UpdateCartridgeRequest) (*models.Cartridge, error)
	Delete(id string) error
}

// ElevationServiceInterface defines DOPE record operations
type ElevationServiceInterface interface {
	List(barrelID, loadID string) ([]models.Elevation, error)
	Get(id string) (*models.Elevation, error)
	Create(req CreateElevationRequest) (*models.Elevation, error)
	Update(id string, req UpdateElevationRequest) (*models.Elevation, error)
	Delete(id string) error
}
