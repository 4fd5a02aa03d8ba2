package service

import (
	"time"

	apperrors "reloading-bench-backend/internal/errors"
	"reloading-bench-backend/internal/storage"
	"reloading-bench-backend/internal/storage/models"

	"github.com/go-playground/validator/v10"
)

// CartridgeService provides factory cartridge business logic
type CartridgeService struct {
	store     *storage.Store
	validator *validator.Validate
}

// Ensure CartridgeService implements CartridgeServiceInterface
var _ CartridgeServiceInterface = (*CartridgeService)(nil)

// NewCartridgeService creates a new CartridgeService
func NewCartridgeService(store *storage.Store, validator *validator.Validate) *CartridgeService {
	return &CartridgeService{
		store:     store,
		validator: validator,
	}
}

// CreateCartridgeRequest is the payload for creating a cartridge
type CreateCartridgeRequest struct {
	Name           string   `json:"name" validate:"required"`
	Brand          string   `json:"brand"`
	BulletWeight   *float64 `json:"bulletWeight"`
	MuzzleVelocity *float64 `json:"muzzleVelocity"`
}

// UpdateCartridgeRequest is the payload for a partial cartridge update.
// Explicit nulls clear the optional ballistic fields.
type UpdateCartridgeRequest struct {
	Name           *string           `json:"name"`
	Brand          *string           `json:"brand"`
	BulletWeight   Nullable[float64] `json:"bulletWeight"`
	MuzzleVelocity Nullable[float64] `json:"muzzleVelocity"`
}

// List retrieves all cartridges
func (s *CartridgeService) List() ([]models.Cartridge, error) {
	var out []models.Cartridge
	err := s.store.View(func(data *models.Snapshot) error {
		out = make([]models.Cartridge, len(data.Cartridges))
		copy(out, data.Cartridges)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func findCartridge(cartridges []models.Cartridge, id string) *models.Cartridge {
	for i := range cartridges {
		if cartridges[i].ID == id {
			return &cartridges[i]
		}
	}
	return nil
}

// Get retrieves a cartridge by id
func (s *CartridgeService) Get(id string) (*models.Cartridge, error) {
	var out *models.Cartridge
	err := s.store.View(func(data *models.Snapshot) error {
		cartridge := findCartridge(data.Cartridges, id)
		if cartridge == nil {
			return apperrors.ErrCartridgeNotFound
		}
		cp := *cartridge
		out = &cp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create creates a new cartridge
func (s *CartridgeService) Create(req CreateCartridgeRequest) (*models.Cartridge, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Field: "name", Message: "name is required"}
	}

	now := time.Now()
	cartridge := models.Cartridge{
		ID:             models.NewID(),
		Name:           req.Name,
		Brand:          req.Brand,
		BulletWeight:   req.BulletWeight,
		MuzzleVelocity: req.MuzzleVelocity,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.store.Update(func(data *models.Snapshot) error {
		data.Cartridges = append(data.Cartridges, cartridge)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cartridge, nil
}

// Update applies a partial update to a cartridge
func (s *CartridgeService) Update(id string, req UpdateCartridgeRequest) (*models.Cartridge, error) {
	var out models.Cartridge
	err := s.store.Update(func(data *models.Snapshot) error {
		cartridge := findCartridge(data.Cartridges, id)
		if cartridge == nil {
			return apperrors.ErrCartridgeNotFound
		}
		if req.Name != nil {
			cartridge.Name = *req.Name
		}
		if req.Brand != nil {
			cartridge.Brand = *req.Brand
		}
		if req.BulletWeight.Set {
			cartridge.BulletWeight = req.BulletWeight.Value
		}
		if req.MuzzleVelocity.Set {
			cartridge.MuzzleVelocity = req.MuzzleVelocity.Value
		}
		cartridge.UpdatedAt = time.Now()
		out = *cartridge
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a cartridge
func (s *CartridgeService) Delete(id string) error {
	return s.store.Update(func(data *models.Snapshot) error {
		for i := range data.Cartridges {
			if data.Cartridges[i].ID == id {
				data.Cartridges = append(data.Cartridges[:i], data.Cartridges[i+1:]...)
				return nil
			}
		}
		return apperrors.ErrCartridgeNotFound
	})
}
