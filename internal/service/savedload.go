package service

import (
	"time"

	apperrors "reloading-bench-backend/internal/errors"
	"reloading-bench-backend/internal/storage"
	"reloading-bench-backend/internal/storage/models"

	"github.com/go-playground/validator/v10"
)

// SavedLoadService provides saved load recipe business logic
type SavedLoadService struct {
	store     *storage.Store
	validator *validator.Validate
}

// Ensure SavedLoadService implements SavedLoadServiceInterface
var _ SavedLoadServiceInterface = (*SavedLoadService)(nil)

// NewSavedLoadService creates a new SavedLoadService
func NewSavedLoadService(store *storage.Store, validator *validator.Validate) *SavedLoadService {
	return &SavedLoadService{
		store:     store,
		validator: validator,
	}
}

// CreateSavedLoadRequest is the payload for creating a saved load
type CreateSavedLoadRequest struct {
	Name         string `json:"name" validate:"required"`
	PowderCharge string `json:"powderCharge"`
	Powder       string `json:"powder"`
	Primer       string `json:"primer"`
	Projectile   string `json:"projectile"`
	Length       string `json:"length"`
	Notes        string `json:"notes"`
}

// UpdateSavedLoadRequest is the payload for a partial saved load update
type UpdateSavedLoadRequest struct {
	Name         *string `json:"name"`
	PowderCharge *string `json:"powderCharge"`
	Powder       *string `json:"powder"`
	Primer       *string `json:"primer"`
	Projectile   *string `json:"projectile"`
	Length       *string `json:"length"`
	Notes        *string `json:"notes"`
}

// List retrieves all saved loads
func (s *SavedLoadService) List() ([]models.SavedLoad, error) {
	var out []models.SavedLoad
	err := s.store.View(func(data *models.Snapshot) error {
		out = make([]models.SavedLoad, len(data.Loads))
		copy(out, data.Loads)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func findSavedLoad(loads []models.SavedLoad, id string) *models.SavedLoad {
	for i := range loads {
		if loads[i].ID == id {
			return &loads[i]
		}
	}
	return nil
}

// Get retrieves a saved load by id
func (s *SavedLoadService) Get(id string) (*models.SavedLoad, error) {
	var out *models.SavedLoad
	err := s.store.View(func(data *models.Snapshot) error {
		load := findSavedLoad(data.Loads, id)
		if load == nil {
			return apperrors.ErrSavedLoadNotFound
		}
		cp := *load
		out = &cp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create creates a new saved load
func (s *SavedLoadService) Create(req CreateSavedLoadRequest) (*models.SavedLoad, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Field: "name", Message: "name is required"}
	}

	now := time.Now()
	load := models.SavedLoad{
		ID:           models.NewID(),
		Name:         req.Name,
		PowderCharge: req.PowderCharge,
		Powder:       req.Powder,
		Primer:       req.Primer,
		Projectile:   req.Projectile,
		Length:       req.Length,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.store.Update(func(data *models.Snapshot) error {
		data.Loads = append(data.Loads, load)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &load, nil
}

// Update applies a partial update to a saved load
func (s *SavedLoadService) Update(id string, req UpdateSavedLoadRequest) (*models.SavedLoad, error) {
	var out models.SavedLoad
	err := s.store.Update(func(data *models.Snapshot) error {
		load := findSavedLoad(data.Loads, id)
		if load == nil {
			return apperrors.ErrSavedLoadNotFound
		}
		if req.Name != nil {
			load.Name = *req.Name
		}
		if req.PowderCharge != nil {
			load.PowderCharge = *req.PowderCharge
		}
		if req.Powder != nil {
			load.Powder = *req.Powder
		}
		if req.Primer != nil {
			load.Primer = *req.Primer
		}
		if req.Projectile != nil {
			load.Projectile = *req.Projectile
		}
		if req.Length != nil {
			load.Length = *req.Length
		}
		if req.Notes != nil {
			load.Notes = *req.Notes
		}
		load.UpdatedAt = time.Now()
		out = *load
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a saved load
func (s *SavedLoadService) Delete(id string) error {
	return s.store.Update(func(data *models.Snapshot) error {
		for i := range data.Loads {
			if data.Loads[i].ID == id {
				data.Loads = append(data.Loads[:i], data.Loads[i+1:]...)
				return nil
			}
		}
		return apperrors.ErrSavedLoadNotFound
	})
}
