package service

import (
	"sort"
	"time"

	apperrors "reloading-bench-backend/internal/errors"
	"reloading-bench-backend/internal/storage"
	"reloading-bench-backend/internal/storage/models"

	"github.com/go-playground/validator/v10"
)

// ElevationService provides DOPE record business logic. Records reference
// a barrel and a saved load; both must exist at write time.
type ElevationService struct {
	store     *storage.Store
	validator *validator.Validate
}

// Ensure ElevationService implements ElevationServiceInterface
var _ ElevationServiceInterface = (*ElevationService)(nil)

// NewElevationService creates a new ElevationService
func NewElevationService(store *storage.Store, validator *validator.Validate) *ElevationService {
	return &ElevationService{
		store:     store,
		validator: validator,
	}
}

// CreateElevationRequest is the payload for recording a DOPE data point
type CreateElevationRequest struct {
	BarrelID   string     `json:"barrelId" validate:"required"`
	LoadID     string     `json:"loadId" validate:"required"`
	DistanceM  float64    `json:"distanceM"`
	MOA        float64    `json:"moa"`
	RecordedAt *time.Time `json:"recordedAt"`
}

// UpdateElevationRequest is the payload for a partial elevation update
type UpdateElevationRequest struct {
	BarrelID   *string    `json:"barrelId"`
	LoadID     *string    `json:"loadId"`
	DistanceM  *float64   `json:"distanceM"`
	MOA        *float64   `json:"moa"`
	RecordedAt *time.Time `json:"recordedAt"`
}

// List retrieves elevations, optionally filtered by barrel and load,
// sorted by distance ascending then recording time descending
func (s *ElevationService) List(barrelID, loadID string) ([]models.Elevation, error) {
	var out []models.Elevation
	err := s.store.View(func(data *models.Snapshot) error {
		out = make([]models.Elevation, 0, len(data.Elevations))
		for _, e := range data.Elevations {
			if barrelID != "" && e.BarrelID != barrelID {
				continue
			}
			if loadID != "" && e.LoadID != loadID {
				continue
			}
			out = append(out, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DistanceM != out[j].DistanceM {
			return out[i].DistanceM < out[j].DistanceM
		}
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})
	return out, nil
}

func findElevation(elevations []models.Elevation, id string) *models.Elevation {
	for i := range elevations {
		if elevations[i].ID == id {
			return &elevations[i]
		}
	}
	return nil
}

// Get retrieves an elevation by id
func (s *ElevationService) Get(id string) (*models.Elevation, error) {
	var out *models.Elevation
	err := s.store.View(func(data *models.Snapshot) error {
		elevation := findElevation(data.Elevations, id)
		if elevation == nil {
			return apperrors.ErrElevationNotFound
		}
		cp := *elevation
		out = &cp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create records a new elevation after validating both references
func (s *ElevationService) Create(req CreateElevationRequest) (*models.Elevation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: "barrelId and loadId are required"}
	}

	now := time.Now()
	recordedAt := now
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}
	elevation := models.Elevation{
		ID:         models.NewID(),
		BarrelID:   req.BarrelID,
		LoadID:     req.LoadID,
		DistanceM:  req.DistanceM,
		MOA:        req.MOA,
		RecordedAt: recordedAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := s.store.Update(func(data *models.Snapshot) error {
		if findBarrel(data.Barrels, req.BarrelID) == nil {
			return apperrors.ErrBarrelNotFound
		}
		if findSavedLoad(data.Loads, req.LoadID) == nil {
			return apperrors.ErrSavedLoadNotFound
		}
		data.Elevations = append(data.Elevations, elevation)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &elevation, nil
}

// Update applies a partial update to an elevation, re-validating any
// changed reference
func (s *ElevationService) Update(id string, req UpdateElevationRequest) (*models.Elevation, error) {
	var out models.Elevation
	err := s.store.Update(func(data *models.Snapshot) error {
		elevation := findElevation(data.Elevations, id)
		if elevation == nil {
			return apperrors.ErrElevationNotFound
		}
		if req.BarrelID != nil && findBarrel(data.Barrels, *req.BarrelID) == nil {
			return apperrors.ErrBarrelNotFound
		}
		if req.LoadID != nil && findSavedLoad(data.Loads, *req.LoadID) == nil {
			return apperrors.ErrSavedLoadNotFound
		}
		if req.BarrelID != nil {
			elevation.BarrelID = *req.BarrelID
		}
		if req.LoadID != nil {
			elevation.LoadID = *req.LoadID
		}
		if req.DistanceM != nil {
			elevation.DistanceM = *req.DistanceM
		}
		if req.MOA != nil {
			elevation.MOA = *req.MOA
		}
		if req.RecordedAt != nil {
			elevation.RecordedAt = *req.RecordedAt
		}
		elevation.UpdatedAt = time.Now()
		out = *elevation
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an elevation
func (s *ElevationService) Delete(id string) error {
	return s.store.Update(func(data *models.Snapshot) error {
		for i := range data.Elevations {
			if data.Elevations[i].ID == id {
				data.Elevations = append(data.Elevations[:i], data.Elevations[i+1:]...)
				return nil
			}
		}
		return apperrors.ErrElevationNotFound
	})
}
