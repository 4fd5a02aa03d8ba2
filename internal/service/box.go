package service

import (
	"strings"
	"time"

	apperrors "reloading-bench-backend/internal/errors"
	"reloading-bench-backend/internal/storage"
	"reloading-bench-backend/internal/storage/models"

	"github.com/go-playground/validator/v10"
)

// BoxService provides ammo box business logic
type BoxService struct {
	store     *storage.Store
	validator *validator.Validate
}

// Ensure BoxService implements BoxServiceInterface
var _ BoxServiceInterface = (*BoxService)(nil)

// NewBoxService creates a new BoxService
func NewBoxService(store *storage.Store, validator *validator.Validate) *BoxService {
	return &BoxService{
		store:     store,
		validator: validator,
	}
}

// BoxFilter narrows the box listing. Search matches box number, brand and
// the assigned barrel's display name, case-insensitively.
type BoxFilter struct {
	Search   string
	BarrelID string
	Status   string
	Brand    string
}

// CreateBoxRequest is the payload for creating a box
type CreateBoxRequest struct {
	Brand          string       `json:"brand"`
	BoxNumber      string       `json:"boxNumber"`
	NumberOfRounds int          `json:"numberOfRounds" validate:"gte=0"`
	BarrelID       *string      `json:"barrelId"`
	CurrentLoad    *models.Load `json:"currentLoad"`
}

// UpdateBoxRequest is the payload for a partial box update. An explicit
// null currentLoad empties the box.
type UpdateBoxRequest struct {
	Brand          *string               `json:"brand"`
	BoxNumber      *string               `json:"boxNumber"`
	NumberOfRounds *int                  `json:"numberOfRounds" validate:"omitempty,gte=0"`
	CurrentLoad    Nullable[models.Load] `json:"currentLoad"`
}

// ReloadRequest replaces the box's current load, archiving the old one
type ReloadRequest struct {
	NewLoad        *models.Load `json:"newLoad" validate:"required"`
	NumberOfRounds *int         `json:"numberOfRounds" validate:"omitempty,gte=0"`
	Notes          string       `json:"notes"`
}

// AssignBarrelRequest moves the box to a different barrel (or to none)
type AssignBarrelRequest struct {
	BarrelID *string `json:"barrelId"`
}

// List retrieves boxes matching the filter
func (s *BoxService) List(filter BoxFilter) ([]models.AmmoBox, error) {
	var out []models.AmmoBox
	err := s.store.View(func(data *models.Snapshot) error {
		out = make([]models.AmmoBox, 0, len(data.Boxes))
		for _, box := range data.Boxes {
			if !matchesFilter(&box, filter, data.Barrels) {
				continue
			}
			out = append(out, box)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func matchesFilter(box *models.AmmoBox, filter BoxFilter, barrels []models.Barrel) bool {
	if filter.BarrelID != "" && (box.BarrelID == nil || *box.BarrelID != filter.BarrelID) {
		return false
	}
	if filter.Status != "" && box.Status != filter.Status {
		return false
	}
	if filter.Brand != "" && box.Brand != filter.Brand {
		return false
	}
	if filter.Search != "" {
		q := strings.ToLower(filter.Search)
		barrelName := ""
		if box.BarrelID != nil {
			if barrel := findBarrel(barrels, *box.BarrelID); barrel != nil {
				barrelName = barrel.DisplayName()
			}
		}
		if !strings.Contains(strings.ToLower(box.BoxNumber), q) &&
			!strings.Contains(strings.ToLower(box.Brand), q) &&
			!strings.Contains(strings.ToLower(barrelName), q) {
			return false
		}
	}
	return true
}

func findBarrel(barrels []models.Barrel, id string) *models.Barrel {
	for i := range barrels {
		if barrels[i].ID == id {
			return &barrels[i]
		}
	}
	return nil
}

func findBox(boxes []models.AmmoBox, id string) *models.AmmoBox {
	for i := range boxes {
		if boxes[i].ID == id {
			return &boxes[i]
		}
	}
	return nil
}

// Get retrieves a box by id
func (s *BoxService) Get(id string) (*models.AmmoBox, error) {
	var out *models.AmmoBox
	err := s.store.View(func(data *models.Snapshot) error {
		box := findBox(data.Boxes, id)
		if box == nil {
			return apperrors.ErrBoxNotFound
		}
		cp := *box
		out = &cp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create creates a new box. A barrel assigned at creation opens the first
// barrel-history entry.
func (s *BoxService) Create(req CreateBoxRequest) (*models.AmmoBox, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	now := time.Now()
	box := models.AmmoBox{
		ID:             models.NewID(),
		Brand:          req.Brand,
		BoxNumber:      req.BoxNumber,
		NumberOfRounds: req.NumberOfRounds,
		BarrelID:       req.BarrelID,
		Status:         models.StatusActive,
		CurrentLoad:    req.CurrentLoad,
		LoadHistory:    []models.LoadHistoryEntry{},
		BarrelHistory:  []models.BarrelHistoryEntry{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.store.Update(func(data *models.Snapshot) error {
		if box.BarrelID != nil {
			if barrel := findBarrel(data.Barrels, *box.BarrelID); barrel != nil {
				box.BarrelHistory = append(box.BarrelHistory, models.BarrelHistoryEntry{
					BarrelID:     barrel.ID,
					BarrelName:   barrel.DisplayName(),
					AssignedDate: now,
				})
			}
		}
		data.Boxes = append(data.Boxes, box)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &box, nil
}

// Update applies a partial update to a box
func (s *BoxService) Update(id string, req UpdateBoxRequest) (*models.AmmoBox, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	var out models.AmmoBox
	err := s.store.Update(func(data *models.Snapshot) error {
		box := findBox(data.Boxes, id)
		if box == nil {
			return apperrors.ErrBoxNotFound
		}
		if req.Brand != nil {
			box.Brand = *req.Brand
		}
		if req.BoxNumber != nil {
			box.BoxNumber = *req.BoxNumber
		}
		if req.NumberOfRounds != nil {
			box.NumberOfRounds = *req.NumberOfRounds
		}
		if req.CurrentLoad.Set {
			box.CurrentLoad = req.CurrentLoad.Value
		}
		box.UpdatedAt = time.Now()
		out = *box
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a box
func (s *BoxService) Delete(id string) error {
	return s.store.Update(func(data *models.Snapshot) error {
		for i := range data.Boxes {
			if data.Boxes[i].ID == id {
				data.Boxes = append(data.Boxes[:i], data.Boxes[i+1:]...)
				return nil
			}
		}
		return apperrors.ErrBoxNotFound
	})
}

// Reload archives the current load into history and installs the new one.
// The archived entry is dated at the moment of replacement so round-count
// derivation can place it inside the assignment period that was open.
func (s *BoxService) Reload(id string, req ReloadRequest) (*models.AmmoBox, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Field: "newLoad", Message: "newLoad is required"}
	}

	var out models.AmmoBox
	err := s.store.Update(func(data *models.Snapshot) error {
		box := findBox(data.Boxes, id)
		if box == nil {
			return apperrors.ErrBoxNotFound
		}

		now := time.Now()
		if box.CurrentLoad != nil {
			entry := models.LoadHistoryEntry{
				Load:  *box.CurrentLoad,
				Date:  now,
				Notes: req.Notes,
			}
			// Newest first.
			box.LoadHistory = append([]models.LoadHistoryEntry{entry}, box.LoadHistory...)
		}

		load := *req.NewLoad
		box.CurrentLoad = &load
		if req.NumberOfRounds != nil {
			box.NumberOfRounds = *req.NumberOfRounds
		}
		box.UpdatedAt = now
		out = *box
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AssignBarrel closes the open barrel-history entry, then opens a new one
// for the given barrel. A nil barrel id just unassigns. At most one open
// entry exists per box and it always matches the box's barrelId.
func (s *BoxService) AssignBarrel(id string, req AssignBarrelRequest) (*models.AmmoBox, error) {
	var out models.AmmoBox
	err := s.store.Update(func(data *models.Snapshot) error {
		box := findBox(data.Boxes, id)
		if box == nil {
			return apperrors.ErrBoxNotFound
		}

		now := time.Now()

		var barrel *models.Barrel
		if req.BarrelID != nil && *req.BarrelID != "" {
			barrel = findBarrel(data.Barrels, *req.BarrelID)
			if barrel == nil {
				return apperrors.ErrBarrelNotFound
			}
		}

		if box.BarrelID != nil {
			for i := range box.BarrelHistory {
				entry := &box.BarrelHistory[i]
				if entry.BarrelID == *box.BarrelID && entry.UnassignedDate == nil {
					entry.UnassignedDate = &now
					break
				}
			}
		}

		if barrel != nil {
			entry := models.BarrelHistoryEntry{
				BarrelID:     barrel.ID,
				BarrelName:   barrel.DisplayName(),
				AssignedDate: now,
			}
			box.BarrelHistory = append([]models.BarrelHistoryEntry{entry}, box.BarrelHistory...)
			barrelID := barrel.ID
			box.BarrelID = &barrelID
		} else {
			box.BarrelID = nil
		}

		box.UpdatedAt = now
		out = *box
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SetStatus marks a box active or retired
func (s *BoxService) SetStatus(id string, status string) (*models.AmmoBox, error) {
	if status != models.StatusActive && status != models.StatusRetired {
		return nil, &apperrors.ValidationError{Field: "status", Message: "status must be 'active' or 'retired'"}
	}

	var out models.AmmoBox
	err := s.store.Update(func(data *models.Snapshot) error {
		box := findBox(data.Boxes, id)
		if box == nil {
			return apperrors.ErrBoxNotFound
		}
		box.Status = status
		box.UpdatedAt = time.Now()
		out = *box
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
