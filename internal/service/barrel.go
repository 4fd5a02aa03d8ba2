package service

import (
	"time"

	apperrors "reloading-bench-backend/internal/errors"
	"reloading-bench-backend/internal/storage"
	"reloading-bench-backend/internal/storage/models"

	"github.com/go-playground/validator/v10"
)

// BarrelService provides barrel business logic, including the derived
// round count on every read path
type BarrelService struct {
	store     *storage.Store
	validator *validator.Validate
}

// Ensure BarrelService implements BarrelServiceInterface
var _ BarrelServiceInterface = (*BarrelService)(nil)

// NewBarrelService creates a new BarrelService
func NewBarrelService(store *storage.Store, validator *validator.Validate) *BarrelService {
	return &BarrelService{
		store:     store,
		validator: validator,
	}
}

// CreateBarrelRequest is the payload for creating a barrel
type CreateBarrelRequest struct {
	ActionID     *string `json:"actionId"`
	SerialNumber string  `json:"serialNumber"`
	Caliber      string  `json:"caliber"`
	BarrelLength string  `json:"barrelLength"`
	TwistRate    string  `json:"twistRate"`
	ZeroDistance string  `json:"zeroDistance"`
	Notes        string  `json:"notes"`
}

// UpdateBarrelRequest is the payload for a partial barrel update. An
// explicit null actionId detaches the barrel from its action.
type UpdateBarrelRequest struct {
	ActionID     Nullable[string] `json:"actionId"`
	SerialNumber *string          `json:"serialNumber"`
	Caliber      *string          `json:"caliber"`
	BarrelLength *string          `json:"barrelLength"`
	TwistRate    *string          `json:"twistRate"`
	ZeroDistance *string          `json:"zeroDistance"`
	Notes        *string          `json:"notes"`
}

// BarrelResponse is a barrel with its derived round count
type BarrelResponse struct {
	models.Barrel
	RoundCount int `json:"roundCount"`
}

// BarrelDetailResponse additionally embeds the boxes currently assigned
type BarrelDetailResponse struct {
	models.Barrel
	Boxes      []models.AmmoBox `json:"boxes"`
	RoundCount int              `json:"roundCount"`
}

// List retrieves barrels, optionally filtered to one action, each with
// its round count computed from the full box history
func (s *BarrelService) List(actionID string) ([]BarrelResponse, error) {
	var out []BarrelResponse
	err := s.store.View(func(data *models.Snapshot) error {
		now := time.Now()
		out = make([]BarrelResponse, 0, len(data.Barrels))
		for _, barrel := range data.Barrels {
			if actionID != "" && (barrel.ActionID == nil || *barrel.ActionID != actionID) {
				continue
			}
			out = append(out, BarrelResponse{
				Barrel:     barrel,
				RoundCount: RoundCount(barrel.ID, data.Boxes, now),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get retrieves a barrel with its assigned boxes and round count
func (s *BarrelService) Get(id string) (*BarrelDetailResponse, error) {
	var out *BarrelDetailResponse
	err := s.store.View(func(data *models.Snapshot) error {
		barrel := findBarrel(data.Barrels, id)
		if barrel == nil {
			return apperrors.ErrBarrelNotFound
		}
		assigned := []models.AmmoBox{}
		for _, box := range data.Boxes {
			if box.BarrelID != nil && *box.BarrelID == id {
				assigned = append(assigned, box)
			}
		}
		out = &BarrelDetailResponse{
			Barrel:     *barrel,
			Boxes:      assigned,
			RoundCount: RoundCount(id, data.Boxes, time.Now()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create creates a new barrel. The action, when given, must exist.
func (s *BarrelService) Create(req CreateBarrelRequest) (*models.Barrel, error) {
	now := time.Now()
	barrel := models.Barrel{
		ID:           models.NewID(),
		ActionID:     req.ActionID,
		SerialNumber: req.SerialNumber,
		Caliber:      req.Caliber,
		BarrelLength: req.BarrelLength,
		TwistRate:    req.TwistRate,
		ZeroDistance: req.ZeroDistance,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.store.Update(func(data *models.Snapshot) error {
		if barrel.ActionID != nil && *barrel.ActionID != "" {
			if findAction(data.Actions, *barrel.ActionID) == nil {
				return apperrors.ErrActionNotFound
			}
		}
		data.Barrels = append(data.Barrels, barrel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &barrel, nil
}

// Update applies a partial update to a barrel
func (s *BarrelService) Update(id string, req UpdateBarrelRequest) (*models.Barrel, error) {
	var out models.Barrel
	err := s.store.Update(func(data *models.Snapshot) error {
		barrel := findBarrel(data.Barrels, id)
		if barrel == nil {
			return apperrors.ErrBarrelNotFound
		}
		if req.ActionID.Set {
			if req.ActionID.Value != nil && *req.ActionID.Value != "" {
				if findAction(data.Actions, *req.ActionID.Value) == nil {
					return apperrors.ErrActionNotFound
				}
			}
			barrel.ActionID = req.ActionID.Value
		}
		if req.SerialNumber != nil {
			barrel.SerialNumber = *req.SerialNumber
		}
		if req.Caliber != nil {
			barrel.Caliber = *req.Caliber
		}
		if req.BarrelLength != nil {
			barrel.BarrelLength = *req.BarrelLength
		}
		if req.TwistRate != nil {
			barrel.TwistRate = *req.TwistRate
		}
		if req.ZeroDistance != nil {
			barrel.ZeroDistance = *req.ZeroDistance
		}
		if req.Notes != nil {
			barrel.Notes = *req.Notes
		}
		barrel.UpdatedAt = time.Now()
		out = *barrel
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a barrel. Refused while boxes are assigned to it.
func (s *BarrelService) Delete(id string) error {
	return s.store.Update(func(data *models.Snapshot) error {
		assigned := 0
		for _, box := range data.Boxes {
			if box.BarrelID != nil && *box.BarrelID == id {
				assigned++
			}
		}
		if assigned > 0 {
			return &apperrors.InUseError{Entity: "barrel", Dependent: "box", Count: assigned}
		}
		for i := range data.Barrels {
			if data.Barrels[i].ID == id {
				data.Barrels = append(data.Barrels[:i], data.Barrels[i+1:]...)
				return nil
			}
		}
		return apperrors.ErrBarrelNotFound
	})
}
