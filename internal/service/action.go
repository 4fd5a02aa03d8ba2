package service

import (
	"time"

	apperrors "reloading-bench-backend/internal/errors"
	"reloading-bench-backend/internal/storage"
	"reloading-bench-backend/internal/storage/models"

	"github.com/go-playground/validator/v10"
)

// ActionService provides firearm action business logic
type ActionService struct {
	store     *storage.Store
	validator *validator.Validate
}

// Ensure ActionService implements ActionServiceInterface
var _ ActionServiceInterface = (*ActionService)(nil)

// NewActionService creates a new ActionService
func NewActionService(store *storage.Store, validator *validator.Validate) *ActionService {
	return &ActionService{
		store:     store,
		validator: validator,
	}
}

// CreateActionRequest is the payload for creating an action
type CreateActionRequest struct {
	Name         string `json:"name" validate:"required"`
	SerialNumber string `json:"serialNumber"`
	ScopeDetails string `json:"scopeDetails"`
	Notes        string `json:"notes"`
}

// UpdateActionRequest is the payload for a partial action update
type UpdateActionRequest struct {
	Name         *string `json:"name"`
	SerialNumber *string `json:"serialNumber"`
	ScopeDetails *string `json:"scopeDetails"`
	Notes        *string `json:"notes"`
}

// ActionDetailResponse is an action together with its attached barrels
type ActionDetailResponse struct {
	models.Action
	Barrels []models.Barrel `json:"barrels"`
}

// List retrieves all actions
func (s *ActionService) List() ([]models.Action, error) {
	var out []models.Action
	err := s.store.View(func(data *models.Snapshot) error {
		out = make([]models.Action, len(data.Actions))
		copy(out, data.Actions)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func findAction(actions []models.Action, id string) *models.Action {
	for i := range actions {
		if actions[i].ID == id {
			return &actions[i]
		}
	}
	return nil
}

// Get retrieves an action with its barrels
func (s *ActionService) Get(id string) (*ActionDetailResponse, error) {
	var out *ActionDetailResponse
	err := s.store.View(func(data *models.Snapshot) error {
		action := findAction(data.Actions, id)
		if action == nil {
			return apperrors.ErrActionNotFound
		}
		barrels := []models.Barrel{}
		for _, barrel := range data.Barrels {
			if barrel.ActionID != nil && *barrel.ActionID == id {
				barrels = append(barrels, barrel)
			}
		}
		out = &ActionDetailResponse{Action: *action, Barrels: barrels}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create creates a new action
func (s *ActionService) Create(req CreateActionRequest) (*models.Action, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Field: "name", Message: "name is required"}
	}

	now := time.Now()
	action := models.Action{
		ID:           models.NewID(),
		Name:         req.Name,
		SerialNumber: req.SerialNumber,
		ScopeDetails: req.ScopeDetails,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.store.Update(func(data *models.Snapshot) error {
		data.Actions = append(data.Actions, action)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &action, nil
}

// Update applies a partial update to an action
func (s *ActionService) Update(id string, req UpdateActionRequest) (*models.Action, error) {
	var out models.Action
	err := s.store.Update(func(data *models.Snapshot) error {
		action := findAction(data.Actions, id)
		if action == nil {
			return apperrors.ErrActionNotFound
		}
		if req.Name != nil {
			action.Name = *req.Name
		}
		if req.SerialNumber != nil {
			action.SerialNumber = *req.SerialNumber
		}
		if req.ScopeDetails != nil {
			action.ScopeDetails = *req.ScopeDetails
		}
		if req.Notes != nil {
			action.Notes = *req.Notes
		}
		action.UpdatedAt = time.Now()
		out = *action
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an action. Refused while barrels are attached.
func (s *ActionService) Delete(id string) error {
	return s.store.Update(func(data *models.Snapshot) error {
		attached := 0
		for _, barrel := range data.Barrels {
			if barrel.ActionID != nil && *barrel.ActionID == id {
				attached++
			}
		}
		if attached > 0 {
			return &apperrors.InUseError{Entity: "action", Dependent: "barrel", Count: attached}
		}
		for i := range data.Actions {
			if data.Actions[i].ID == id {
				data.Actions = append(data.Actions[:i], data.Actions[i+1:]...)
				return nil
			}
		}
		return apperrors.ErrActionNotFound
	})
}
