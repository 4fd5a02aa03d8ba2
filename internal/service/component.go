package service

import (
	"sort"

	apperrors "reloading-bench-backend/internal/errors"
	"reloading-bench-backend/internal/storage"
	"reloading-bench-backend/internal/storage/models"
)

// Component list names accepted by the API.
const (
	ComponentPowders     = "powders"
	ComponentPrimers     = "primers"
	ComponentProjectiles = "projectiles"
)

// ComponentService manages the free-text component lists. Lists stay
// sorted after every insertion.
type ComponentService struct {
	store *storage.Store
}

// Ensure ComponentService implements ComponentServiceInterface
var _ ComponentServiceInterface = (*ComponentService)(nil)

// NewComponentService creates a new ComponentService
func NewComponentService(store *storage.Store) *ComponentService {
	return &ComponentService{store: store}
}

// ValidComponentList reports whether name is one of the three lists.
func ValidComponentList(name string) bool {
	switch name {
	case ComponentPowders, ComponentPrimers, ComponentProjectiles:
		return true
	}
	return false
}

func componentList(c *models.Components, name string) *[]string {
	switch name {
	case ComponentPowders:
		return &c.Powders
	case ComponentPrimers:
		return &c.Primers
	case ComponentProjectiles:
		return &c.Projectiles
	}
	return nil
}

// Get retrieves all component lists
func (s *ComponentService) Get() (*models.Components, error) {
	var out models.Components
	err := s.store.View(func(data *models.Snapshot) error {
		out = models.Components{
			Powders:     append([]string{}, data.Components.Powders...),
			Primers:     append([]string{}, data.Components.Primers...),
			Projectiles: append([]string{}, data.Components.Projectiles...),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Add inserts a name into a list, keeping it sorted. Duplicates within a
// list are refused.
func (s *ComponentService) Add(listName, name string) (*models.Components, error) {
	if !ValidComponentList(listName) {
		return nil, &apperrors.ValidationError{Field: "type", Message: "invalid component type"}
	}
	if name == "" {
		return nil, &apperrors.ValidationError{Field: "name", Message: "name is required"}
	}

	err := s.store.Update(func(data *models.Snapshot) error {
		list := componentList(&data.Components, listName)
		for _, existing := range *list {
			if existing == name {
				return apperrors.ErrComponentExists
			}
		}
		*list = append(*list, name)
		sort.Strings(*list)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get()
}

// Rename replaces the entry at index in a list
func (s *ComponentService) Rename(listName string, index int, name string) (*models.Components, error) {
	if !ValidComponentList(listName) {
		return nil, &apperrors.ValidationError{Field: "type", Message: "invalid component type"}
	}
	if name == "" {
		return nil, &apperrors.ValidationError{Field: "name", Message: "name is required"}
	}

	err := s.store.Update(func(data *models.Snapshot) error {
		list := componentList(&data.Components, listName)
		if index < 0 || index >= len(*list) {
			return apperrors.ErrComponentNotFound
		}
		(*list)[index] = name
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get()
}

// Remove deletes the entry at index in a list
func (s *ComponentService) Remove(listName string, index int) (*models.Components, error) {
	if !ValidComponentList(listName) {
		return nil, &apperrors.ValidationError{Field: "type", Message: "invalid component type"}
	}

	err := s.store.Update(func(data *models.Snapshot) error {
		list := componentList(&data.Components, listName)
		if index < 0 || index >= len(*list) {
			return apperrors.ErrComponentNotFound
		}
		*list = append((*list)[:index], (*list)[index+1:]...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get()
}
