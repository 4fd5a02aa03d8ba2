package service_test

import (
	"path/filepath"
	"testing"

	apperrors "reloading-bench-backend/internal/errors"
	"reloading-bench-backend/internal/service"
	"reloading-bench-backend/internal/storage"
	"reloading-bench-backend/internal/storage/models"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSavedLoadService(t *testing.T) *service.SavedLoadService {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	return service.NewSavedLoadService(store, validator.New())
}

func TestSavedLoadCreate_RequiresName(t *testing.T) {
	svc := newSavedLoadService(t)

	_, err := svc.Create(service.CreateSavedLoadRequest{Powder: "H4350"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestSavedLoadCRUD(t *testing.T) {
	svc := newSavedLoadService(t)

	created, err := svc.Create(service.CreateSavedLoadRequest{
		Name:         "140gr ELD-M match",
		PowderCharge: "41.5gr",
		Powder:       "H4350",
	})
	require.NoError(t, err)

	name := "147gr ELD-M match"
	updated, err := svc.Update(created.ID, service.UpdateSavedLoadRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, "41.5gr", updated.PowderCharge)

	loads, err := svc.List()
	require.NoError(t, err)
	require.Len(t, loads, 1)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.Get(created.ID)
	assert.ErrorIs(t, err, apperrors.ErrSavedLoadNotFound)
}

func TestSavedLoadDelete_UnknownID(t *testing.T) {
	svc := newSavedLoadService(t)

	err := svc.Delete(models.NewID())
	assert.ErrorIs(t, err, apperrors.ErrSavedLoadNotFound)
}
