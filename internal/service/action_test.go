package service_test

import (
	"path/filepath"
	"testing"

	apperrors "reloading-bench-backend/internal/errors"
	"reloading-bench-backend/internal/service"
	"reloading-bench-backend/internal/storage"
	"reloading-bench-backend/internal/storage/models"
	"reloading-bench-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActionService(t *testing.T) (*service.ActionService, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	return service.NewActionService(store, validator.New()), store
}

func TestActionCreate_RequiresName(t *testing.T) {
	svc, _ := newActionService(t)

	_, err := svc.Create(service.CreateActionRequest{})
	assert.True(t, apperrors.IsValidation(err))
}

func TestActionGet_EmbedsAttachedBarrels(t *testing.T) {
	svc, store := newActionService(t)

	action, err := svc.Create(service.CreateActionRequest{Name: "Tikka T3x"})
	require.NoError(t, err)

	attached := testutils.NewBarrelFactory().WithAction(action.ID)
	stray := testutils.NewBarrelFactory().Create()
	require.NoError(t, store.Update(func(data *models.Snapshot) error {
		data.Barrels = append(data.Barrels, *attached, *stray)
		return nil
	}))

	detail, err := svc.Get(action.ID)
	require.NoError(t, err)
	require.Len(t, detail.Barrels, 1)
	assert.Equal(t, attached.ID, detail.Barrels[0].ID)
}

func TestActionDelete_RefusedWhileBarrelsAttached(t *testing.T) {
	svc, store := newActionService(t)

	action, err := svc.Create(service.CreateActionRequest{Name: "Tikka T3x"})
	require.NoError(t, err)

	require.NoError(t, store.Update(func(data *models.Snapshot) error {
		data.Barrels = append(data.Barrels,
			*testutils.NewBarrelFactory().WithAction(action.ID),
			*testutils.NewBarrelFactory().WithAction(action.ID),
		)
		return nil
	}))

	err = svc.Delete(action.ID)
	require.ErrorIs(t, err, apperrors.ErrActionHasBarrels)

	var inUse *apperrors.InUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, 2, inUse.Count)

	// Action must still be there.
	_, err = svc.Get(action.ID)
	assert.NoError(t, err)
}

func TestActionDelete_SucceedsOnceBarrelsDetached(t *testing.T) {
	svc, _ := newActionService(t)

	action, err := svc.Create(service.CreateActionRequest{Name: "Tikka T3x"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(action.ID))

	_, err = svc.Get(action.ID)
	assert.ErrorIs(t, err, apperrors.ErrActionNotFound)
}
