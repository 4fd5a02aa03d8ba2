package service_test

import (
	"path/filepath"
	"testing"

	apperrors "reloading-bench-backend/internal/errors"
	"reloading-bench-backend/internal/service"
	"reloading-bench-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newComponentService(t *testing.T) *service.ComponentService {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	return service.NewComponentService(store)
}

func TestComponentAdd_KeepsListSorted(t *testing.T) {
	svc := newComponentService(t)

	for _, name := range []string{"Varget", "H4350", "N150"} {
		_, err := svc.Add(service.ComponentPowders, name)
		require.NoError(t, err)
	}

	components, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"H4350", "N150", "Varget"}, components.Powders)
	assert.Empty(t, components.Primers)
}

func TestComponentAdd_DuplicateRefused(t *testing.T) {
	svc := newComponentService(t)

	_, err := svc.Add(service.ComponentPrimers, "CCI BR-2")
	require.NoError(t, err)

	_, err = svc.Add(service.ComponentPrimers, "CCI BR-2")
	assert.ErrorIs(t, err, apperrors.ErrComponentExists)

	components, err := svc.Get()
	require.NoError(t, err)
	assert.Len(t, components.Primers, 1)
}

func TestComponentAdd_InvalidListRejected(t *testing.T) {
	svc := newComponentService(t)

	_, err := svc.Add("brass", "Lapua")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Add(service.ComponentPowders, "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestComponentRename_ReplacesEntryAtIndex(t *testing.T) {
	svc := newComponentService(t)

	_, err := svc.Add(service.ComponentProjectiles, "140gr ELD-M")
	require.NoError(t, err)
	_, err = svc.Add(service.ComponentProjectiles, "147gr ELD-M")
	require.NoError(t, err)

	components, err := svc.Rename(service.ComponentProjectiles, 0, "139gr Scenar")
	require.NoError(t, err)
	assert.Equal(t, []string{"139gr Scenar", "147gr ELD-M"}, components.Projectiles)
}

func TestComponentRemove_IndexOutOfBounds(t *testing.T) {
	svc := newComponentService(t)

	_, err := svc.Add(service.ComponentPowders, "H4350")
	require.NoError(t, err)

	_, err = svc.Remove(service.ComponentPowders, 1)
	assert.ErrorIs(t, err, apperrors.ErrComponentNotFound)

	_, err = svc.Remove(service.ComponentPowders, -1)
	assert.ErrorIs(t, err, apperrors.ErrComponentNotFound)

	components, err := svc.Remove(service.ComponentPowders, 0)
	require.NoError(t, err)
	assert.Empty(t, components.Powders)
}
