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
	"github.com/stretchr/testify/suite"
)

type BoxServiceTestSuite struct {
	suite.Suite
	store      *storage.Store
	boxService *service.BoxService
	barrel     *models.Barrel
}

func (suite *BoxServiceTestSuite) SetupTest() {
	store, err := storage.Open(filepath.Join(suite.T().TempDir(), "data.json"))
	require.NoError(suite.T(), err)
	suite.store = store
	suite.boxService = service.NewBoxService(store, validator.New())

	suite.barrel = testutils.NewBarrelFactory().Create()
	require.NoError(suite.T(), store.Update(func(data *models.Snapshot) error {
		data.Barrels = append(data.Barrels, *suite.barrel)
		return nil
	}))
}

func (suite *BoxServiceTestSuite) TestCreate_WithBarrelOpensHistoryEntry() {
	box, err := suite.boxService.Create(service.CreateBoxRequest{
		Brand:          "Lapua",
		BoxNumber:      "7",
		NumberOfRounds: 50,
		BarrelID:       &suite.barrel.ID,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusActive, box.Status)
	require.Len(suite.T(), box.BarrelHistory, 1)
	assert.Equal(suite.T(), suite.barrel.ID, box.BarrelHistory[0].BarrelID)
	assert.Equal(suite.T(), suite.barrel.DisplayName(), box.BarrelHistory[0].BarrelName)
	assert.Nil(suite.T(), box.BarrelHistory[0].UnassignedDate)
}

func (suite *BoxServiceTestSuite) TestCreate_WithoutBarrelHasEmptyHistory() {
	box, err := suite.boxService.Create(service.CreateBoxRequest{
		Brand:     "Norma",
		BoxNumber: "2",
	})

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), box.BarrelID)
	assert.Empty(suite.T(), box.BarrelHistory)
	assert.Empty(suite.T(), box.LoadHistory)
}

func (suite *BoxServiceTestSuite) TestReload_ArchivesCurrentLoadNewestFirst() {
	box, err := suite.boxService.Create(service.CreateBoxRequest{
		BoxNumber:   "1",
		CurrentLoad: testutils.TestLoad(),
	})
	require.NoError(suite.T(), err)

	first := models.Load{PowderCharge: "42.0gr", Powder: "H4350", Primer: "CCI BR-2", Projectile: "140gr ELD-M", Length: "2.810\""}
	_, err = suite.boxService.Reload(box.ID, service.ReloadRequest{NewLoad: &first, Notes: "ladder test"})
	require.NoError(suite.T(), err)

	second := models.Load{PowderCharge: "42.3gr", Powder: "H4350", Primer: "CCI BR-2", Projectile: "140gr ELD-M", Length: "2.810\""}
	updated, err := suite.boxService.Reload(box.ID, service.ReloadRequest{NewLoad: &second})
	require.NoError(suite.T(), err)

	require.NotNil(suite.T(), updated.CurrentLoad)
	assert.Equal(suite.T(), "42.3gr", updated.CurrentLoad.PowderCharge)

	require.Len(suite.T(), updated.LoadHistory, 2)
	// Most recent replacement at the head.
	assert.Equal(suite.T(), "42.0gr", updated.LoadHistory[0].PowderCharge)
	assert.Equal(suite.T(), testutils.TestLoad().PowderCharge, updated.LoadHistory[1].PowderCharge)
	assert.Equal(suite.T(), "ladder test", updated.LoadHistory[1].Notes)
}

func (suite *BoxServiceTestSuite) TestReload_NoCurrentLoadArchivesNothing() {
	box, err := suite.boxService.Create(service.CreateBoxRequest{BoxNumber: "1"})
	require.NoError(suite.T(), err)

	updated, err := suite.boxService.Reload(box.ID, service.ReloadRequest{NewLoad: testutils.TestLoad()})
	require.NoError(suite.T(), err)

	assert.Empty(suite.T(), updated.LoadHistory)
	require.NotNil(suite.T(), updated.CurrentLoad)
}

func (suite *BoxServiceTestSuite) TestReload_MissingNewLoadRejected() {
	box, err := suite.boxService.Create(service.CreateBoxRequest{BoxNumber: "1"})
	require.NoError(suite.T(), err)

	_, err = suite.boxService.Reload(box.ID, service.ReloadRequest{})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *BoxServiceTestSuite) TestReload_UpdatesRoundCountWhenGiven() {
	box, err := suite.boxService.Create(service.CreateBoxRequest{BoxNumber: "1", NumberOfRounds: 50})
	require.NoError(suite.T(), err)

	rounds := 100
	updated, err := suite.boxService.Reload(box.ID, service.ReloadRequest{
		NewLoad:        testutils.TestLoad(),
		NumberOfRounds: &rounds,
	})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 100, updated.NumberOfRounds)
}

func (suite *BoxServiceTestSuite) TestAssignBarrel_ClosesOpenEntryThenOpensNew() {
	box, err := suite.boxService.Create(service.CreateBoxRequest{
		BoxNumber: "1",
		BarrelID:  &suite.barrel.ID,
	})
	require.NoError(suite.T(), err)

	other := testutils.NewBarrelFactory().Create()
	other.Caliber = ".308 Win"
	require.NoError(suite.T(), suite.store.Update(func(data *models.Snapshot) error {
		data.Barrels = append(data.Barrels, *other)
		return nil
	}))

	updated, err := suite.boxService.AssignBarrel(box.ID, service.AssignBarrelRequest{BarrelID: &other.ID})
	require.NoError(suite.T(), err)

	require.NotNil(suite.T(), updated.BarrelID)
	assert.Equal(suite.T(), other.ID, *updated.BarrelID)

	require.Len(suite.T(), updated.BarrelHistory, 2)
	// New entry at the head, previous entry closed.
	assert.Equal(suite.T(), other.ID, updated.BarrelHistory[0].BarrelID)
	assert.Nil(suite.T(), updated.BarrelHistory[0].UnassignedDate)
	assert.Equal(suite.T(), suite.barrel.ID, updated.BarrelHistory[1].BarrelID)
	assert.NotNil(suite.T(), updated.BarrelHistory[1].UnassignedDate)
}

func (suite *BoxServiceTestSuite) TestAssignBarrel_NilUnassigns() {
	box, err := suite.boxService.Create(service.CreateBoxRequest{
		BoxNumber: "1",
		BarrelID:  &suite.barrel.ID,
	})
	require.NoError(suite.T(), err)

	updated, err := suite.boxService.AssignBarrel(box.ID, service.AssignBarrelRequest{BarrelID: nil})
	require.NoError(suite.T(), err)

	assert.Nil(suite.T(), updated.BarrelID)
	require.Len(suite.T(), updated.BarrelHistory, 1)
	assert.NotNil(suite.T(), updated.BarrelHistory[0].UnassignedDate)
}

func (suite *BoxServiceTestSuite) TestAssignBarrel_UnknownBarrelRejected() {
	box, err := suite.boxService.Create(service.CreateBoxRequest{BoxNumber: "1"})
	require.NoError(suite.T(), err)

	bogus := models.NewID()
	_, err = suite.boxService.AssignBarrel(box.ID, service.AssignBarrelRequest{BarrelID: &bogus})
	assert.ErrorIs(suite.T(), err, apperrors.ErrBarrelNotFound)
}

func (suite *BoxServiceTestSuite) TestUpdate_NullCurrentLoadClears() {
	box, err := suite.boxService.Create(service.CreateBoxRequest{
		BoxNumber:   "1",
		CurrentLoad: testutils.TestLoad(),
	})
	require.NoError(suite.T(), err)

	// An absent currentLoad leaves the load in place.
	brand := "Norma"
	updated, err := suite.boxService.Update(box.ID, service.UpdateBoxRequest{Brand: &brand})
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), updated.CurrentLoad)

	// An explicit null empties the box; with no current load the open
	// assignment period stops counting a live session.
	updated, err = suite.boxService.Update(box.ID, service.UpdateBoxRequest{
		CurrentLoad: service.NullableNull[models.Load](),
	})
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), updated.CurrentLoad)
}

func (suite *BoxServiceTestSuite) TestSetStatus_RejectsUnknownStatus() {
	box, err := suite.boxService.Create(service.CreateBoxRequest{BoxNumber: "1"})
	require.NoError(suite.T(), err)

	_, err = suite.boxService.SetStatus(box.ID, "archived")
	assert.True(suite.T(), apperrors.IsValidation(err))

	updated, err := suite.boxService.SetStatus(box.ID, models.StatusRetired)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusRetired, updated.Status)
}

func (suite *BoxServiceTestSuite) TestList_Filters() {
	_, err := suite.boxService.Create(service.CreateBoxRequest{
		Brand:     "Lapua",
		BoxNumber: "100",
		BarrelID:  &suite.barrel.ID,
	})
	require.NoError(suite.T(), err)
	_, err = suite.boxService.Create(service.CreateBoxRequest{Brand: "Norma", BoxNumber: "200"})
	require.NoError(suite.T(), err)

	byBrand, err := suite.boxService.List(service.BoxFilter{Brand: "Norma"})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), byBrand, 1)
	assert.Equal(suite.T(), "200", byBrand[0].BoxNumber)

	byBarrel, err := suite.boxService.List(service.BoxFilter{BarrelID: suite.barrel.ID})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), byBarrel, 1)
	assert.Equal(suite.T(), "100", byBarrel[0].BoxNumber)

	// Search matches the assigned barrel's display name too.
	bySearch, err := suite.boxService.List(service.BoxFilter{Search: "creedmoor"})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), bySearch, 1)
	assert.Equal(suite.T(), "100", bySearch[0].BoxNumber)
}

func (suite *BoxServiceTestSuite) TestGet_UnknownBoxNotFound() {
	_, err := suite.boxService.Get(models.NewID())
	assert.ErrorIs(suite.T(), err, apperrors.ErrBoxNotFound)
}

func TestBoxServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BoxServiceTestSuite))
}
