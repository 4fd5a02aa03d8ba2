package service_test

import (
	"testing"
	"time"

	"reloading-bench-backend/internal/service"
	"reloading-bench-backend/internal/storage/models"
	"reloading-bench-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

var (
	now        = time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)
	assigned   = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	unassigned = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
)

func historyEntry(date time.Time) models.LoadHistoryEntry {
	return models.LoadHistoryEntry{
		Load: *testutils.TestLoad(),
		Date: date,
	}
}

func TestRoundCount_SingleClosedPeriod(t *testing.T) {
	barrelID := models.NewID()
	box := testutils.NewBoxFactory().WithRounds(50)
	box.BarrelHistory = []models.BarrelHistoryEntry{
		{BarrelID: barrelID, AssignedDate: assigned, UnassignedDate: &unassigned},
	}
	box.LoadHistory = []models.LoadHistoryEntry{
		historyEntry(assigned.AddDate(0, 0, 10)),
		historyEntry(assigned.AddDate(0, 1, 0)),
		historyEntry(assigned.AddDate(0, 2, 0)),
	}

	total := service.RoundCount(barrelID, []models.AmmoBox{*box}, now)

	assert.Equal(t, 150, total)
}

func TestRoundCount_OpenPeriodWithCurrentLoad(t *testing.T) {
	barrelID := models.NewID()
	box := testutils.NewBoxFactory().WithRounds(20)
	box.BarrelHistory = []models.BarrelHistoryEntry{
		{BarrelID: barrelID, AssignedDate: assigned},
	}
	box.LoadHistory = []models.LoadHistoryEntry{
		historyEntry(assigned.AddDate(0, 0, 5)),
		historyEntry(assigned.AddDate(0, 0, 20)),
	}
	box.CurrentLoad = testutils.TestLoad()

	total := service.RoundCount(barrelID, []models.AmmoBox{*box}, now)

	// Two archived sessions plus one for the load still in the box.
	assert.Equal(t, 60, total)
}

func TestRoundCount_OpenPeriodWithoutCurrentLoad(t *testing.T) {
	barrelID := models.NewID()
	box := testutils.NewBoxFactory().WithRounds(20)
	box.BarrelHistory = []models.BarrelHistoryEntry{
		{BarrelID: barrelID, AssignedDate: assigned},
	}
	box.LoadHistory = []models.LoadHistoryEntry{
		historyEntry(assigned.AddDate(0, 0, 5)),
		historyEntry(assigned.AddDate(0, 0, 20)),
	}
	box.CurrentLoad = nil

	total := service.RoundCount(barrelID, []models.AmmoBox{*box}, now)

	assert.Equal(t, 40, total)
}

func TestRoundCount_ClosedPeriodIgnoresCurrentLoad(t *testing.T) {
	barrelID := models.NewID()
	box := testutils.NewBoxFactory().WithRounds(20)
	box.BarrelHistory = []models.BarrelHistoryEntry{
		{BarrelID: barrelID, AssignedDate: assigned, UnassignedDate: &unassigned},
	}
	box.LoadHistory = []models.LoadHistoryEntry{
		historyEntry(assigned.AddDate(0, 0, 5)),
	}
	box.CurrentLoad = testutils.TestLoad()

	total := service.RoundCount(barrelID, []models.AmmoBox{*box}, now)

	// No bonus session for a closed period.
	assert.Equal(t, 20, total)
}

func TestRoundCount_EntriesOutsidePeriodExcluded(t *testing.T) {
	barrelID := models.NewID()
	box := testutils.NewBoxFactory().WithRounds(50)
	box.BarrelHistory = []models.BarrelHistoryEntry{
		{BarrelID: barrelID, AssignedDate: assigned, UnassignedDate: &unassigned},
	}
	box.LoadHistory = []models.LoadHistoryEntry{
		historyEntry(assigned.AddDate(0, 0, -1)),
		historyEntry(unassigned.AddDate(0, 0, 1)),
		historyEntry(assigned.AddDate(0, 1, 0)),
	}

	total := service.RoundCount(barrelID, []models.AmmoBox{*box}, now)

	assert.Equal(t, 50, total)
}

func TestRoundCount_BoundaryDatesInclusive(t *testing.T) {
	barrelID := models.NewID()
	box := testutils.NewBoxFactory().WithRounds(50)
	box.BarrelHistory = []models.BarrelHistoryEntry{
		{BarrelID: barrelID, AssignedDate: assigned, UnassignedDate: &unassigned},
	}
	box.LoadHistory = []models.LoadHistoryEntry{
		historyEntry(assigned),
		historyEntry(unassigned),
	}

	total := service.RoundCount(barrelID, []models.AmmoBox{*box}, now)

	assert.Equal(t, 100, total)
}

func TestRoundCount_NoHistoryContributesZero(t *testing.T) {
	barrelID := models.NewID()
	box := testutils.NewBoxFactory().WithRounds(50)
	box.CurrentLoad = testutils.TestLoad()

	total := service.RoundCount(barrelID, []models.AmmoBox{*box}, now)

	assert.Equal(t, 0, total)
}

func TestRoundCount_OtherBarrelPeriodsIgnored(t *testing.T) {
	barrelID := models.NewID()
	otherID := models.NewID()
	box := testutils.NewBoxFactory().WithRounds(50)
	box.BarrelHistory = []models.BarrelHistoryEntry{
		{BarrelID: otherID, AssignedDate: assigned, UnassignedDate: &unassigned},
	}
	box.LoadHistory = []models.LoadHistoryEntry{
		historyEntry(assigned.AddDate(0, 1, 0)),
	}

	total := service.RoundCount(barrelID, []models.AmmoBox{*box}, now)

	assert.Equal(t, 0, total)
}

func TestRoundCount_SumsAcrossBoxesAndPeriods(t *testing.T) {
	barrelID := models.NewID()

	// Box one: a closed period with one session, then a second closed
	// period with one more.
	secondStart := unassigned.AddDate(0, 0, 10)
	secondEnd := secondStart.AddDate(0, 0, 20)
	boxOne := testutils.NewBoxFactory().WithRounds(50)
	boxOne.BarrelHistory = []models.BarrelHistoryEntry{
		{BarrelID: barrelID, AssignedDate: secondStart, UnassignedDate: &secondEnd},
		{BarrelID: barrelID, AssignedDate: assigned, UnassignedDate: &unassigned},
	}
	boxOne.LoadHistory = []models.LoadHistoryEntry{
		historyEntry(secondStart.AddDate(0, 0, 1)),
		historyEntry(assigned.AddDate(0, 0, 1)),
	}

	// Box two: open period, current load only.
	boxTwo := testutils.NewBoxFactory().WithRounds(20)
	boxTwo.BarrelHistory = []models.BarrelHistoryEntry{
		{BarrelID: barrelID, AssignedDate: assigned},
	}
	boxTwo.CurrentLoad = testutils.TestLoad()

	total := service.RoundCount(barrelID, []models.AmmoBox{*boxOne, *boxTwo}, now)

	assert.Equal(t, 120, total)
}
