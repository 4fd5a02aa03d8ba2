package storage

import (
	"time"

	"reloading-bench-backend/internal/storage/models"
)

// Legacy snapshot shape from the rifle-era schema, where a single rifle
// record carried both action and barrel attributes and boxes referenced
// rifles directly. Kept as distinct types so the migration is a total
// function from this shape to the current one.

type legacyRifle struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Caliber      string    `json:"caliber"`
	BarrelLength string    `json:"barrelLength"`
	TwistRate    string    `json:"twistRate"`
	ActionType   string    `json:"actionType"`
	ScopeDetails string    `json:"scopeDetails"`
	ZeroDistance string    `json:"zeroDistance"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type legacyRifleHistoryEntry struct {
	RifleID        string     `json:"rifleId"`
	RifleName      string     `json:"rifleName"`
	AssignedDate   time.Time  `json:"assignedDate"`
	UnassignedDate *time.Time `json:"unassignedDate,omitempty"`
}

type legacyBox struct {
	ID             string                    `json:"id"`
	Brand          string                    `json:"brand"`
	BoxNumber      string                    `json:"boxNumber"`
	NumberOfRounds int                       `json:"numberOfRounds"`
	RifleID        *string                   `json:"rifleId"`
	Status         string                    `json:"status"`
	CurrentLoad    *models.Load              `json:"currentLoad"`
	LoadHistory    []models.LoadHistoryEntry `json:"loadHistory"`
	RifleHistory   []legacyRifleHistoryEntry `json:"rifleHistory"`
	CreatedAt      time.Time                 `json:"createdAt"`
	UpdatedAt      time.Time                 `json:"updatedAt"`
}

type legacySnapshot struct {
	Boxes      []legacyBox        `json:"boxes"`
	Rifles     []legacyRifle      `json:"rifles"`
	Components *models.Components `json:"components"`
}
