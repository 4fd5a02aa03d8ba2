package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Box status values.
const (
	StatusActive  = "active"
	StatusRetired = "retired"
)

// NewID generates a fresh entity identifier. Identifiers are stored as
// plain strings because snapshots migrated from older installs may carry
// ids that are not UUIDs.
func NewID() string {
	return uuid.NewString()
}

// Load is a reloading recipe. All fields are free text as entered at the
// bench (charges like "42.5gr", lengths like "2.810\"").
type Load struct {
	PowderCharge string `json:"powderCharge"`
	Powder       string `json:"powder"`
	Primer       string `json:"primer"`
	Projectile   string `json:"projectile"`
	Length       string `json:"length"`
}

// LoadHistoryEntry is a load that was replaced during a reload, stamped
// with the moment of replacement. Kept newest first.
type LoadHistoryEntry struct {
	Load
	Date  time.Time `json:"date"`
	Notes string    `json:"notes,omitempty"`
}

// BarrelHistoryEntry records one assignment period of a box to a barrel.
// A missing UnassignedDate means the period is still open; a box has at
// most one open entry, and it matches the box's BarrelID.
type BarrelHistoryEntry struct {
	BarrelID       string     `json:"barrelId"`
	BarrelName     string     `json:"barrelName"`
	AssignedDate   time.Time  `json:"assignedDate"`
	UnassignedDate *time.Time `json:"unassignedDate,omitempty"`
}

// AmmoBox is a physical box of ammunition with its current load and the
// full history of loads and barrel assignments.
type AmmoBox struct {
	ID             string               `json:"id"`
	Brand          string               `json:"brand"`
	BoxNumber      string               `json:"boxNumber"`
	NumberOfRounds int                  `json:"numberOfRounds"`
	BarrelID       *string              `json:"barrelId"`
	Status         string               `json:"status"`
	CurrentLoad    *Load                `json:"currentLoad"`
	LoadHistory    []LoadHistoryEntry   `json:"loadHistory"`
	BarrelHistory  []BarrelHistoryEntry `json:"barrelHistory"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// Action is a firearm receiver. Barrels attach to it.
type Action struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SerialNumber string    `json:"serialNumber"`
	ScopeDetails string    `json:"scopeDetails"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Barrel is a firearm barrel, optionally attached to an action.
type Barrel struct {
	ID           string    `json:"id"`
	ActionID     *string   `json:"actionId"`
	SerialNumber string    `json:"serialNumber"`
	Caliber      string    `json:"caliber"`
	BarrelLength string    `json:"barrelLength"`
	TwistRate    string    `json:"twistRate"`
	ZeroDistance string    `json:"zeroDistance"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DisplayName is the short name a barrel goes by in box history entries.
func (b *Barrel) DisplayName() string {
	return strings.TrimSpace(b.Caliber + " " + b.BarrelLength)
}

// Components are the free-text component lists shown in load forms.
// Each list is kept sorted and free of duplicates.
type Components struct {
	Powders     []string `json:"powders"`
	Primers     []string `json:"primers"`
	Projectiles []string `json:"projectiles"`
}

// SavedLoad is a named, reusable load recipe.
type SavedLoad struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PowderCharge string    `json:"powderCharge"`
	Powder       string    `json:"powder"`
	Primer       string    `json:"primer"`
	Projectile   string    `json:"projectile"`
	Length       string    `json:"length"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Cartridge is a factory cartridge reference record.
type Cartridge struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Brand          string    `json:"brand"`
	BulletWeight   *float64  `json:"bulletWeight"`
	MuzzleVelocity *float64  `json:"muzzleVelocity"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Elevation is a DOPE data point: the MOA correction dialed for a given
// distance, shot with a specific barrel and load.
type Elevation struct {
	ID         string    `json:"id"`
	BarrelID   string    `json:"barrelId"`
	LoadID     string    `json:"loadId"`
	DistanceM  float64   `json:"distanceM"`
	MOA        float64   `json:"moa"`
	RecordedAt time.Time `json:"recordedAt"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Snapshot is the whole persisted data set.
type Snapshot struct {
	Boxes      []AmmoBox   `json:"boxes"`
	Actions    []Action    `json:"actions"`
	Barrels    []Barrel    `json:"barrels"`
	Components Components  `json:"components"`
	Loads      []SavedLoad `json:"loads"`
	Cartridges []Cartridge `json:"cartridges"`
	Elevations []Elevation `json:"elevations"`
}

// Seed returns an empty snapshot with all collections initialized.
func Seed() *Snapshot {
	return &Snapshot{
		Boxes:   []AmmoBox{},
		Actions: []Action{},
		Barrels: []Barrel{},
		Components: Components{
			Powders:     []string{},
			Primers:     []string{},
			Projectiles: []string{},
		},
		Loads:      []SavedLoad{},
		Cartridges: []Cartridge{},
		Elevations: []Elevation{},
	}
}

// Normalize fills in collections that are missing from an older
// current-shape snapshot so the rest of the code never sees nil slices.
func (s *Snapshot) Normalize() {
	if s.Boxes == nil {
		s.Boxes = []AmmoBox{}
	}
	if s.Actions == nil {
		s.Actions = []Action{}
	}
	if s.Barrels == nil {
		s.Barrels = []Barrel{}
	}
	if s.Components.Powders == nil {
		s.Components.Powders = []string{}
	}
	if s.Components.Primers == nil {
		s.Components.Primers = []string{}
	}
	if s.Components.Projectiles == nil {
		s.Components.Projectiles = []string{}
	}
	if s.Loads == nil {
		s.Loads = []SavedLoad{}
	}
	if s.Cartridges == nil {
		s.Cartridges = []Cartridge{}
	}
	if s.Elevations == nil {
		s.Elevations = []Elevation{}
	}
}
