package service

import (
	"time"

	"reloading-bench-backend/internal/storage/models"
)

// RoundCount derives the total number of rounds fired through a barrel
// from box history. It is pure and recomputed on every barrel read;
// the value is never persisted.
//
// For every assignment period of a box to the barrel, each load-history
// entry dated within the period (inclusive bounds) counts as one firing
// session; an open period with a load currently in the box counts one
// more for the load not yet archived. Each session contributes the box's
// full round count. Session counting trusts the chronological integrity
// of the assignment history, which the assign/unassign operation
// maintains.
func RoundCount(barrelID string, boxes []models.AmmoBox, now time.Time) int {
	total := 0
	for i := range boxes {
		box := &boxes[i]
		for _, period := range box.BarrelHistory {
			if period.BarrelID != barrelID {
				continue
			}
			start := period.AssignedDate
			end := now
			if period.UnassignedDate != nil {
				end = *period.UnassignedDate
			}

			sessions := 0
			for _, entry := range box.LoadHistory {
				if !entry.Date.Before(start) && !entry.Date.After(end) {
					sessions++
				}
			}
			if period.UnassignedDate == nil && box.CurrentLoad != nil {
				sessions++
			}

			total += sessions * box.NumberOfRounds
		}
	}
	return total
}
