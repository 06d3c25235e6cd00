package services

import "pgstay-backend/models"

// OccupancySummary is the derived availability and pricing figure set shown
// on listing cards, dashboards and property pages. It is computed on read
// and never persisted.
type OccupancySummary struct {
	TotalBeds     int     `json:"totalBeds"`
	AvailableBeds int     `json:"availableBeds"`
	StartingPrice float64 `json:"startingPrice"`
}

// ComputeOccupancy aggregates bed counts and the minimum room price across a
// property's rooms. Bed-level occupancy is the source of truth: a room with
// no modeled beds contributes zero to both totals regardless of its
// IsAvailable flag. A property with zero rooms has a starting price of 0 by
// policy, not as an error. Nil slices are treated as empty; the function has
// no side effects.
func ComputeOccupancy(rooms []models.Room) OccupancySummary {
	var sum OccupancySummary
	for i, room := range rooms {
		if i == 0 || room.BasePrice < sum.StartingPrice {
			sum.StartingPrice = room.BasePrice
		}
		for _, bed := range room.Beds {
			sum.TotalBeds++
			if !bed.IsOccupied {
				sum.AvailableBeds++
			}
		}
	}
	return sum
}

// RoomHasVacancy reports whether a room has at least one unoccupied bed.
// Rooms with no modeled beds have no vacancy under bed-derived semantics.
func RoomHasVacancy(room models.Room) bool {
	for _, bed := range room.Beds {
		if !bed.IsOccupied {
			return true
		}
	}
	return false
}
