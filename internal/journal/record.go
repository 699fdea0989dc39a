package journal

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// TripInfo holds fields meaningful only for Trip records.
type TripInfo struct {
	DistanceKM float64 `json:"km"`
}

// CinemaInfo holds fields meaningful only for Cinema records.
// Ratings are 1..5 stars; zero means "not rated".
type CinemaInfo struct {
	Movie     string `json:"movie"`
	RatingHer int    `json:"ratingHer"`
	RatingHim int    `json:"ratingHim"`
}

// Record is one journaled memory or planned event.
//
// The ID is assigned client-side on creation and never changes afterwards.
// Category-conditional data lives in the optional Trip/Cinema sub-structs so
// that a rating on a Trip (or a distance on a Cinema entry) is a validation
// error rather than a silently ignored field.
type Record struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Date        Date        `json:"date"`
	EndDate     *Date       `json:"endDate,omitempty"`
	Location    string      `json:"location"`
	Description string      `json:"description"`
	ImageURLs   []string    `json:"imageUrls"`
	Category    Category    `json:"category"`
	Favorite    bool        `json:"isFavorite"`
	Trip        *TripInfo   `json:"trip,omitempty"`
	Cinema      *CinemaInfo `json:"cinema,omitempty"`
}

// NewID generates a fresh record identifier. Collisions are treated as
// negligible, matching the client-side random-token contract.
func NewID() string {
	return uuid.NewString()
}

// Validate checks the invariants a record must hold before it is persisted.
// Loaded records are not re-validated; a stored record with a bad date is
// merely excluded from date-dependent views.
func (r *Record) Validate() error {
	if r.ID == "" {
		return errors.New("record id is required")
	}
	if r.Title == "" {
		return errors.New("record title is required")
	}
	if r.Date.IsZero() {
		return errors.New("record date is required")
	}
	if r.EndDate != nil && r.EndDate.Before(r.Date) {
		return errors.New("end date must not be before start date")
	}
	if !r.Category.Valid() {
		return fmt.Errorf("invalid category %q", r.Category)
	}
	if r.Trip != nil && r.Category != CategoryTrip {
		return fmt.Errorf("trip info not allowed on %s record", r.Category)
	}
	if r.Cinema != nil {
		if r.Category != CategoryCinema {
			return fmt.Errorf("cinema info not allowed on %s record", r.Category)
		}
		for _, rating := range []int{r.Cinema.RatingHer, r.Cinema.RatingHim} {
			if rating < 0 || rating > 5 {
				return fmt.Errorf("rating %d out of range", rating)
			}
		}
	}
	return nil
}

// Clone returns a deep copy so callers can hand records out of the state
// object without sharing slices.
func (r Record) Clone() Record {
	out := r
	if r.EndDate != nil {
		end := *r.EndDate
		out.EndDate = &end
	}
	if r.ImageURLs != nil {
		out.ImageURLs = append([]string(nil), r.ImageURLs...)
	}
	if r.Trip != nil {
		trip := *r.Trip
		out.Trip = &trip
	}
	if r.Cinema != nil {
		cinema := *r.Cinema
		out.Cinema = &cinema
	}
	return out
}
