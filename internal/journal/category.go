// Package journal defines the domain model of the shared memories journal:
// records, wishlist items, the shared profile, and the default seed data.
package journal

import "github.com/ourstory-app/ourstory/internal/common"

// Category classifies a record. The set is fixed.
type Category string

const (
	CategoryTrip      Category = "Trip"
	CategoryFood      Category = "Food"
	CategoryCinema    Category = "Cinema"
	CategoryMilestone Category = "Milestone"
	CategoryOuting    Category = "Outing"
)

// Categories lists all valid categories in display order.
func Categories() []Category {
	return []Category{CategoryTrip, CategoryFood, CategoryCinema, CategoryMilestone, CategoryOuting}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryTrip, CategoryFood, CategoryCinema, CategoryMilestone, CategoryOuting:
		return true
	}
	return false
}

func (c Category) String() string { return string(c) }

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", common.ErrorInvalidCategory
	}
	return c, nil
}
