package model

import "github.com/TomaszChromy/vehicle-rental-platform/shared/model"

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldVehicleID = "vehicle_id"
	FieldBookingID = "booking_id"
	FieldRating    = "rating"
	FieldComment   = "comment"
)

// FeaturedMinRating is the lowest rating shown in the featured listing.
const FeaturedMinRating = 4

type Review struct {
	ID        string  `db:"id"`
	UserID    string  `db:"user_id"`
	VehicleID string  `db:"vehicle_id"`
	BookingID *string `db:"booking_id"`
	Rating    int     `db:"rating"`
	Comment   string  `db:"comment"`
	model.Metadata
}
