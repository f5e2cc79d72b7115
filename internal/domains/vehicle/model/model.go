package model

import "github.com/TomaszChromy/vehicle-rental-platform/shared/model"

const (
	TableName  = "vehicles"
	EntityName = "vehicle"

	FieldID           = "id"
	FieldType         = "type"
	FieldBrand        = "brand"
	FieldModel        = "model"
	FieldYear         = "year"
	FieldLicensePlate = "license_plate"
	FieldColor        = "color"
	FieldDescription  = "description"
	FieldPricePerDay  = "price_per_day"
	FieldLocation     = "location"
	FieldFeatures     = "features"
	FieldImages       = "images"
	FieldIsAvailable  = "is_available"
)

const (
	TypeCar     = "CAR"
	TypeBike    = "BIKE"
	TypeScooter = "SCOOTER"
)

type Vehicle struct {
	ID           string  `db:"id"`
	Type         string  `db:"type"`
	Brand        string  `db:"brand"`
	Model        string  `db:"model"`
	Year         int     `db:"year"`
	LicensePlate string  `db:"license_plate"`
	Color        string  `db:"color"`
	Description  string  `db:"description"`
	PricePerDay  float64 `db:"price_per_day"`
	Location     string  `db:"location"`
	Features     string  `db:"features"`
	Images       string  `db:"images"`
	IsAvailable  bool    `db:"is_available"`
	model.Metadata
}

// VehicleStats is the listing read model: a vehicle enriched with review and
// booking aggregates.
type VehicleStats struct {
	Vehicle
	AverageRating float64 `db:"average_rating"`
	TotalReviews  int     `db:"total_reviews"`
	TotalBookings int     `db:"total_bookings"`
}
