package model

import (
	"math"
	"time"

	"github.com/TomaszChromy/vehicle-rental-platform/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldVehicleID      = "vehicle_id"
	FieldUserID         = "user_id"
	FieldStartDate      = "start_date"
	FieldEndDate        = "end_date"
	FieldTotalPrice     = "total_price"
	FieldPickupLocation = "pickup_location"
	FieldReturnLocation = "return_location"
	FieldPickupTime     = "pickup_time"
	FieldReturnTime     = "return_time"
	FieldStatus         = "status"
	FieldCreatedBy      = "created_by"
)

type Booking struct {
	ID             string    `db:"id"`
	VehicleID      string    `db:"vehicle_id"`
	UserID         string    `db:"user_id"`
	StartDate      time.Time `db:"start_date"`
	EndDate        time.Time `db:"end_date"`
	TotalPrice     float64   `db:"total_price"`
	PickupLocation string    `db:"pickup_location"`
	ReturnLocation string    `db:"return_location"`
	PickupTime     string    `db:"pickup_time"`
	ReturnTime     string    `db:"return_time"`
	Status         Status    `db:"status"`
	model.Metadata
}

// CalculateTotalPrice prices a rental as whole days. Partial days round up
// and a same-day rental still charges one full day.
func CalculateTotalPrice(startDate, endDate time.Time, pricePerDay float64) float64 {
	days := int(math.Ceil(endDate.Sub(startDate).Hours() / 24))

	return float64(max(1, days)) * pricePerDay
}
