package model

// Revenue aggregates only count bookings that were confirmed at some point.
// Pending and cancelled bookings never contribute.
var RevenueStatuses = []string{"CONFIRMED", "ACTIVE", "COMPLETED"}

type Summary struct {
	TotalBookings     int     `db:"total_bookings"`
	TotalRevenue      float64 `db:"total_revenue"`
	TotalVehicles     int     `db:"total_vehicles"`
	AvailableVehicles int     `db:"available_vehicles"`
	TotalClients      int     `db:"total_clients"`
	TotalReviews      int     `db:"total_reviews"`
}

type MonthlyBookings struct {
	Month    string  `db:"month"`
	Bookings int     `db:"bookings"`
	Revenue  float64 `db:"revenue"`
}

type VehicleTypeStats struct {
	Type     string  `db:"type"`
	Vehicles int     `db:"vehicles"`
	Bookings int     `db:"bookings"`
	Revenue  float64 `db:"revenue"`
}

type TopClient struct {
	UserID    string  `db:"user_id"`
	Email     string  `db:"email"`
	FirstName string  `db:"first_name"`
	LastName  string  `db:"last_name"`
	Bookings  int     `db:"bookings"`
	Spent     float64 `db:"spent"`
}
