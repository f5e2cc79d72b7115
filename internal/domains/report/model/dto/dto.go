package dto

import (
	"time"

	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/report/model"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/constant"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/failure"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/timezone"
)

const (
	defaultRangeMonths = 12
	defaultTopClients  = 10
	maxTopClients      = 100
)

type ReportQuery struct {
	From  string `json:"from"  validate:"omitempty,datetime=2006-01-02"`
	To    string `json:"to"    validate:"omitempty,datetime=2006-01-02"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

// Range resolves the requested window. Missing bounds default to the last
// twelve months ending now.
func (q *ReportQuery) Range() (from, to time.Time, err error) {
	to = timezone.Now()
	from = to.AddDate(0, -defaultRangeMonths, 0)

	if q.From != constant.Empty {
		from, err = time.Parse(constant.DateOnlyFormat, q.From)
		if err != nil {
			return from, to, failure.BadRequestFromString("invalid from date, expected YYYY-MM-DD") // nolint:wrapcheck
		}
	}

	if q.To != constant.Empty {
		to, err = time.Parse(constant.DateOnlyFormat, q.To)
		if err != nil {
			return from, to, failure.BadRequestFromString("invalid to date, expected YYYY-MM-DD") // nolint:wrapcheck
		}

		// make the upper bound inclusive of the whole day
		to = to.AddDate(0, 0, 1).Add(-time.Second)
	}

	if to.Before(from) {
		return from, to, failure.BadRequestFromString("to date must not be before from date") // nolint:wrapcheck
	}

	return from, to, nil
}

func (q *ReportQuery) TopLimit() int {
	if q.Limit <= 0 {
		return defaultTopClients
	}

	if q.Limit > maxTopClients {
		return maxTopClients
	}

	return q.Limit
}

type SummaryResponse struct {
	TotalBookings     int     `json:"total_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalVehicles     int     `json:"total_vehicles"`
	AvailableVehicles int     `json:"available_vehicles"`
	TotalClients      int     `json:"total_clients"`
	TotalReviews      int     `json:"total_reviews"`
}

func (r *SummaryResponse) FromModel(summary model.Summary) {
	r.TotalBookings = summary.TotalBookings
	r.TotalRevenue = summary.TotalRevenue
	r.TotalVehicles = summary.TotalVehicles
	r.AvailableVehicles = summary.AvailableVehicles
	r.TotalClients = summary.TotalClients
	r.TotalReviews = summary.TotalReviews
}

type MonthlyBookingsResponse struct {
	Month    string  `json:"month"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type VehicleTypeStatsResponse struct {
	Type     string  `json:"type"`
	Vehicles int     `json:"vehicles"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type TopClientResponse struct {
	UserID    string  `json:"user_id"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Bookings  int     `json:"bookings"`
	Spent     float64 `json:"spent"`
}

type ReportResponse struct {
	From            string                     `json:"from"`
	To              string                     `json:"to"`
	Summary         SummaryResponse            `json:"summary"`
	MonthlyBookings []MonthlyBookingsResponse  `json:"monthly_bookings"`
	VehicleTypes    []VehicleTypeStatsResponse `json:"vehicle_types"`
	TopClients      []TopClientResponse        `json:"top_clients"`
}

func (r *ReportResponse) FromModels(
	from, to time.Time,
	summary model.Summary,
	months []model.MonthlyBookings,
	types []model.VehicleTypeStats,
	clients []model.TopClient,
) {
	r.From = from.Format(constant.DateOnlyFormat)
	r.To = to.Format(constant.DateOnlyFormat)
	r.Summary.FromModel(summary)

	r.MonthlyBookings = make([]MonthlyBookingsResponse, len(months))
	for i, month := range months {
		r.MonthlyBookings[i] = MonthlyBookingsResponse(month)
	}

	r.VehicleTypes = make([]VehicleTypeStatsResponse, len(types))
	for i, typ := range types {
		r.VehicleTypes[i] = VehicleTypeStatsResponse(typ)
	}

	r.TopClients = make([]TopClientResponse, len(clients))
	for i, client := range clients {
		r.TopClients[i] = TopClientResponse(client)
	}
}
