package dto

import (
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/vehicle/model"
	"github.com/TomaszChromy/vehicle-rental-platform/shared"
	gDto "github.com/TomaszChromy/vehicle-rental-platform/shared/dto"
	gModel "github.com/TomaszChromy/vehicle-rental-platform/shared/model"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/timezone"

	"github.com/google/uuid"
)

type CreateVehicleRequest struct {
	Type         string   `json:"type"          validate:"required,oneof=CAR BIKE SCOOTER"`
	Brand        string   `json:"brand"         validate:"required,max=100"`
	Model        string   `json:"model"         validate:"required,max=100"`
	Year         int      `json:"year"          validate:"required,min=1950,max=2100"`
	LicensePlate string   `json:"license_plate" validate:"required,max=20"`
	Color        string   `json:"color"         validate:"omitempty,max=50"`
	Description  string   `json:"description"   validate:"omitempty,max=1000"`
	PricePerDay  float64  `json:"price_per_day" validate:"required,gt=0"`
	Location     string   `json:"location"      validate:"omitempty,max=100"`
	Features     []string `json:"features"      validate:"omitempty,dive,max=100,excludes=0x2C"`
	Images       []string `json:"images"        validate:"omitempty,dive,url,excludes=0x2C"`
	IsAvailable  *bool    `json:"is_available"  validate:"omitempty"`
}

func (c *CreateVehicleRequest) ToModel(user string) model.Vehicle {
	available := true
	if c.IsAvailable != nil {
		available = *c.IsAvailable
	}

	return model.Vehicle{
		ID:           uuid.NewString(),
		Type:         c.Type,
		Brand:        c.Brand,
		Model:        c.Model,
		Year:         c.Year,
		LicensePlate: c.LicensePlate,
		Color:        c.Color,
		Description:  c.Description,
		PricePerDay:  c.PricePerDay,
		Location:     c.Location,
		Features:     shared.JoinList(c.Features),
		Images:       shared.JoinList(c.Images),
		IsAvailable:  available,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateVehicleRequest struct {
	Type         string   `db:"type"          json:"type"          validate:"omitempty,oneof=CAR BIKE SCOOTER"`
	Brand        string   `db:"brand"         json:"brand"         validate:"omitempty,max=100"`
	Model        string   `db:"model"         json:"model"         validate:"omitempty,max=100"`
	Year         *int     `db:"year"          json:"year"          validate:"omitempty,min=1950,max=2100"`
	LicensePlate string   `db:"license_plate" json:"license_plate" validate:"omitempty,max=20"`
	Color        string   `db:"color"         json:"color"         validate:"omitempty,max=50"`
	Description  string   `db:"description"   json:"description"   validate:"omitempty,max=1000"`
	PricePerDay  *float64 `db:"price_per_day" json:"price_per_day" validate:"omitempty,gt=0"`
	Location     string   `db:"location"      json:"location"      validate:"omitempty,max=100"`
	Features     []string `json:"features"    validate:"omitempty,dive,max=100,excludes=0x2C"`
	Images       []string `json:"images"      validate:"omitempty,dive,url,excludes=0x2C"`
	IsAvailable  *bool    `db:"is_available"  json:"is_available"  validate:"omitempty"`
}

type VehicleResponse struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	LicensePlate string   `json:"license_plate"`
	Color        string   `json:"color"`
	Description  string   `json:"description"`
	PricePerDay  float64  `json:"price_per_day"`
	Location     string   `json:"location"`
	Features     []string `json:"features"`
	Images       []string `json:"images"`
	IsAvailable  bool     `json:"is_available"`
	gDto.Metadata
}

func (r *VehicleResponse) FromModel(model model.Vehicle) {
	r.ID = model.ID
	r.Type = model.Type
	r.Brand = model.Brand
	r.Model = model.Model
	r.Year = model.Year
	r.LicensePlate = model.LicensePlate
	r.Color = model.Color
	r.Description = model.Description
	r.PricePerDay = model.PricePerDay
	r.Location = model.Location
	r.Features = shared.SplitList(model.Features)
	r.Images = shared.SplitList(model.Images)
	r.IsAvailable = model.IsAvailable
	r.Metadata.FromModel(model.Metadata)
}

type VehicleStatsResponse struct {
	VehicleResponse
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
	TotalBookings int     `json:"total_bookings"`
}

func (r *VehicleStatsResponse) FromModel(model model.VehicleStats) {
	r.VehicleResponse.FromModel(model.Vehicle)
	r.AverageRating = model.AverageRating
	r.TotalReviews = model.TotalReviews
	r.TotalBookings = model.TotalBookings
}

type GetVehiclesResponse struct {
	Vehicles  []VehicleStatsResponse `json:"vehicles"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (r *GetVehiclesResponse) FromModels(models []model.VehicleStats, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Vehicles = make([]VehicleStatsResponse, len(models))
	for i, mod := range models {
		r.Vehicles[i].FromModel(mod)
	}
}
