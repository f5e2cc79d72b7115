package dto

import (
	"errors"
	"time"

	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/booking/model"
	"github.com/TomaszChromy/vehicle-rental-platform/shared"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/constant"
	gDto "github.com/TomaszChromy/vehicle-rental-platform/shared/dto"
	gModel "github.com/TomaszChromy/vehicle-rental-platform/shared/model"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/timezone"

	"github.com/google/uuid"
)

var errEndBeforeStart = errors.New("end date must not be before start date")

type CreateBookingRequest struct {
	VehicleID      string `json:"vehicle_id"      validate:"required"`
	StartDate      string `json:"start_date"      validate:"required"`
	EndDate        string `json:"end_date"        validate:"required"`
	PickupLocation string `json:"pickup_location" validate:"required,max=100"`
	ReturnLocation string `json:"return_location" validate:"omitempty,max=100"`
	PickupTime     string `json:"pickup_time"     validate:"required,max=10"`
	ReturnTime     string `json:"return_time"     validate:"omitempty,max=10"`
}

// ParseDates parses the requested rental period and rejects inverted ranges.
func (c *CreateBookingRequest) ParseDates() (time.Time, time.Time, error) {
	startDate, err := time.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err //nolint:wrapcheck
	}

	endDate, err := time.Parse(constant.DateOnlyFormat, c.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err //nolint:wrapcheck
	}

	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, errEndBeforeStart
	}

	return startDate, endDate, nil
}

func (c *CreateBookingRequest) ToModel(user string, startDate, endDate time.Time, totalPrice float64) model.Booking {
	returnLocation := c.ReturnLocation
	if returnLocation == constant.Empty {
		returnLocation = c.PickupLocation
	}

	returnTime := c.ReturnTime
	if returnTime == constant.Empty {
		returnTime = c.PickupTime
	}

	return model.Booking{
		ID:             uuid.NewString(),
		VehicleID:      c.VehicleID,
		UserID:         user,
		StartDate:      startDate,
		EndDate:        endDate,
		TotalPrice:     totalPrice,
		PickupLocation: c.PickupLocation,
		ReturnLocation: returnLocation,
		PickupTime:     c.PickupTime,
		ReturnTime:     returnTime,
		Status:         model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,max=20"`
}

type BookingResponse struct {
	ID             string  `json:"id"`
	VehicleID      string  `json:"vehicle_id"`
	UserID         string  `json:"user_id"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	TotalPrice     float64 `json:"total_price"`
	PickupLocation string  `json:"pickup_location"`
	ReturnLocation string  `json:"return_location"`
	PickupTime     string  `json:"pickup_time"`
	ReturnTime     string  `json:"return_time"`
	Status         string  `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.VehicleID = model.VehicleID
	r.UserID = model.UserID
	r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	r.TotalPrice = model.TotalPrice
	r.PickupLocation = model.PickupLocation
	r.ReturnLocation = model.ReturnLocation
	r.PickupTime = model.PickupTime
	r.ReturnTime = model.ReturnTime
	r.Status = model.Status.String()
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
)

// BookingEvent is the payload published to Kafka on booking lifecycle changes.
type BookingEvent struct {
	Type       string  `json:"type"`
	BookingID  string  `json:"booking_id"`
	VehicleID  string  `json:"vehicle_id"`
	UserID     string  `json:"user_id"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"total_price"`
	OccurredAt string  `json:"occurred_at"`
}

func NewBookingEvent(eventType string, booking model.Booking) BookingEvent {
	return BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		VehicleID:  booking.VehicleID,
		UserID:     booking.UserID,
		Status:     booking.Status.String(),
		TotalPrice: booking.TotalPrice,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
	}
}
