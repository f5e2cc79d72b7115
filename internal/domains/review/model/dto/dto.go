package dto

import (
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/review/model"
	"github.com/TomaszChromy/vehicle-rental-platform/shared"
	gDto "github.com/TomaszChromy/vehicle-rental-platform/shared/dto"
	gModel "github.com/TomaszChromy/vehicle-rental-platform/shared/model"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	VehicleID string `json:"vehicle_id" validate:"required"`
	BookingID string `json:"booking_id" validate:"omitempty"`
	Rating    int    `json:"rating"     validate:"required,min=1,max=5"`
	Comment   string `json:"comment"    validate:"omitempty,max=1000"`
}

func (c *CreateReviewRequest) ToModel(user string) model.Review {
	var bookingID *string
	if c.BookingID != "" {
		bookingID = &c.BookingID
	}

	return model.Review{
		ID:        uuid.NewString(),
		UserID:    user,
		VehicleID: c.VehicleID,
		BookingID: bookingID,
		Rating:    c.Rating,
		Comment:   c.Comment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ReviewResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	VehicleID string `json:"vehicle_id"`
	BookingID string `json:"booking_id,omitempty"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.VehicleID = model.VehicleID

	if model.BookingID != nil {
		r.BookingID = *model.BookingID
	}

	r.Rating = model.Rating
	r.Comment = model.Comment
	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
