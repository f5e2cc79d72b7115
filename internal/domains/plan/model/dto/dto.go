package dto

import (
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/plan/model"
	"github.com/TomaszChromy/vehicle-rental-platform/shared"
	gDto "github.com/TomaszChromy/vehicle-rental-platform/shared/dto"
	gModel "github.com/TomaszChromy/vehicle-rental-platform/shared/model"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/timezone"

	"github.com/google/uuid"
)

type CreatePlanRequest struct {
	Name     string   `json:"name"      validate:"required,max=100"`
	Price    float64  `json:"price"     validate:"required,gt=0"`
	Currency string   `json:"currency"  validate:"omitempty,len=3"`
	Duration string   `json:"duration"  validate:"required,oneof=monthly yearly"`
	Features []string `json:"features"  validate:"omitempty,dive,max=100,excludes=0x2C"`
	IsActive *bool    `json:"is_active" validate:"omitempty"`
}

func (c *CreatePlanRequest) ToModel(user string) model.Plan {
	currency := c.Currency
	if currency == "" {
		currency = model.DefaultCurrency
	}

	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	return model.Plan{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Price:    c.Price,
		Currency: currency,
		Duration: c.Duration,
		Features: shared.JoinList(c.Features),
		IsActive: active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type PlanResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Currency string   `json:"currency"`
	Duration string   `json:"duration"`
	Features []string `json:"features"`
	IsActive bool     `json:"is_active"`
	gDto.Metadata
}

func (r *PlanResponse) FromModel(model model.Plan) {
	r.ID = model.ID
	r.Name = model.Name
	r.Price = model.Price
	r.Currency = model.Currency
	r.Duration = model.Duration
	r.Features = shared.SplitList(model.Features)
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetPlansResponse struct {
	Plans     []PlanResponse `json:"plans"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetPlansResponse) FromModels(models []model.Plan, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Plans = make([]PlanResponse, len(models))
	for i, mod := range models {
		r.Plans[i].FromModel(mod)
	}
}
