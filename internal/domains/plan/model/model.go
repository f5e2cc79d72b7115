package model

import "github.com/TomaszChromy/vehicle-rental-platform/shared/model"

const (
	TableName  = "plans"
	EntityName = "plan"

	FieldID       = "id"
	FieldName     = "name"
	FieldPrice    = "price"
	FieldCurrency = "currency"
	FieldDuration = "duration"
	FieldFeatures = "features"
	FieldIsActive = "is_active"
)

const (
	DefaultCurrency = "PLN"

	DurationMonthly = "monthly"
	DurationYearly  = "yearly"
)

type Plan struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	Price    float64 `db:"price"`
	Currency string  `db:"currency"`
	Duration string  `db:"duration"`
	Features string  `db:"features"`
	IsActive bool    `db:"is_active"`
	model.Metadata
}
