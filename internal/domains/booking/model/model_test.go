package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/booking/model"
)

func date(value string) time.Time {
	parsed, _ := time.Parse("2006-01-02", value)

	return parsed
}

func TestCalculateTotalPrice(t *testing.T) {
	tests := []struct {
		name        string
		startDate   time.Time
		endDate     time.Time
		pricePerDay float64
		want        float64
	}{
		{
			name:        "two day rental",
			startDate:   date("2026-01-01"),
			endDate:     date("2026-01-03"),
			pricePerDay: 120,
			want:        240,
		},
		{
			name:        "same day rental charges one full day",
			startDate:   date("2026-01-01"),
			endDate:     date("2026-01-01"),
			pricePerDay: 100,
			want:        100,
		},
		{
			name:        "partial day rounds up",
			startDate:   time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
			endDate:     time.Date(2026, 1, 2, 20, 0, 0, 0, time.UTC),
			pricePerDay: 50,
			want:        100,
		},
		{
			name:        "week long rental",
			startDate:   date("2026-03-01"),
			endDate:     date("2026-03-08"),
			pricePerDay: 75.5,
			want:        528.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.CalculateTotalPrice(tt.startDate, tt.endDate, tt.pricePerDay)

			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    model.Status
		wantErr bool
	}{
		{name: "pending", value: "PENDING", want: model.StatusPending},
		{name: "confirmed", value: "CONFIRMED", want: model.StatusConfirmed},
		{name: "active", value: "ACTIVE", want: model.StatusActive},
		{name: "completed", value: "COMPLETED", want: model.StatusCompleted},
		{name: "cancelled", value: "CANCELLED", want: model.StatusCancelled},
		{name: "unknown value", value: "PAUSED", wantErr: true},
		{name: "lowercase is rejected", value: "pending", wantErr: true},
		{name: "empty value", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ParseStatus(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from model.Status
		to   model.Status
		want bool
	}{
		{name: "pending to confirmed", from: model.StatusPending, to: model.StatusConfirmed, want: true},
		{name: "pending to cancelled", from: model.StatusPending, to: model.StatusCancelled, want: true},
		{name: "pending to active skips confirmation", from: model.StatusPending, to: model.StatusActive, want: false},
		{name: "confirmed to active", from: model.StatusConfirmed, to: model.StatusActive, want: true},
		{name: "confirmed to cancelled", from: model.StatusConfirmed, to: model.StatusCancelled, want: true},
		{name: "confirmed to completed skips activation", from: model.StatusConfirmed, to: model.StatusCompleted, want: false},
		{name: "active to completed", from: model.StatusActive, to: model.StatusCompleted, want: true},
		{name: "active cannot be cancelled", from: model.StatusActive, to: model.StatusCancelled, want: false},
		{name: "active back to confirmed", from: model.StatusActive, to: model.StatusConfirmed, want: false},
		{name: "completed is terminal", from: model.StatusCompleted, to: model.StatusActive, want: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_Deletable(t *testing.T) {
	assert.True(t, model.StatusPending.Deletable())
	assert.True(t, model.StatusCancelled.Deletable())
	assert.False(t, model.StatusConfirmed.Deletable())
	assert.False(t, model.StatusActive.Deletable())
	assert.False(t, model.StatusCompleted.Deletable())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, model.StatusCompleted.IsTerminal())
	assert.True(t, model.StatusCancelled.IsTerminal())
	assert.False(t, model.StatusPending.IsTerminal())
	assert.False(t, model.StatusConfirmed.IsTerminal())
	assert.False(t, model.StatusActive.IsTerminal())
}
