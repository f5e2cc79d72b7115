package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/TomaszChromy/vehicle-rental-platform/config"
	"github.com/TomaszChromy/vehicle-rental-platform/infras/otel/mocks"
	reportMocks "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/report/mocks"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/report/model"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/report/model/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/report/service"
	cacheMocks "github.com/TomaszChromy/vehicle-rental-platform/shared/cache/mocks"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/failure"
)

func newReportService(ctrl *gomock.Controller) (service.Report, *reportMocks.MockReport, *cacheMocks.MockRedisCache) {
	mockRepo := reportMocks.NewMockReport(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func TestReportService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newReportService(ctrl)

	summary := model.Summary{
		TotalBookings:     12,
		TotalRevenue:      4420.50,
		TotalVehicles:     4,
		AvailableVehicles: 3,
		TotalClients:      5,
		TotalReviews:      7,
	}

	tests := []struct {
		name      string
		query     dto.ReportQuery
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:  "invalid date range",
			query: dto.ReportQuery{From: "2026-06-01", To: "2026-01-01"},
			setupMock: func() {
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:  "cache hit",
			query: dto.ReportQuery{From: "2026-01-01", To: "2026-06-30"},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:  "full report assembled from repository",
			query: dto.ReportQuery{From: "2026-01-01", To: "2026-06-30"},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetSummary(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(summary, nil)

				mockRepo.EXPECT().
					GetMonthlyBookings(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.MonthlyBookings{
						{Month: "2026-01", Bookings: 5, Revenue: 1800},
						{Month: "2026-02", Bookings: 7, Revenue: 2620.50},
					}, nil)

				mockRepo.EXPECT().
					GetVehicleTypeStats(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.VehicleTypeStats{
						{Type: "CAR", Vehicles: 2, Bookings: 10, Revenue: 4000},
						{Type: "BIKE", Vehicles: 2, Bookings: 2, Revenue: 420.50},
					}, nil)

				mockRepo.EXPECT().
					GetTopClients(gomock.Any(), gomock.Any(), gomock.Any(), 10).
					Return([]model.TopClient{
						{UserID: "user-id", Email: "client@vehiclerent.pl", Bookings: 6, Spent: 2200},
					}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:  "summary query error",
			query: dto.ReportQuery{From: "2026-01-01", To: "2026-06-30"},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetSummary(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Summary{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.query)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)

			if tt.name == "full report assembled from repository" {
				assert.Equal(t, "2026-01-01", result.From)
				assert.Equal(t, "2026-06-30", result.To)
				assert.Equal(t, 12, result.Summary.TotalBookings)
				assert.InDelta(t, 4420.50, result.Summary.TotalRevenue, 0.001)
				assert.Len(t, result.MonthlyBookings, 2)
				assert.Len(t, result.VehicleTypes, 2)
				assert.Len(t, result.TopClients, 1)
			}
		})
	}
}
