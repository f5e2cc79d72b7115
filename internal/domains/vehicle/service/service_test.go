package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/TomaszChromy/vehicle-rental-platform/config"
	"github.com/TomaszChromy/vehicle-rental-platform/infras/otel/mocks"
	s3Mocks "github.com/TomaszChromy/vehicle-rental-platform/infras/s3/mocks"
	bookingMocks "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/booking/mocks"
	vehicleMocks "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/vehicle/mocks"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/vehicle/model"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/vehicle/model/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/vehicle/service"
	cacheMocks "github.com/TomaszChromy/vehicle-rental-platform/shared/cache/mocks"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/constant"
	gDto "github.com/TomaszChromy/vehicle-rental-platform/shared/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/failure"
	gModel "github.com/TomaszChromy/vehicle-rental-platform/shared/model"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/timezone"
)

type vehicleServiceMocks struct {
	repo        *vehicleMocks.MockVehicle
	bookingRepo *bookingMocks.MockBooking
	cache       *cacheMocks.MockRedisCache
	s3          *s3Mocks.MockS3
}

func newVehicleService(ctrl *gomock.Controller) (service.Vehicle, vehicleServiceMocks) {
	m := vehicleServiceMocks{
		repo:        vehicleMocks.NewMockVehicle(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		s3:          s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.bookingRepo, cfg, m.cache, mocks.NewOtel(), m.s3)

	return svc, m
}

func testVehicle() model.Vehicle {
	return model.Vehicle{
		ID:           "vehicle-id",
		Type:         "CAR",
		Brand:        "Skoda",
		Model:        "Octavia",
		Year:         2022,
		LicensePlate: "WA12345",
		PricePerDay:  120,
		Location:     "Warszawa",
		IsAvailable:  true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "admin-id",
			ModifiedBy: "admin-id",
		},
	}
}

func TestVehicleService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newVehicleService(ctrl)

	req := dto.CreateVehicleRequest{
		Type:         "CAR",
		Brand:        "Skoda",
		Model:        "Octavia",
		Year:         2022,
		LicensePlate: "WA12345",
		PricePerDay:  120,
		Location:     "Warszawa",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func() {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "duplicate license plate",
			setupMock: func() {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			setupMock: func() {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			err := svc.Create(ctx, req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVehicleService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newVehicleService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testVehicle(), nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "vehicle-id",
		},
		{
			name: "vehicle not found",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Vehicle{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), "vehicle-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestVehicleService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newVehicleService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "successful get all with stats",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				m.repo.EXPECT().
					GetAllWithStats(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.VehicleStats{
						{
							Vehicle:       testVehicle(),
							AverageRating: 4.5,
							TotalReviews:  2,
							TotalBookings: 3,
						},
					}, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name: "stats query error",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				m.repo.EXPECT().
					GetAllWithStats(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			params := gDto.QueryParams{Limit: 10, Page: 1}
			result, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}

func TestVehicleService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newVehicleService(ctrl)

	price := 150.0

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "vehicle not found",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			err := svc.Update(ctx, dto.UpdateVehicleRequest{PricePerDay: &price}, "vehicle-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVehicleService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newVehicleService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.bookingRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)

				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "vehicle not found",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "vehicle has open bookings",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.bookingRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "vehicle-id")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
