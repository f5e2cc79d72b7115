package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/TomaszChromy/vehicle-rental-platform/config"
	"github.com/TomaszChromy/vehicle-rental-platform/infras/otel/mocks"
	planMocks "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/plan/mocks"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/plan/model"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/plan/model/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/plan/service"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/constant"
	gDto "github.com/TomaszChromy/vehicle-rental-platform/shared/dto"
)

func newPlanService(ctrl *gomock.Controller) (service.Plan, *planMocks.MockPlan) {
	mockRepo := planMocks.NewMockPlan(ctrl)

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mocks.NewOtel())

	return svc, mockRepo
}

func TestPlanService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newPlanService(ctrl)

	req := dto.CreatePlanRequest{
		Name:     "Premium",
		Price:    199.99,
		Duration: "monthly",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
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
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPlanService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newPlanService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "successful get",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Plan{
						ID:       "plan-id",
						Name:     "Premium",
						Price:    199.99,
						Currency: "PLN",
						Duration: "monthly",
						IsActive: true,
					}, nil)
			},
			wantErr: false,
			wantID:  "plan-id",
		},
		{
			name: "plan not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Plan{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Plan{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), "plan-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, result.ID)
			}
		})
	}
}

func TestPlanService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newPlanService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "successful get all",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Plan{
						{ID: "plan-1", Name: "Basic", Duration: "monthly"},
						{ID: "plan-2", Name: "Premium", Duration: "yearly"},
					}, nil)
			},
			wantErr:   false,
			wantTotal: 2,
		},
		{
			name: "get all error",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
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

func TestPlanService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newPlanService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "plan not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "plan-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
