package service

import (
	"context"
	"fmt"

	"github.com/TomaszChromy/vehicle-rental-platform/config"
	"github.com/TomaszChromy/vehicle-rental-platform/infras/otel"
	bookingModel "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/booking/model"
	bookingRepo "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/booking/repository"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/review/model"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/review/model/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/review/repository"
	vehicleModel "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/vehicle/model"
	vehicleRepo "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/vehicle/repository"
	"github.com/TomaszChromy/vehicle-rental-platform/shared"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/constant"
	gDto "github.com/TomaszChromy/vehicle-rental-platform/shared/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/failure"

	"github.com/rs/zerolog/log"
)

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReviewsResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Review
	bookingRepo bookingRepo.Booking
	vehicleRepo vehicleRepo.Vehicle
	cfg         *config.Config
	otel        otel.Otel
}

func New(repo repository.Review, bookingRepo bookingRepo.Booking, vehicleRepo vehicleRepo.Vehicle, cfg *config.Config, otel otel.Otel) Review {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		cfg:         cfg,
		otel:        otel,
	}
}

// Create stores a review. A review referencing a booking is only accepted
// when that booking belongs to the same user and vehicle.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	vehicleExists, err := s.vehicleRepo.Exist(ctx, shared.FilterByID(req.VehicleID, vehicleModel.FieldID, vehicleModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if vehicle exists")

		return fmt.Errorf("failed to check if vehicle exists: %w", err)
	}

	if !vehicleExists {
		return failure.NotFound("vehicle not found") // nolint:wrapcheck
	}

	if req.BookingID != constant.Empty {
		booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get booking for review")

			return fmt.Errorf("failed to get booking for review: %w", err)
		}

		if booking.ID == constant.Empty || booking.UserID != user || booking.VehicleID != req.VehicleID {
			return failure.BadRequestFromString("booking does not match this user and vehicle") // nolint:wrapcheck
		}
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create review")

		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if review exists")

		return fmt.Errorf("failed to check if review exists: %w", err)
	}

	if !exist {
		log.Error().Msg("review not found")

		return failure.NotFound("review not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete review")

		return fmt.Errorf("failed to delete review: %w", err)
	}

	return nil
}
