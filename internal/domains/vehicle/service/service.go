package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/TomaszChromy/vehicle-rental-platform/config"
	"github.com/TomaszChromy/vehicle-rental-platform/infras/otel"
	"github.com/TomaszChromy/vehicle-rental-platform/infras/s3"
	bookingModel "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/booking/model"
	bookingRepo "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/booking/repository"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/vehicle/model"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/vehicle/model/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/vehicle/repository"
	"github.com/TomaszChromy/vehicle-rental-platform/shared"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/cache"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/constant"
	gDto "github.com/TomaszChromy/vehicle-rental-platform/shared/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/failure"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetVehicle    = "vehicle:get"
	cacheGetAllVehicle = "vehicle:gets"
	cacheCountVehicle  = "vehicle:count"
)

type Vehicle interface {
	Create(ctx context.Context, req dto.CreateVehicleRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetVehiclesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.VehicleResponse, error)
	Update(ctx context.Context, req dto.UpdateVehicleRequest, id string) error
	UploadImage(ctx context.Context, id string, file multipart.File, header *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Vehicle
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	s3          s3.S3
}

func New(repo repository.Vehicle, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Vehicle {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		s3:          s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVehicleRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return failure.Conflict("license plate is already registered") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create vehicle")

		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllVehicle)
		shared.InvalidateCaches(c, s.cache, cacheCountVehicle)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetVehiclesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllVehicle, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for vehicles")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count vehicles")

		return res, fmt.Errorf("failed to count vehicles: %w", err)
	}

	models, err := s.repo.GetAllWithStats(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicles")

		return res, fmt.Errorf("failed to get vehicles: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vehicles to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountVehicle, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for vehicle count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count vehicles")

		return res, fmt.Errorf("failed to count vehicles: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vehicle count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.VehicleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetVehicle, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for vehicle")

		return res, nil
	}

	vehicle, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicle")

		return res, fmt.Errorf("failed to get vehicle: %w", err)
	}

	if vehicle.ID == constant.Empty {
		return res, failure.NotFound("vehicle not found") // nolint:wrapcheck
	}

	res.FromModel(vehicle)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vehicle to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateVehicleRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if vehicle exists")

		return fmt.Errorf("failed to check if vehicle exists: %w", err)
	}

	if !exist {
		log.Error().Msg("vehicle not found")

		return failure.NotFound("vehicle not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if len(req.Features) > 0 {
		updatedFields[model.FieldFeatures] = shared.JoinList(req.Features)
	}

	if len(req.Images) > 0 {
		updatedFields[model.FieldImages] = shared.JoinList(req.Images)
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return failure.Conflict("license plate is already registered") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update vehicle")

		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// UploadImage stores a vehicle photo in object storage and appends its URL
// to the vehicle's image list.
func (s *serviceImpl) UploadImage(ctx context.Context, id string, file multipart.File, header *multipart.FileHeader) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	vehicle, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicle for image upload")

		return constant.Empty, fmt.Errorf("failed to get vehicle for image upload: %w", err)
	}

	if vehicle.ID == constant.Empty {
		return constant.Empty, failure.NotFound("vehicle not found") // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName
	filename := uuid.NewString()

	parts := strings.Split(header.Filename, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	url, err = s.s3.UploadFile(ctx, bucketName, model.EntityName, file, header, filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload vehicle image to S3")

		return constant.Empty, fmt.Errorf("failed to upload vehicle image: %w", err)
	}

	images := append(shared.SplitList(vehicle.Images), url)
	updatedFields := map[string]any{
		model.FieldImages:        shared.JoinList(images),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, filename)

		log.Error().Err(err).Msg("failed to attach vehicle image")

		return constant.Empty, fmt.Errorf("failed to attach vehicle image: %w", err)
	}

	s.invalidate(ctx, id)

	return url, nil
}

// Delete removes a vehicle from the fleet. Refused while any booking still
// occupies it.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if vehicle exists")

		return fmt.Errorf("failed to check if vehicle exists: %w", err)
	}

	if !exist {
		log.Error().Msg("vehicle not found")

		return failure.NotFound("vehicle not found") // nolint:wrapcheck
	}

	openBookings, err := s.bookingRepo.Count(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldVehicleID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    bookingModel.OpenStatuses,
				Table:    bookingModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count open bookings for vehicle")

		return fmt.Errorf("failed to count open bookings for vehicle: %w", err)
	}

	if openBookings > 0 {
		return failure.InvalidState("vehicle has open bookings") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete vehicle")

		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetVehicle, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete vehicle from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllVehicle)
		shared.InvalidateCaches(c, s.cache, cacheCountVehicle)
	}()
}
