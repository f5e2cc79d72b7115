package service

import (
	"context"
	"fmt"

	"github.com/TomaszChromy/vehicle-rental-platform/config"
	"github.com/TomaszChromy/vehicle-rental-platform/infras/kafka"
	"github.com/TomaszChromy/vehicle-rental-platform/infras/otel"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/booking/model"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/booking/model/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/booking/repository"
	paymentModel "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/payment/model"
	paymentRepo "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/payment/repository"
	vehicleRepo "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/vehicle/repository"
	"github.com/TomaszChromy/vehicle-rental-platform/shared"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/cache"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/constant"
	gDto "github.com/TomaszChromy/vehicle-rental-platform/shared/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/failure"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Booking
	vehicleRepo vehicleRepo.Vehicle
	paymentRepo paymentRepo.Payment
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	kafka       kafka.Client
}

func New(repo repository.Booking, vehicleRepo vehicleRepo.Vehicle, paymentRepo paymentRepo.Payment, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Booking {
	return &serviceImpl{
		repo:        repo,
		vehicleRepo: vehicleRepo,
		paymentRepo: paymentRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		kafka:       kafka,
	}
}

// Create admits a booking. The vehicle lookup, overlap check and insert run
// in one transaction with the vehicle row locked, so two concurrent requests
// for the same vehicle serialize and only one can win an overlapping period.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	startDate, endDate, err := req.ParseDates()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking period")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid booking period: %v", err)) // nolint:wrapcheck
	}

	var booking model.Booking

	err = s.repo.WithinTx(ctx, func(tx *sqlx.Tx) error {
		vehicle, txErr := s.vehicleRepo.GetForUpdateTx(ctx, tx, req.VehicleID)
		if txErr != nil {
			log.Error().Err(txErr).Msg("failed to lock vehicle for booking")

			return fmt.Errorf("failed to lock vehicle for booking: %w", txErr)
		}

		if vehicle.ID == constant.Empty {
			return failure.NotFound("vehicle not found") // nolint:wrapcheck
		}

		if !vehicle.IsAvailable {
			return failure.Conflict("vehicle is not available") // nolint:wrapcheck
		}

		overlapping, txErr := s.repo.CountOverlappingTx(ctx, tx, req.VehicleID, startDate, endDate)
		if txErr != nil {
			log.Error().Err(txErr).Msg("failed to check booking overlap")

			return fmt.Errorf("failed to check booking overlap: %w", txErr)
		}

		if overlapping > 0 {
			return failure.Conflict("vehicle is already booked for the selected dates") // nolint:wrapcheck
		}

		totalPrice := model.CalculateTotalPrice(startDate, endDate, vehicle.PricePerDay)
		booking = req.ToModel(user, startDate, endDate, totalPrice)

		if txErr = s.repo.InsertTx(ctx, tx, booking); txErr != nil {
			log.Error().Err(txErr).Msg("failed to create booking")

			return fmt.Errorf("failed to create booking: %w", txErr)
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	s.publishEvent(ctx, dto.EventBookingCreated, booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// UpdateStatus moves a booking along its lifecycle. Only transitions allowed
// by the status table are accepted.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	nextStatus, err := model.ParseStatus(req.Status)
	if err != nil {
		return failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for status update")

		return fmt.Errorf("failed to get booking for status update: %w", err)
	}

	if booking.ID == constant.Empty {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !booking.Status.CanTransitionTo(nextStatus) {
		return failure.InvalidState(fmt.Sprintf("cannot transition booking from %s to %s", booking.Status, nextStatus)) // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        nextStatus,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = nextStatus
	s.publishEvent(ctx, dto.EventBookingStatusChanged, booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

// Delete removes a booking that never ran. Confirmed, active and completed
// bookings stay on record. The attached payment goes in the same transaction.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for delete")

		return fmt.Errorf("failed to get booking for delete: %w", err)
	}

	if booking.ID == constant.Empty {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !booking.Status.Deletable() {
		return failure.InvalidState(fmt.Sprintf("cannot delete booking in status %s", booking.Status)) // nolint:wrapcheck
	}

	err = s.repo.WithinTx(ctx, func(tx *sqlx.Tx) error {
		paymentFilter := shared.FilterByID(id, paymentModel.FieldBookingID, paymentModel.TableName)
		if txErr := s.paymentRepo.DeleteTx(ctx, tx, paymentFilter); txErr != nil {
			log.Error().Err(txErr).Msg("failed to delete booking payment")

			return fmt.Errorf("failed to delete booking payment: %w", txErr)
		}

		if txErr := s.repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName)); txErr != nil {
			log.Error().Err(txErr).Msg("failed to delete booking")

			return fmt.Errorf("failed to delete booking: %w", txErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

// publishEvent writes a booking lifecycle event to Kafka. Delivery is fire
// and forget; a broker failure never fails the request.
func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.NewBookingEvent(eventType, booking)

		if err := s.kafka.SendMessages(c, constant.KafkaTopicBookingEvents, kafka.Message{
			Key:   booking.ID,
			Value: event,
		}); err != nil {
			log.Error().Err(err).Str("event", eventType).Msg("failed to publish booking event")
		}
	}()
}
