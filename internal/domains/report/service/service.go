package service

import (
	"context"
	"fmt"

	"github.com/TomaszChromy/vehicle-rental-platform/config"
	"github.com/TomaszChromy/vehicle-rental-platform/infras/otel"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/report/model/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/report/repository"
	"github.com/TomaszChromy/vehicle-rental-platform/shared"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/cache"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/constant"

	"github.com/rs/zerolog/log"
)

const cacheGetReport = "report:get"

type Report interface {
	Get(ctx context.Context, query dto.ReportQuery) (dto.ReportResponse, error)
}

type serviceImpl struct {
	repo  repository.Report
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Report, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Report {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Get assembles the admin dashboard report for the requested date range.
func (s *serviceImpl) Get(ctx context.Context, query dto.ReportQuery) (res dto.ReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	from, to, err := query.Range()
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetReport,
		from.Format(constant.DateOnlyFormat),
		to.Format(constant.DateOnlyFormat),
		fmt.Sprintf("%d", query.TopLimit()),
	)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for report")

		return res, nil
	}

	summary, err := s.repo.GetSummary(ctx, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to get report summary")

		return res, fmt.Errorf("failed to get report summary: %w", err)
	}

	months, err := s.repo.GetMonthlyBookings(ctx, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to get monthly bookings")

		return res, fmt.Errorf("failed to get monthly bookings: %w", err)
	}

	types, err := s.repo.GetVehicleTypeStats(ctx, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicle type stats")

		return res, fmt.Errorf("failed to get vehicle type stats: %w", err)
	}

	clients, err := s.repo.GetTopClients(ctx, from, to, query.TopLimit())
	if err != nil {
		log.Error().Err(err).Msg("failed to get top clients")

		return res, fmt.Errorf("failed to get top clients: %w", err)
	}

	res.FromModels(from, to, summary, months, types, clients)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save report to cache")
		}
	}()

	return res, nil
}
