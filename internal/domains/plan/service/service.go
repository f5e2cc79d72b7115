package service

import (
	"context"
	"fmt"

	"github.com/TomaszChromy/vehicle-rental-platform/config"
	"github.com/TomaszChromy/vehicle-rental-platform/infras/otel"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/plan/model"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/plan/model/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/plan/repository"
	"github.com/TomaszChromy/vehicle-rental-platform/shared"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/constant"
	gDto "github.com/TomaszChromy/vehicle-rental-platform/shared/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/failure"

	"github.com/rs/zerolog/log"
)

type Plan interface {
	Create(ctx context.Context, req dto.CreatePlanRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPlansResponse, error)
	Get(ctx context.Context, id string) (dto.PlanResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Plan
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Plan, cfg *config.Config, otel otel.Otel) Plan {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePlanRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create plan")

		return fmt.Errorf("failed to create plan: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPlansResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count plans")

		return res, fmt.Errorf("failed to count plans: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get plans")

		return res, fmt.Errorf("failed to get plans: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PlanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	plan, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get plan")

		return res, fmt.Errorf("failed to get plan: %w", err)
	}

	if plan.ID == constant.Empty {
		return res, failure.NotFound("plan not found") // nolint:wrapcheck
	}

	res.FromModel(plan)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if plan exists")

		return fmt.Errorf("failed to check if plan exists: %w", err)
	}

	if !exist {
		log.Error().Msg("plan not found")

		return failure.NotFound("plan not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete plan")

		return fmt.Errorf("failed to delete plan: %w", err)
	}

	return nil
}
