package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/TomaszChromy/vehicle-rental-platform/infras/otel"
	"github.com/TomaszChromy/vehicle-rental-platform/infras/postgres"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/vehicle/model"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/constant"
	gDto "github.com/TomaszChromy/vehicle-rental-platform/shared/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/logger"
	gRepo "github.com/TomaszChromy/vehicle-rental-platform/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Vehicle interface {
	Insert(ctx context.Context, model model.Vehicle) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Vehicle, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Vehicle, error)
	GetAllWithStats(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.VehicleStats, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Vehicle, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Vehicle]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Vehicle {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Vehicle](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetAllWithStats reads vehicles together with their review and booking
// aggregates for the listing endpoint.
func (repo *repositoryImpl) GetAllWithStats(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.VehicleStats, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".vehicle.GetAllWithStats")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	var ordering, pagination string

	if params.Page > 0 && params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit

		pagination = "LIMIT :limit OFFSET :offset"
	}

	if params.SortBy != "" && params.SortDir != "" {
		ordering = fmt.Sprintf("ORDER BY %s %s", params.SortBy, params.SortDir)
	}

	query := fmt.Sprintf(`SELECT vehicles.*,
		COALESCE((SELECT AVG(reviews.rating) FROM reviews WHERE reviews.vehicle_id = vehicles.id), 0) AS average_rating,
		(SELECT COUNT(1) FROM reviews WHERE reviews.vehicle_id = vehicles.id) AS total_reviews,
		(SELECT COUNT(1) FROM bookings WHERE bookings.vehicle_id = vehicles.id) AS total_bookings
		FROM vehicles %s %s %s`, where, ordering, pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var models []model.VehicleStats

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &models, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get vehicles with stats: %w", err)
	}

	return models, nil
}

// GetForUpdateTx locks the vehicle row inside the given transaction so
// concurrent booking admissions for the same vehicle serialize.
func (repo *repositoryImpl) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Vehicle, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".vehicle.GetForUpdateTx")
	defer scope.End()

	query := "SELECT * FROM vehicles WHERE id = $1 FOR UPDATE"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var vehicle model.Vehicle

	err := tx.GetContext(ctx, &vehicle, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return vehicle, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return vehicle, fmt.Errorf("failed to lock vehicle row: %w", err)
	}

	return vehicle, nil
}
