package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/TomaszChromy/vehicle-rental-platform/infras/otel"
	"github.com/TomaszChromy/vehicle-rental-platform/infras/postgres"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/booking/model"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/constant"
	gDto "github.com/TomaszChromy/vehicle-rental-platform/shared/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/logger"
	gRepo "github.com/TomaszChromy/vehicle-rental-platform/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CountOverlappingTx(ctx context.Context, tx *sqlx.Tx, vehicleID string, startDate, endDate time.Time) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// WithinTx runs fn inside a single write transaction. The transaction is
// committed when fn returns nil and rolled back otherwise.
func (repo *repositoryImpl) WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.ErrorWithStack(rbErr)
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}

// CountOverlappingTx counts open bookings for the vehicle whose period
// touches [startDate, endDate]. Bounds are inclusive on both sides.
func (repo *repositoryImpl) CountOverlappingTx(ctx context.Context, tx *sqlx.Tx, vehicleID string, startDate, endDate time.Time) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountOverlappingTx")
	defer scope.End()

	query := `SELECT COUNT(1) FROM bookings
		WHERE vehicle_id = $1
		AND status IN ($2, $3, $4)
		AND start_date <= $5
		AND end_date >= $6`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	err := tx.GetContext(ctx, &count, query, vehicleID,
		model.StatusPending, model.StatusConfirmed, model.StatusActive,
		endDate, startDate)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	return count, nil
}
