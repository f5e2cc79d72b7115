package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/TomaszChromy/vehicle-rental-platform/infras/otel"
	"github.com/TomaszChromy/vehicle-rental-platform/infras/postgres"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/plan/model"
	gDto "github.com/TomaszChromy/vehicle-rental-platform/shared/dto"
	gRepo "github.com/TomaszChromy/vehicle-rental-platform/shared/repository"
)

type Plan interface {
	Insert(ctx context.Context, model model.Plan) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Plan, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Plan, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Plan]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Plan {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Plan](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
