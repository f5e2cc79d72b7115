package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/TomaszChromy/vehicle-rental-platform/infras/otel"
	"github.com/TomaszChromy/vehicle-rental-platform/infras/postgres"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/report/model"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/constant"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/logger"

	"github.com/lib/pq"
)

type Report interface {
	GetSummary(ctx context.Context, from, to time.Time) (model.Summary, error)
	GetMonthlyBookings(ctx context.Context, from, to time.Time) ([]model.MonthlyBookings, error)
	GetVehicleTypeStats(ctx context.Context, from, to time.Time) ([]model.VehicleTypeStats, error)
	GetTopClients(ctx context.Context, from, to time.Time, limit int) ([]model.TopClient, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) GetSummary(ctx context.Context, from, to time.Time) (model.Summary, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.GetSummary")
	defer scope.End()

	query := `SELECT
		(SELECT COUNT(1) FROM bookings WHERE created_at BETWEEN $1 AND $2) AS total_bookings,
		COALESCE((SELECT SUM(total_price) FROM bookings WHERE status = ANY($3) AND created_at BETWEEN $1 AND $2), 0) AS total_revenue,
		(SELECT COUNT(1) FROM vehicles) AS total_vehicles,
		(SELECT COUNT(1) FROM vehicles WHERE is_available) AS available_vehicles,
		(SELECT COUNT(1) FROM users WHERE role = 'CLIENT') AS total_clients,
		(SELECT COUNT(1) FROM reviews WHERE created_at BETWEEN $1 AND $2) AS total_reviews`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var summary model.Summary

	err := repo.db.Read.GetContext(ctx, &summary, query, from, to, pq.Array(model.RevenueStatuses))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return summary, fmt.Errorf("failed to get report summary: %w", err)
	}

	return summary, nil
}

func (repo *repositoryImpl) GetMonthlyBookings(ctx context.Context, from, to time.Time) ([]model.MonthlyBookings, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.GetMonthlyBookings")
	defer scope.End()

	query := `SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month,
		COUNT(1) AS bookings,
		COALESCE(SUM(total_price) FILTER (WHERE status = ANY($3)), 0) AS revenue
		FROM bookings
		WHERE created_at BETWEEN $1 AND $2
		GROUP BY date_trunc('month', created_at)
		ORDER BY month`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var months []model.MonthlyBookings

	err := repo.db.Read.SelectContext(ctx, &months, query, from, to, pq.Array(model.RevenueStatuses))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return months, fmt.Errorf("failed to get monthly bookings: %w", err)
	}

	return months, nil
}

func (repo *repositoryImpl) GetVehicleTypeStats(ctx context.Context, from, to time.Time) ([]model.VehicleTypeStats, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.GetVehicleTypeStats")
	defer scope.End()

	query := `SELECT vehicles.type,
		COUNT(DISTINCT vehicles.id) AS vehicles,
		COUNT(bookings.id) AS bookings,
		COALESCE(SUM(bookings.total_price) FILTER (WHERE bookings.status = ANY($3)), 0) AS revenue
		FROM vehicles
		LEFT JOIN bookings ON bookings.vehicle_id = vehicles.id AND bookings.created_at BETWEEN $1 AND $2
		GROUP BY vehicles.type
		ORDER BY revenue DESC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var stats []model.VehicleTypeStats

	err := repo.db.Read.SelectContext(ctx, &stats, query, from, to, pq.Array(model.RevenueStatuses))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return stats, fmt.Errorf("failed to get vehicle type stats: %w", err)
	}

	return stats, nil
}

func (repo *repositoryImpl) GetTopClients(ctx context.Context, from, to time.Time, limit int) ([]model.TopClient, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.GetTopClients")
	defer scope.End()

	query := `SELECT users.id AS user_id,
		users.email,
		users.first_name,
		users.last_name,
		COUNT(bookings.id) AS bookings,
		COALESCE(SUM(bookings.total_price) FILTER (WHERE bookings.status = ANY($3)), 0) AS spent
		FROM users
		JOIN bookings ON bookings.user_id = users.id AND bookings.created_at BETWEEN $1 AND $2
		GROUP BY users.id, users.email, users.first_name, users.last_name
		ORDER BY spent DESC
		LIMIT $4`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var clients []model.TopClient

	err := repo.db.Read.SelectContext(ctx, &clients, query, from, to, pq.Array(model.RevenueStatuses), limit)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return clients, fmt.Errorf("failed to get top clients: %w", err)
	}

	return clients, nil
}
