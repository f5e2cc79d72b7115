//go:build wireinject
// +build wireinject

package di

import (
	"github.com/TomaszChromy/vehicle-rental-platform/config"
	"github.com/TomaszChromy/vehicle-rental-platform/infras/jwt"
	"github.com/TomaszChromy/vehicle-rental-platform/infras/kafka"
	"github.com/TomaszChromy/vehicle-rental-platform/infras/otel"
	"github.com/TomaszChromy/vehicle-rental-platform/infras/postgres"
	"github.com/TomaszChromy/vehicle-rental-platform/infras/redis"
	"github.com/TomaszChromy/vehicle-rental-platform/infras/s3"
	"github.com/TomaszChromy/vehicle-rental-platform/permissions"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/cache"
	"github.com/TomaszChromy/vehicle-rental-platform/transport/http"
	"github.com/TomaszChromy/vehicle-rental-platform/transport/http/middleware"
	"github.com/TomaszChromy/vehicle-rental-platform/transport/http/router"

	"github.com/google/wire"

	authService "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/auth/service"
	bookingRepository "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/booking/repository"
	bookingService "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/booking/service"
	paymentRepository "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/payment/repository"
	planRepository "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/plan/repository"
	planService "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/plan/service"
	reportRepository "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/report/repository"
	reportService "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/report/service"
	reviewRepository "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/review/repository"
	reviewService "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/review/service"
	userRepository "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/user/repository"
	userService "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/user/service"
	vehicleRepository "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/vehicle/repository"
	vehicleService "github.com/TomaszChromy/vehicle-rental-platform/internal/domains/vehicle/service"

	authHandler "github.com/TomaszChromy/vehicle-rental-platform/internal/handlers/auth"
	bookingHandler "github.com/TomaszChromy/vehicle-rental-platform/internal/handlers/booking"
	planHandler "github.com/TomaszChromy/vehicle-rental-platform/internal/handlers/plan"
	reportHandler "github.com/TomaszChromy/vehicle-rental-platform/internal/handlers/report"
	reviewHandler "github.com/TomaszChromy/vehicle-rental-platform/internal/handlers/review"
	userHandler "github.com/TomaszChromy/vehicle-rental-platform/internal/handlers/user"
	vehicleHandler "github.com/TomaszChromy/vehicle-rental-platform/internal/handlers/vehicle"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var vehicleDomain = wire.NewSet(
	vehicleRepository.New,
	vehicleService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	paymentRepository.New,
	bookingService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var planDomain = wire.NewSet(
	planRepository.New,
	planService.New,
)

var reportDomain = wire.NewSet(
	reportRepository.New,
	reportService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	vehicleDomain,
	bookingDomain,
	reviewDomain,
	planDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	vehicleHandler.New,
	bookingHandler.New,
	reviewHandler.New,
	planHandler.New,
	userHandler.New,
	reportHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
