package router

import (
	"github.com/TomaszChromy/vehicle-rental-platform/internal/handlers/auth"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/handlers/booking"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/handlers/plan"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/handlers/report"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/handlers/review"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/handlers/user"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/handlers/vehicle"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Vehicle vehicle.Handler
	Booking booking.Handler
	Review  review.Handler
	Plan    plan.Handler
	User    user.Handler
	Report  report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Vehicle.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Plan.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
