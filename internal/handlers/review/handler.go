package review

import (
	"net/http"

	"github.com/TomaszChromy/vehicle-rental-platform/infras/otel"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/review/model"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/review/model/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/review/service"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/constant"
	gDto "github.com/TomaszChromy/vehicle-rental-platform/shared/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/validator"
	"github.com/TomaszChromy/vehicle-rental-platform/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReview)
		routerGroup.Get("/", handler.GetReviews)
		routerGroup.Get("/featured", handler.GetFeaturedReviews)
		routerGroup.Delete("/{id}", handler.DeleteReview)
	})
}

// CreateReview handles the creation of a new review.
// @Summary Create a new review
// @Description Create a review for a vehicle, optionally linked to one of the reviewer's bookings.
// @Tags Review
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} response.Message "Review created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews [post]
// @Security BearerAuth
func (handler *Handler) CreateReview(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	req := dto.CreateReviewRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create review")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Review created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Review created successfully")
}

// GetReviews retrieves all reviews based on query parameters.
// @Summary Get all reviews
// @Description Retrieve all reviews with optional filtering and pagination.
// @Tags Review
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param vehicle_id query string false "Filter by vehicle ID"
// @Param user_id query string false "Filter by user ID"
// @Success 200 {object} response.Data[dto.GetReviewsResponse] "List of reviews"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews [get]
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if vehicleID := r.URL.Query().Get(model.FieldVehicleID); vehicleID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldVehicleID,
			Operator: gDto.FilterOperatorEq,
			Value:    vehicleID,
			Table:    model.TableName,
		})
	}

	if userID := r.URL.Query().Get(model.FieldUserID); userID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    userID,
			Table:    model.TableName,
		})
	}

	reviews, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reviews")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reviews retrieved successfully")

	response.WithJSON(w, http.StatusOK, reviews)
}

// GetFeaturedReviews retrieves highly rated reviews for the landing page.
// @Summary Get featured reviews
// @Description Retrieve reviews rated four stars or better, optionally restricted to one vehicle.
// @Tags Review
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param vehicle_id query string false "Filter by vehicle ID"
// @Success 200 {object} response.Data[dto.GetReviewsResponse] "List of featured reviews"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/featured [get]
func (handler *Handler) GetFeaturedReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeaturedReviews")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRating,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    model.FeaturedMinRating,
				Table:    model.TableName,
			},
		},
	}

	if vehicleID := r.URL.Query().Get(model.FieldVehicleID); vehicleID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldVehicleID,
			Operator: gDto.FilterOperatorEq,
			Value:    vehicleID,
			Table:    model.TableName,
		})
	}

	reviews, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get featured reviews")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Featured reviews retrieved successfully")

	response.WithJSON(w, http.StatusOK, reviews)
}

// DeleteReview deletes a review by its ID.
// @Summary Delete a review by ID
// @Description Delete a review using its unique identifier.
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Message "Review deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReview")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete review")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Review deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Review deleted successfully")
}
