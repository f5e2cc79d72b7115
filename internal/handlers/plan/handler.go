package plan

import (
	"net/http"

	"github.com/TomaszChromy/vehicle-rental-platform/infras/otel"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/plan/model"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/plan/model/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/plan/service"
	"github.com/TomaszChromy/vehicle-rental-platform/shared"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/constant"
	gDto "github.com/TomaszChromy/vehicle-rental-platform/shared/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/validator"
	"github.com/TomaszChromy/vehicle-rental-platform/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Plan
	otel    otel.Otel
}

func New(service service.Plan, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/plans", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePlan)
		routerGroup.Get("/", handler.GetPlans)
		routerGroup.Get("/{id}", handler.GetPlanByID)
		routerGroup.Delete("/{id}", handler.DeletePlan)
	})
}

// CreatePlan handles the creation of a new subscription plan.
// @Summary Create a new plan
// @Description Create a new subscription plan with the provided details.
// @Tags Plan
// @Accept json
// @Produce json
// @Param request body dto.CreatePlanRequest true "Create Plan Request"
// @Success 201 {object} response.Message "Plan created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/plans [post]
// @Security BearerAuth
func (handler *Handler) CreatePlan(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePlan")
	defer scope.End()

	req := dto.CreatePlanRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create plan")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Plan created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Plan created successfully")
}

// GetPlans retrieves all plans based on query parameters.
// @Summary Get all plans
// @Description Retrieve all subscription plans with optional filtering and pagination.
// @Tags Plan
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param duration query string false "Filter by duration (monthly, yearly)"
// @Param is_active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetPlansResponse] "List of plans"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/plans [get]
func (handler *Handler) GetPlans(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlans")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if duration := r.URL.Query().Get(model.FieldDuration); duration != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDuration,
			Operator: gDto.FilterOperatorEq,
			Value:    duration,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	plans, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get plans")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Plans retrieved successfully")

	response.WithJSON(w, http.StatusOK, plans)
}

// GetPlanByID retrieves a plan by its ID.
// @Summary Get a plan by ID
// @Description Retrieve a subscription plan by its unique identifier.
// @Tags Plan
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} response.Data[dto.PlanResponse] "Plan details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/plans/{id} [get]
func (handler *Handler) GetPlanByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlanByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	plan, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get plan by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Plan retrieved successfully")

	response.WithJSON(w, http.StatusOK, plan)
}

// DeletePlan deletes a plan by its ID.
// @Summary Delete a plan by ID
// @Description Delete a subscription plan using its unique identifier.
// @Tags Plan
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} response.Message "Plan deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/plans/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePlan")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete plan")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Plan deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Plan deleted successfully")
}
