package vehicle

import (
	"net/http"

	"github.com/TomaszChromy/vehicle-rental-platform/infras/otel"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/vehicle/model"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/vehicle/model/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/vehicle/service"
	"github.com/TomaszChromy/vehicle-rental-platform/shared"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/constant"
	gDto "github.com/TomaszChromy/vehicle-rental-platform/shared/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/validator"
	"github.com/TomaszChromy/vehicle-rental-platform/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Vehicle
	otel    otel.Otel
}

func New(service service.Vehicle, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/vehicles", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateVehicle)
		routerGroup.Get("/", handler.GetVehicles)
		routerGroup.Get("/{id}", handler.GetVehicleByID)
		routerGroup.Patch("/{id}", handler.UpdateVehicle)
		routerGroup.Post("/{id}/image", handler.UploadVehicleImage)
		routerGroup.Delete("/{id}", handler.DeleteVehicle)
	})
}

// CreateVehicle handles the creation of a new vehicle.
// @Summary Create a new vehicle
// @Description Create a new vehicle with the provided details.
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param request body dto.CreateVehicleRequest true "Create Vehicle Request"
// @Success 201 {object} response.Message "Vehicle created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vehicles [post]
// @Security BearerAuth
func (handler *Handler) CreateVehicle(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVehicle")
	defer scope.End()

	req := dto.CreateVehicleRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create vehicle")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Vehicle created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Vehicle created successfully")
}

// GetVehicles retrieves all vehicles based on query parameters.
// @Summary Get all vehicles
// @Description Retrieve all vehicles with their rating and booking aggregates, with optional filtering and pagination.
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by type (CAR, BIKE, SCOOTER)"
// @Param brand query string false "Filter by brand"
// @Param location query string false "Filter by location"
// @Param is_available query boolean false "Filter by availability"
// @Param min_price query number false "Filter by minimum price per day"
// @Param max_price query number false "Filter by maximum price per day"
// @Success 200 {object} response.Data[dto.GetVehiclesResponse] "List of vehicles"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vehicles [get]
func (handler *Handler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehicles")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if typ := r.URL.Query().Get(model.FieldType); typ != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    typ,
			Table:    model.TableName,
		})
	}

	if brand := r.URL.Query().Get(model.FieldBrand); brand != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBrand,
			Operator: gDto.FilterOperatorLike,
			Value:    brand,
			Table:    model.TableName,
		})
	}

	if location := r.URL.Query().Get(model.FieldLocation); location != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    location,
			Table:    model.TableName,
		})
	}

	if available := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsAvailable)); available != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsAvailable,
			Operator: gDto.FilterOperatorEq,
			Value:    *available,
			Table:    model.TableName,
		})
	}

	if minPrice := r.URL.Query().Get("min_price"); minPrice != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPricePerDay,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    minPrice,
			Table:    model.TableName,
		})
	}

	if maxPrice := r.URL.Query().Get("max_price"); maxPrice != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPricePerDay,
			Operator: gDto.FilterOperatorLessEq,
			Value:    maxPrice,
			Table:    model.TableName,
		})
	}

	vehicles, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vehicles")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicles retrieved successfully")

	response.WithJSON(w, http.StatusOK, vehicles)
}

// GetVehicleByID retrieves a vehicle by its ID.
// @Summary Get a vehicle by ID
// @Description Retrieve a vehicle by its unique identifier.
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} response.Data[dto.VehicleResponse] "Vehicle details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vehicles/{id} [get]
func (handler *Handler) GetVehicleByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehicleByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	vehicle, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vehicle by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicle retrieved successfully")

	response.WithJSON(w, http.StatusOK, vehicle)
}

// UpdateVehicle updates an existing vehicle by its ID.
// @Summary Update a vehicle by ID
// @Description Update the details of an existing vehicle.
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param request body dto.UpdateVehicleRequest true "Update Vehicle Request"
// @Success 200 {object} response.Message "Vehicle updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vehicles/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateVehicle")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateVehicleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update vehicle")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Vehicle updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Vehicle updated successfully")
}

// UploadVehicleImage uploads an image for a vehicle.
// @Summary Upload a vehicle image
// @Description Upload an image file for the given vehicle and append it to its gallery.
// @Tags Vehicle
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param file formData file true "Image file"
// @Success 200 {object} response.Data[string] "Public URL of the uploaded image"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vehicles/{id}/image [post]
// @Security BearerAuth
func (handler *Handler) UploadVehicleImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadVehicleImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read image file")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	url, err := handler.service.UploadImage(ctx, id, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload vehicle image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Vehicle image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, url)
}

// DeleteVehicle deletes a vehicle by its ID.
// @Summary Delete a vehicle by ID
// @Description Delete a vehicle using its unique identifier. Vehicles with open bookings cannot be deleted.
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} response.Message "Vehicle deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vehicles/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteVehicle")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete vehicle")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Vehicle deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Vehicle deleted successfully")
}
