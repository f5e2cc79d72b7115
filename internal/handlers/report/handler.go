package report

import (
	"net/http"

	"github.com/TomaszChromy/vehicle-rental-platform/infras/otel"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/report/model/dto"
	"github.com/TomaszChromy/vehicle-rental-platform/internal/domains/report/service"
	"github.com/TomaszChromy/vehicle-rental-platform/shared"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/constant"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/validator"
	"github.com/TomaszChromy/vehicle-rental-platform/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetReport)
	})
}

// GetReport assembles the admin dashboard report.
// @Summary Get the admin report
// @Description Retrieve booking, revenue and client aggregates for the requested date range. Defaults to the last twelve months.
// @Tags Report
// @Accept json
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param limit query integer false "Number of top clients to include"
// @Success 200 {object} response.Data[dto.ReportResponse] "Report"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports [get]
// @Security BearerAuth
func (handler *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReport")
	defer scope.End()

	query := dto.ReportQuery{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	if limit := r.URL.Query().Get(constant.RequestParamLimit); limit != "" {
		if l, err := shared.ConvertStringToInt(limit); err == nil {
			query.Limit = l
		}
	}

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate report query")

		response.WithError(w, err)

		return
	}

	report, err := handler.service.Get(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Report retrieved successfully")

	response.WithJSON(w, http.StatusOK, report)
}
