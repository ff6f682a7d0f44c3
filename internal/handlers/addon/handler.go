package addon

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"oberoy/infras/otel"
	"oberoy/internal/domains/addon/service"
	"oberoy/shared/constant"
	gDto "oberoy/shared/dto"
	"oberoy/transport/http/response"
)

type Handler struct {
	service service.Addon
	otel    otel.Otel
}

func New(service service.Addon, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/addons", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAddons)
	})
}

// GetAddons retrieves the active addon catalog.
// @Summary Get all addons
// @Description Retrieve active addons with pagination.
// @Tags Addon
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Envelope "List of addons"
// @Failure 500 {object} response.Envelope
// @Router /api/addons [get]
func (handler *Handler) GetAddons(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAddons")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request)

	res, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get addons")

		response.WithError(writer, err)

		return
	}

	response.WithCount(writer, http.StatusOK, res.Addons, res.Total)
}
