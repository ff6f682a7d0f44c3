package roomtype

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"oberoy/infras/otel"
	"oberoy/internal/domains/roomtype/model/dto"
	"oberoy/internal/domains/roomtype/service"
	"oberoy/shared/constant"
	gDto "oberoy/shared/dto"
	"oberoy/shared/failure"
	"oberoy/transport/http/response"
)

type Handler struct {
	service service.RoomType
	otel    otel.Otel
}

func New(service service.RoomType, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/room-types", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRoomTypes)
		routerGroup.Get("/availability", handler.CheckAvailability)
		routerGroup.Get("/pricing", handler.GetPricing)
		routerGroup.Get("/{id}", handler.GetRoomTypeByID)
		routerGroup.Get("/{id}/images", handler.GetRoomTypeImages)
	})
}

// GetRoomTypes retrieves the room type catalog.
// @Summary Get all room types
// @Description Retrieve room types with pagination.
// @Tags RoomType
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Envelope "List of room types"
// @Failure 500 {object} response.Envelope
// @Router /api/room-types [get]
func (handler *Handler) GetRoomTypes(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request)

	res, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		response.WithError(writer, err)

		return
	}

	response.WithCount(writer, http.StatusOK, res.RoomTypes, res.Total)
}

// GetRoomTypeByID retrieves one room type.
// @Summary Get a room type
// @Description Retrieve a single room type by its id.
// @Tags RoomType
// @Accept json
// @Produce json
// @Param id path integer true "Room type ID"
// @Success 200 {object} response.Envelope "Room type"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/room-types/{id} [get]
func (handler *Handler) GetRoomTypeByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypeByID")
	defer scope.End()

	id, err := parseID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get room type")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRoomTypeImages retrieves the ordered image list of a room type.
// @Summary Get room type images
// @Description Retrieve the images of a room type ordered by display order.
// @Tags RoomType
// @Accept json
// @Produce json
// @Param id path integer true "Room type ID"
// @Success 200 {object} response.Envelope "List of images"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/room-types/{id}/images [get]
func (handler *Handler) GetRoomTypeImages(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypeImages")
	defer scope.End()

	id, err := parseID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.GetImages(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get room type images")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CheckAvailability lists room types whose capacity fits the party.
// @Summary Check availability
// @Description List candidate room types by party capacity, cheapest first.
// @Tags RoomType
// @Accept json
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param adults query integer false "Number of adults"
// @Param children query integer false "Number of children"
// @Success 200 {object} response.Envelope "Candidate room types"
// @Failure 400 {object} response.Envelope
// @Router /api/room-types/availability [get]
func (handler *Handler) CheckAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	query := dto.AvailabilityQuery{}
	query.FromRequest(request)

	res, err := handler.service.CheckAvailability(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetPricing quotes the price of a stay.
// @Summary Get room pricing
// @Description Quote the price of a stay for a room type.
// @Tags RoomType
// @Accept json
// @Produce json
// @Param room_type_id query integer true "Room type ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param adults query integer false "Number of adults"
// @Param children query integer false "Number of children"
// @Success 200 {object} response.Envelope "Price quote"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/room-types/pricing [get]
func (handler *Handler) GetPricing(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPricing")
	defer scope.End()

	query := dto.PricingQuery{}
	query.FromRequest(request)

	res, err := handler.service.GetPricing(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pricing")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func parseID(request *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("Invalid room type ID") //nolint:wrapcheck
	}

	return id, nil
}
