package booking

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"oberoy/infras/otel"
	"oberoy/internal/domains/booking/model/dto"
	"oberoy/internal/domains/booking/service"
	"oberoy/shared/constant"
	"oberoy/shared/validator"
	"oberoy/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/{pnr}", handler.GetBookingByPNR)
		routerGroup.Patch("/{pnr}", handler.UpdateBooking)
		routerGroup.Delete("/{pnr}", handler.CancelBooking)
	})
}

// CreateBooking creates a booking with its guest and optional addons.
// @Summary Create a booking
// @Description Create a booking, resolving or creating the guest and attaching addons.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking payload"
// @Success 201 {object} response.Envelope "PNR and booking id"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate booking request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created with PNR " + res.PNR)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookingByPNR retrieves a booking with its guest, room type, and addons.
// @Summary Get a booking
// @Description Retrieve the full booking detail by its PNR.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pnr path string true "Booking PNR"
// @Success 200 {object} response.Envelope "Booking detail"
// @Failure 404 {object} response.Envelope
// @Router /api/bookings/{pnr} [get]
func (handler *Handler) GetBookingByPNR(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByPNR")
	defer scope.End()

	res, err := handler.service.GetByPNR(ctx, pnrParam(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateBooking patches the mutable booking fields.
// @Summary Update a booking
// @Description Update the special requests or status of a booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pnr path string true "Booking PNR"
// @Param request body dto.UpdateBookingRequest true "Fields to update"
// @Success 200 {object} response.Envelope "Updated booking detail"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/bookings/{pnr} [patch]
func (handler *Handler) UpdateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate booking update")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, pnrParam(request), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CancelBooking cancels a booking.
// @Summary Cancel a booking
// @Description Set the booking status to cancelled. Idempotent.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pnr path string true "Booking PNR"
// @Success 200 {object} response.Envelope "Cancellation result"
// @Failure 404 {object} response.Envelope
// @Router /api/bookings/{pnr} [delete]
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	res, err := handler.service.Cancel(ctx, pnrParam(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// pnrParam normalizes the PNR path segment; stored codes are uppercase.
func pnrParam(request *http.Request) string {
	return strings.ToUpper(chi.URLParam(request, constant.RequestParamPNR))
}
