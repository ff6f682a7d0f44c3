package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"oberoy/infras/otel"
	"oberoy/internal/domains/contact/model/dto"
	"oberoy/internal/domains/contact/service"
	"oberoy/shared/constant"
	"oberoy/shared/validator"
	"oberoy/transport/http/response"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contact", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SubmitContact)
	})
}

// SubmitContact stores a contact form submission.
// @Summary Submit the contact form
// @Description Store a contact inquiry and acknowledge the sender.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Contact payload"
// @Success 201 {object} response.Envelope "Acknowledgement"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/contact [post]
func (handler *Handler) SubmitContact(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitContact")
	defer scope.End()

	req := dto.ContactRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate contact request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit contact message")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}
