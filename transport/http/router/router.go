package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"oberoy/internal/handlers/addon"
	"oberoy/internal/handlers/booking"
	"oberoy/internal/handlers/contact"
	"oberoy/internal/handlers/roomtype"
	"oberoy/shared/constant"
	"oberoy/transport/http/response"
)

type DomainHandlers struct {
	RoomType roomtype.Handler
	Addon    addon.Handler
	Booking  booking.Handler
	Contact  contact.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithErrorMessage(w, http.StatusNotFound, constant.ResponseErrorNotFound)
	})

	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithErrorMessage(w, http.StatusMethodNotAllowed, constant.ResponseErrorMethodNotAllowed)
	})

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.RoomType.Router(routerGroup)
		r.DomainHandlers.Addon.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
