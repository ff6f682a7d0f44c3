//go:build wireinject
// +build wireinject

package di

import (
	"oberoy/config"
	"oberoy/infras/kafka"
	"oberoy/infras/otel"
	"oberoy/infras/postgres"
	"oberoy/infras/redis"
	"oberoy/shared/cache"
	"oberoy/transport/http"
	"oberoy/transport/http/middleware"
	"oberoy/transport/http/router"

	addonRepository "oberoy/internal/domains/addon/repository"
	addonService "oberoy/internal/domains/addon/service"
	bookingRepository "oberoy/internal/domains/booking/repository"
	bookingService "oberoy/internal/domains/booking/service"
	contactRepository "oberoy/internal/domains/contact/repository"
	contactService "oberoy/internal/domains/contact/service"
	guestRepository "oberoy/internal/domains/guest/repository"
	guestService "oberoy/internal/domains/guest/service"
	roomtypeRepository "oberoy/internal/domains/roomtype/repository"
	roomtypeService "oberoy/internal/domains/roomtype/service"

	addonHandler "oberoy/internal/handlers/addon"
	bookingHandler "oberoy/internal/handlers/booking"
	contactHandler "oberoy/internal/handlers/contact"
	roomtypeHandler "oberoy/internal/handlers/roomtype"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomtypeDomain = wire.NewSet(
	roomtypeRepository.New,
	roomtypeRepository.NewImage,
	roomtypeService.New,
)

var addonDomain = wire.NewSet(
	addonRepository.New,
	addonService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var domains = wire.NewSet(
	roomtypeDomain,
	addonDomain,
	guestDomain,
	bookingDomain,
	contactDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomtypeHandler.New,
	addonHandler.New,
	bookingHandler.New,
	contactHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
