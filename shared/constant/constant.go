package constant

import (
	"time"
)

const (
	RequestParamOffset = "offset"
	RequestParamLimit  = "limit"

	RequestParamID         = "id"
	RequestParamPNR        = "pnr"
	RequestParamCheckIn    = "check_in"
	RequestParamCheckOut   = "check_out"
	RequestParamAdults     = "adults"
	RequestParamChildren   = "children"
	RequestParamRoomTypeID = "room_type_id"
)

const (
	DefaultValueOffset = 0
	DefaultValueLimit  = 10
	MaxValueLimit      = 100
)

const (
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"

	BookingSourceWebsite = "website"
)

const (
	DateFormat      = "2006-01-02"
	TimestampFormat = time.RFC3339
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorNotFound             = "Not found"
	ResponseErrorInternal             = "Internal server error"
	ResponseErrorMethodNotAllowed     = "Method not allowed"
	ResponseErrorRequestLimitExceeded = "Request limit exceeded"
	ResponseErrorPrepareShutdown      = "Server is preparing to shut down"
	ResponseErrorUnhealthy            = "Server is unhealthy"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingUpdated   = "booking.updated"
	EventBookingCancelled = "booking.cancelled"
	EventContactSubmitted = "contact.submitted"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
