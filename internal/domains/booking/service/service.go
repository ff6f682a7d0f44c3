package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"oberoy/config"
	"oberoy/infras/kafka"
	"oberoy/infras/otel"
	addonService "oberoy/internal/domains/addon/service"
	"oberoy/internal/domains/booking/model"
	"oberoy/internal/domains/booking/model/dto"
	"oberoy/internal/domains/booking/repository"
	guestService "oberoy/internal/domains/guest/service"
	roomtypeModel "oberoy/internal/domains/roomtype/model"
	roomtypeRepo "oberoy/internal/domains/roomtype/repository"
	"oberoy/shared"
	"oberoy/shared/cache"
	"oberoy/shared/constant"
	gDto "oberoy/shared/dto"
	"oberoy/shared/failure"
	sharedModel "oberoy/shared/model"
	"oberoy/shared/timezone"
)

const (
	cacheGetBooking = "booking:get"

	// maxPNRAttempts bounds the regenerate-on-collision loop. With a 36^6
	// code space a handful of retries is already generous.
	maxPNRAttempts = 10
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetByPNR(ctx context.Context, pnr string) (dto.BookingDetailResponse, error)
	Update(ctx context.Context, pnr string, req dto.UpdateBookingRequest) (dto.BookingDetailResponse, error)
	Cancel(ctx context.Context, pnr string) (dto.CancelBookingResponse, error)
}

type bookingEvent struct {
	ID         string `json:"id"`
	Event      string `json:"event"`
	PNR        string `json:"pnr"`
	BookingID  int64  `json:"booking_id,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

type serviceImpl struct {
	repo         repository.Booking
	roomTypeRepo roomtypeRepo.RoomType
	guests       guestService.Guest
	addons       addonService.Addon
	cfg          *config.Config
	cache        cache.RedisCache
	kafka        kafka.Client
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	roomTypeRepo roomtypeRepo.RoomType,
	guests guestService.Guest,
	addons addonService.Addon,
	cfg *config.Config,
	cache cache.RedisCache,
	kafkaClient kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		guests:       guests,
		addons:       addons,
		cfg:          cfg,
		cache:        cache,
		kafka:        kafkaClient,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Guest.Name == "" {
		return res, failure.BadRequestFromString("Guest name is required") //nolint:wrapcheck
	}

	if req.Booking.RoomTypeID == 0 || req.Booking.CheckInDate == "" || req.Booking.CheckOutDate == "" ||
		req.Booking.Adults == 0 || req.Booking.TotalRooms == 0 {
		return res, failure.BadRequestFromString("Missing required booking information") //nolint:wrapcheck
	}

	checkIn, err := timezone.Parse(constant.DateFormat, req.Booking.CheckInDate)
	if err != nil {
		return res, failure.BadRequestFromString("Invalid date format. Please use YYYY-MM-DD format") //nolint:wrapcheck
	}

	checkOut, err := timezone.Parse(constant.DateFormat, req.Booking.CheckOutDate)
	if err != nil {
		return res, failure.BadRequestFromString("Invalid date format. Please use YYYY-MM-DD format") //nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return res, failure.BadRequestFromString("Check-out date must be after check-in date") //nolint:wrapcheck
	}

	pnr, err := s.generateUniquePNR(ctx)
	if err != nil {
		return res, err
	}

	guestID, err := s.guests.Resolve(ctx, req.Guest)
	if err != nil {
		return res, err
	}

	roomType, err := s.fetchRoomType(ctx, req.Booking.RoomTypeID)
	if err != nil {
		return res, err
	}

	addonPrices, err := s.addons.GetActiveByIDs(ctx, addonIDs(req.Addons))
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	roomTotal := roomType.BasePrice * float64(req.Booking.TotalRooms)

	addonLines := make([]model.BookingAddon, len(req.Addons))
	addonTotal := float64(0)

	for i, line := range req.Addons {
		unitPrice := addonPrices[line.AddonID].Price
		lineTotal := unitPrice * float64(line.Quantity)
		addonTotal += lineTotal

		addonLines[i] = model.BookingAddon{
			AddonID:    line.AddonID,
			Quantity:   line.Quantity,
			UnitPrice:  unitPrice,
			TotalPrice: lineTotal,
			AddedAt:    now,
		}
	}

	source := constant.BookingSourceWebsite
	if req.Booking.BookingSource != nil && *req.Booking.BookingSource != "" {
		source = *req.Booking.BookingSource
	}

	booking := model.Booking{
		PNR:             pnr,
		GuestID:         guestID,
		RoomTypeID:      req.Booking.RoomTypeID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Adults:          req.Booking.Adults,
		Children:        req.Booking.Children,
		TotalRooms:      req.Booking.TotalRooms,
		RoomPrice:       roomType.BasePrice,
		TotalAmount:     roomTotal + addonTotal,
		BookingStatus:   constant.BookingStatusConfirmed,
		BookingSource:   source,
		SpecialRequests: req.Booking.SpecialRequests,
		Metadata: sharedModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	bookingID, err := s.repo.CreateWithAddons(ctx, booking, addonLines)
	if err != nil {
		log.Error().Err(err).Str("pnr", pnr).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publishEvent(ctx, constant.EventBookingCreated, pnr, bookingID)

	res.PNR = pnr
	res.BookingID = bookingID

	return res, nil
}

func (s *serviceImpl) GetByPNR(ctx context.Context, pnr string) (res dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByPNR")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, pnr)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	detail, err := s.repo.GetDetailByPNR(ctx, pnr)
	if err != nil {
		log.Error().Err(err).Str("pnr", pnr).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if detail.ID == 0 {
		return res, failure.NotFound(fmt.Sprintf("No booking found with PNR %s", pnr)) //nolint:wrapcheck
	}

	addonLines, err := s.repo.GetAddonDetails(ctx, detail.ID)
	if err != nil {
		log.Error().Err(err).Str("pnr", pnr).Msg("failed to get booking addons")

		return res, fmt.Errorf("failed to get booking addons: %w", err)
	}

	res.FromModel(detail, addonLines)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, pnr string, req dto.UpdateBookingRequest) (res dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	patch := req.ToPatch()
	if len(patch) == 0 {
		return res, failure.BadRequestFromString("No valid fields to update") //nolint:wrapcheck
	}

	detail, err := s.repo.GetDetailByPNR(ctx, pnr)
	if err != nil {
		log.Error().Err(err).Str("pnr", pnr).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if detail.ID == 0 {
		return res, failure.NotFound(fmt.Sprintf("No booking found with PNR %s", pnr)) //nolint:wrapcheck
	}

	patch[constant.FieldUpdatedAt] = timezone.Now()

	if err = s.repo.Update(ctx, patch, matchByPNR(pnr)); err != nil {
		log.Error().Err(err).Str("pnr", pnr).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheGetBooking, pnr))
	s.publishEvent(ctx, constant.EventBookingUpdated, pnr, detail.ID)

	return s.GetByPNR(ctx, pnr)
}

// Cancel flips the booking to cancelled without inspecting the current
// status, so cancelling twice succeeds and stays idempotent.
func (s *serviceImpl) Cancel(ctx context.Context, pnr string) (res dto.CancelBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.PNRExists(ctx, pnr)
	if err != nil {
		log.Error().Err(err).Str("pnr", pnr).Msg("failed to check booking existence")

		return res, fmt.Errorf("failed to check booking existence: %w", err)
	}

	if !exists {
		return res, failure.NotFound(fmt.Sprintf("No booking found with PNR %s", pnr)) //nolint:wrapcheck
	}

	patch := map[string]any{
		model.FieldBookingStatus: constant.BookingStatusCancelled,
		constant.FieldUpdatedAt:  timezone.Now(),
	}

	if err = s.repo.Update(ctx, patch, matchByPNR(pnr)); err != nil {
		log.Error().Err(err).Str("pnr", pnr).Msg("failed to cancel booking")

		return res, fmt.Errorf("failed to cancel booking: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheGetBooking, pnr))
	s.publishEvent(ctx, constant.EventBookingCancelled, pnr, 0)

	res.PNR = pnr
	res.BookingStatus = constant.BookingStatusCancelled

	return res, nil
}

// generateUniquePNR retries generation until the code is absent from the
// store. The existence check and the later insert are not one atomic step;
// the unique index on pnr is the real guard.
func (s *serviceImpl) generateUniquePNR(ctx context.Context) (string, error) {
	for range maxPNRAttempts {
		pnr := model.GeneratePNR()

		exists, err := s.repo.PNRExists(ctx, pnr)
		if err != nil {
			log.Error().Err(err).Msg("failed to check PNR uniqueness")

			return "", fmt.Errorf("failed to check PNR uniqueness: %w", err)
		}

		if !exists {
			return pnr, nil
		}
	}

	return "", failure.InternalError(fmt.Errorf("could not generate a unique PNR after %d attempts", maxPNRAttempts)) //nolint:wrapcheck
}

func (s *serviceImpl) fetchRoomType(ctx context.Context, id int64) (roomtypeModel.RoomType, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    roomtypeModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    roomtypeModel.TableName,
			},
			gDto.Filter{
				Field:    roomtypeModel.FieldIsDeleted,
				Operator: gDto.FilterOperatorEq,
				Value:    false,
				Table:    roomtypeModel.TableName,
			},
		},
	}

	roomType, err := s.roomTypeRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Int64("roomTypeID", id).Msg("failed to get room type")

		return roomType, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == 0 {
		return roomType, failure.BadRequestFromString(fmt.Sprintf("Room type with ID %d not found", id)) //nolint:wrapcheck
	}

	return roomType, nil
}

// publishEvent is fire-and-forget: a broker outage never fails the request.
func (s *serviceImpl) publishEvent(ctx context.Context, event, pnr string, bookingID int64) {
	payload := bookingEvent{
		ID:         uuid.NewString(),
		Event:      event,
		PNR:        pnr,
		BookingID:  bookingID,
		OccurredAt: timezone.Format(timezone.Now(), constant.TimestampFormat),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic.BookingEvents, kafka.Message{
			Key:   pnr,
			Value: payload,
		})
		if err != nil {
			log.Error().Err(err).Str("event", event).Str("pnr", pnr).Msg("failed to publish booking event")
		}
	}()
}

func addonIDs(lines []dto.BookingAddonRequest) []int64 {
	ids := make([]int64, len(lines))
	for i, line := range lines {
		ids[i] = line.AddonID
	}

	return ids
}

func matchByPNR(pnr string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPNR,
				Operator: gDto.FilterOperatorEq,
				Value:    pnr,
				Table:    model.TableName,
			},
		},
	}
}
