package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"oberoy/config"
	"oberoy/infras/otel"
	"oberoy/internal/domains/roomtype/model"
	"oberoy/internal/domains/roomtype/model/dto"
	"oberoy/internal/domains/roomtype/repository"
	"oberoy/shared"
	"oberoy/shared/cache"
	"oberoy/shared/constant"
	gDto "oberoy/shared/dto"
	"oberoy/shared/failure"
	"oberoy/shared/timezone"
)

const (
	cacheGetRoomType     = "room_type:get"
	cacheGetAllRoomTypes = "room_type:gets"
	cacheRoomTypeImages  = "room_type:images"
)

type RoomType interface {
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetRoomTypesResponse, error)
	Get(ctx context.Context, id int64) (dto.RoomTypeResponse, error)
	GetImages(ctx context.Context, roomTypeID int64) ([]dto.RoomTypeImageResponse, error)
	CheckAvailability(ctx context.Context, query dto.AvailabilityQuery) ([]dto.RoomTypeResponse, error)
	GetPricing(ctx context.Context, query dto.PricingQuery) (dto.PricingResponse, error)
}

type serviceImpl struct {
	repo      repository.RoomType
	imageRepo repository.RoomTypeImage
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.RoomType, imageRepo repository.RoomTypeImage, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) RoomType {
	return &serviceImpl{
		repo:      repo,
		imageRepo: imageRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// notDeleted excludes soft-deleted room types from every read path.
func notDeleted() gDto.Filter {
	return gDto.Filter{
		Field:    model.FieldIsDeleted,
		Operator: gDto.FilterOperatorEq,
		Value:    false,
		Table:    model.TableName,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetRoomTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params.SortBy = model.FieldID
	params.SortDir = gDto.SortDirAsc

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{notDeleted()},
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoomTypes, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room types")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room types")

		return res, fmt.Errorf("failed to count room types: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	res.FromModels(models, total)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room types to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoomType, fmt.Sprintf("%d", id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room type")

		return res, nil
	}

	roomType, err := s.fetch(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(roomType)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room type to cache")
		}
	}()

	return res, nil
}

// fetch loads a room type by id, honoring the soft-delete flag.
func (s *serviceImpl) fetch(ctx context.Context, id int64) (model.RoomType, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.TableName,
			},
			notDeleted(),
		},
	}

	roomType, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get room type")

		return roomType, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == 0 {
		return roomType, failure.NotFound(fmt.Sprintf("Room type with ID %d not found", id)) //nolint:wrapcheck
	}

	return roomType, nil
}

func (s *serviceImpl) GetImages(ctx context.Context, roomTypeID int64) (res []dto.RoomTypeImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetImages")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.fetch(ctx, roomTypeID); err != nil {
		return nil, err
	}

	cacheKey := shared.BuildCacheKey(cacheRoomTypeImages, fmt.Sprintf("%d", roomTypeID))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room type images")

		return res, nil
	}

	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s, %s", model.ImageFieldDisplayOrder, model.ImageFieldID),
		SortDir: gDto.SortDirAsc,
	}

	images, err := s.imageRepo.GetAll(ctx, params, shared.FilterByID(roomTypeID, model.ImageFieldRoomTypeID, model.ImageTableName))
	if err != nil {
		log.Error().Err(err).Int64("roomTypeID", roomTypeID).Msg("failed to get room type images")

		return nil, fmt.Errorf("failed to get room type images: %w", err)
	}

	res = make([]dto.RoomTypeImageResponse, len(images))
	for i, image := range images {
		res[i].FromModel(image)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room type images to cache")
		}
	}()

	return res, nil
}

// validateStayQuery enforces the shared date and party rules for availability
// and pricing lookups.
func validateStayQuery(checkIn, checkOut string, adults, children int) error {
	if checkIn == "" || checkOut == "" {
		return failure.BadRequestFromString("Check-in and check-out dates are required") //nolint:wrapcheck
	}

	checkInDate, err := timezone.Parse(constant.DateFormat, checkIn)
	if err != nil {
		return failure.BadRequestFromString("Invalid date format. Please use YYYY-MM-DD format") //nolint:wrapcheck
	}

	checkOutDate, err := timezone.Parse(constant.DateFormat, checkOut)
	if err != nil {
		return failure.BadRequestFromString("Invalid date format. Please use YYYY-MM-DD format") //nolint:wrapcheck
	}

	if !checkOutDate.After(checkInDate) {
		return failure.BadRequestFromString("Check-out date must be after check-in date") //nolint:wrapcheck
	}

	if adults < 1 {
		return failure.BadRequestFromString("At least 1 adult is required") //nolint:wrapcheck
	}

	if children < 0 {
		return failure.BadRequestFromString("Children count cannot be negative") //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, query dto.AvailabilityQuery) (res []dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validateStayQuery(query.CheckIn, query.CheckOut, query.Adults, query.Children); err != nil {
		return nil, err
	}

	checkInDate, _ := timezone.Parse(constant.DateFormat, query.CheckIn)

	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.GetLocation())

	if checkInDate.Before(today) {
		return nil, failure.BadRequestFromString("Check-in date cannot be in the past") //nolint:wrapcheck
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldBasePrice,
		SortDir: gDto.SortDirAsc,
	}

	// Capacity filter only; existing bookings are intentionally not consulted.
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			notDeleted(),
			gDto.Filter{
				Field:    model.FieldMaxAdults,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    query.Adults,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldMaxChildren,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    query.Children,
				Table:    model.TableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check availability")

		return nil, fmt.Errorf("failed to check availability: %w", err)
	}

	res = make([]dto.RoomTypeResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) GetPricing(ctx context.Context, query dto.PricingQuery) (res dto.PricingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPricing")
	defer scope.End()
	defer scope.TraceIfError(err)

	if query.RoomTypeID == 0 {
		return res, failure.BadRequestFromString("Room type ID, check-in, and check-out dates are required") //nolint:wrapcheck
	}

	if err = validateStayQuery(query.CheckIn, query.CheckOut, query.Adults, query.Children); err != nil {
		return res, err
	}

	roomType, err := s.fetch(ctx, query.RoomTypeID)
	if err != nil {
		return res, err
	}

	// Placeholder for dynamic pricing: the quote is the base price regardless
	// of stay length or occupancy.
	res.BasePrice = roomType.BasePrice
	res.TotalPrice = roomType.BasePrice

	return res, nil
}
