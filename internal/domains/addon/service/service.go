package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"oberoy/config"
	"oberoy/infras/otel"
	"oberoy/internal/domains/addon/model"
	"oberoy/internal/domains/addon/model/dto"
	"oberoy/internal/domains/addon/repository"
	"oberoy/shared"
	"oberoy/shared/cache"
	"oberoy/shared/constant"
	gDto "oberoy/shared/dto"
	"oberoy/shared/failure"
)

const (
	cacheGetAllAddons = "addon:gets"
)

type Addon interface {
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetAddonsResponse, error)
	GetActiveByIDs(ctx context.Context, ids []int64) (map[int64]model.Addon, error)
}

type serviceImpl struct {
	repo  repository.Addon
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Addon, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Addon {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func activeOnly() gDto.Filter {
	return gDto.Filter{
		Field:    model.FieldIsActive,
		Operator: gDto.FilterOperatorEq,
		Value:    true,
		Table:    model.TableName,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetAddonsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params.SortBy = model.FieldID
	params.SortDir = gDto.SortDirAsc

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{activeOnly()},
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAddons, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for addons")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count addons")

		return res, fmt.Errorf("failed to count addons: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get addons")

		return res, fmt.Errorf("failed to get addons: %w", err)
	}

	res.FromModels(models, total)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save addons to cache")
		}
	}()

	return res, nil
}

// GetActiveByIDs resolves every referenced addon against the active set. The
// first id with no active row fails the whole lookup so callers never price a
// partial selection.
func (s *serviceImpl) GetActiveByIDs(ctx context.Context, ids []int64) (res map[int64]model.Addon, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActiveByIDs")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(ids) == 0 {
		return map[int64]model.Addon{}, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    ids,
				Table:    model.TableName,
			},
			activeOnly(),
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get addons by ids")

		return nil, fmt.Errorf("failed to get addons by ids: %w", err)
	}

	res = make(map[int64]model.Addon, len(models))
	for _, mod := range models {
		res[mod.ID] = mod
	}

	for _, id := range ids {
		if _, ok := res[id]; !ok {
			return nil, failure.BadRequestFromString(fmt.Sprintf("Addon with ID %d not found or is inactive", id)) //nolint:wrapcheck
		}
	}

	return res, nil
}
