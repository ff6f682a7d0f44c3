package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"oberoy/config"
	"oberoy/infras/otel/mocks"
	addonMocks "oberoy/internal/domains/addon/mocks"
	"oberoy/internal/domains/addon/model"
	"oberoy/internal/domains/addon/service"
	cacheMocks "oberoy/shared/cache/mocks"
	gDto "oberoy/shared/dto"
	"oberoy/shared/failure"
)

func TestAddonService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := addonMocks.NewMockAddon(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	t.Run("successful get all", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Addon{
				{ID: 1, Name: "Airport Transfer", Price: 250, Unit: "per trip", IsActive: true},
				{ID: 2, Name: "Breakfast", Price: 75, Unit: "per person per day", IsActive: true},
			}, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		assert.Len(t, res.Addons, 2)
		assert.Equal(t, "Airport Transfer", res.Addons[0].Name)
	})

	t.Run("repository error", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10})

		assert.Error(t, err)
	})
}

func TestAddonService_GetActiveByIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := addonMocks.NewMockAddon(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	t.Run("resolves all requested addons", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Addon{
				{ID: 1, Name: "Airport Transfer", Price: 250, IsActive: true},
				{ID: 2, Name: "Breakfast", Price: 75, IsActive: true},
			}, nil)

		res, err := svc.GetActiveByIDs(context.Background(), []int64{1, 2})

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, float64(250), res[1].Price)
	})

	t.Run("empty ids resolve to an empty map without a query", func(t *testing.T) {
		res, err := svc.GetActiveByIDs(context.Background(), nil)

		assert.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("missing addon fails the whole lookup", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Addon{
				{ID: 1, Name: "Airport Transfer", Price: 250, IsActive: true},
			}, nil)

		_, err := svc.GetActiveByIDs(context.Background(), []int64{1, 3})

		assert.EqualError(t, err, "Addon with ID 3 not found or is inactive")
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
