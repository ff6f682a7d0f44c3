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
	roomtypeMocks "oberoy/internal/domains/roomtype/mocks"
	"oberoy/internal/domains/roomtype/model"
	"oberoy/internal/domains/roomtype/model/dto"
	"oberoy/internal/domains/roomtype/service"
	cacheMocks "oberoy/shared/cache/mocks"
	"oberoy/shared/constant"
	gDto "oberoy/shared/dto"
	"oberoy/shared/failure"
	"oberoy/shared/timezone"
)

func newRoomTypeService(ctrl *gomock.Controller) (service.RoomType, *roomtypeMocks.MockRoomType, *roomtypeMocks.MockRoomTypeImage, *cacheMocks.MockRedisCache) {
	mockRepo := roomtypeMocks.NewMockRoomType(ctrl)
	mockImageRepo := roomtypeMocks.NewMockRoomTypeImage(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Cache writes happen on background goroutines.
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, mockImageRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockImageRepo, mockCache
}

func futureDate(days int) string {
	return timezone.Now().AddDate(0, 0, days).Format(constant.DateFormat)
}

func TestRoomTypeService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache := newRoomTypeService(ctrl)

	t.Run("successful get all", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.RoomType{
				{ID: 1, Name: "Deluxe Room", BasePrice: 150, MaxAdults: 2},
				{ID: 2, Name: "Family Suite", BasePrice: 300, MaxAdults: 4},
			}, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		assert.Len(t, res.RoomTypes, 2)
	})

	t.Run("count error", func(t *testing.T) {
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

func TestRoomTypeService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache := newRoomTypeService(ctrl)

	t.Run("successful get", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{ID: 1, Name: "Deluxe Room", BasePrice: 150}, nil)

		res, err := svc.Get(context.Background(), 1)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "Deluxe Room", res.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{}, nil)

		_, err := svc.Get(context.Background(), 99)

		assert.EqualError(t, err, "Room type with ID 99 not found")
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res := value.(*dto.RoomTypeResponse)
				res.ID = 1
				res.Name = "Deluxe Room"

				return nil
			})

		res, err := svc.Get(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "Deluxe Room", res.Name)
	})
}

func TestRoomTypeService_GetImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockImageRepo, mockCache := newRoomTypeService(ctrl)

	t.Run("successful get images", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{ID: 1, Name: "Deluxe Room"}, nil)
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockImageRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.RoomTypeImage{
				{ID: 1, RoomTypeID: 1, ImageURL: "https://example.com/a.jpg", DisplayOrder: 1},
				{ID: 2, RoomTypeID: 1, ImageURL: "https://example.com/b.jpg", DisplayOrder: 2},
			}, nil)

		res, err := svc.GetImages(context.Background(), 1)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Len(t, res, 2)
	})

	t.Run("unknown room type", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{}, nil)

		_, err := svc.GetImages(context.Background(), 99)

		assert.True(t, failure.IsNotFound(err))
	})
}

func TestRoomTypeService_CheckAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newRoomTypeService(ctrl)

	t.Run("returns capacity matches ordered by price", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.RoomType, error) {
				assert.Equal(t, model.FieldBasePrice, params.SortBy)
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)

				return []model.RoomType{
					{ID: 1, Name: "Deluxe Room", BasePrice: 150, MaxAdults: 2},
				}, nil
			})

		res, err := svc.CheckAvailability(context.Background(), dto.AvailabilityQuery{
			CheckIn:  futureDate(1),
			CheckOut: futureDate(3),
			Adults:   2,
		})

		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})

	tests := []struct {
		name    string
		query   dto.AvailabilityQuery
		wantErr string
	}{
		{
			name:    "missing dates",
			query:   dto.AvailabilityQuery{Adults: 1},
			wantErr: "Check-in and check-out dates are required",
		},
		{
			name: "invalid date format",
			query: dto.AvailabilityQuery{
				CheckIn:  "01-09-2026",
				CheckOut: futureDate(3),
				Adults:   1,
			},
			wantErr: "Invalid date format. Please use YYYY-MM-DD format",
		},
		{
			name: "check-out not after check-in",
			query: dto.AvailabilityQuery{
				CheckIn:  futureDate(3),
				CheckOut: futureDate(3),
				Adults:   1,
			},
			wantErr: "Check-out date must be after check-in date",
		},
		{
			name: "no adults",
			query: dto.AvailabilityQuery{
				CheckIn:  futureDate(1),
				CheckOut: futureDate(3),
				Adults:   0,
			},
			wantErr: "At least 1 adult is required",
		},
		{
			name: "negative children",
			query: dto.AvailabilityQuery{
				CheckIn:  futureDate(1),
				CheckOut: futureDate(3),
				Adults:   1,
				Children: -1,
			},
			wantErr: "Children count cannot be negative",
		},
		{
			name: "check-in in the past",
			query: dto.AvailabilityQuery{
				CheckIn:  futureDate(-1),
				CheckOut: futureDate(3),
				Adults:   1,
			},
			wantErr: "Check-in date cannot be in the past",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CheckAvailability(context.Background(), tt.query)

			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestRoomTypeService_GetPricing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newRoomTypeService(ctrl)

	t.Run("quote equals the base price", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{ID: 1, Name: "Deluxe Room", BasePrice: 150}, nil)

		res, err := svc.GetPricing(context.Background(), dto.PricingQuery{
			RoomTypeID: 1,
			CheckIn:    futureDate(1),
			CheckOut:   futureDate(3),
			Adults:     2,
		})

		assert.NoError(t, err)
		assert.Equal(t, float64(150), res.BasePrice)
		assert.Equal(t, float64(150), res.TotalPrice)
	})

	t.Run("missing room type id", func(t *testing.T) {
		_, err := svc.GetPricing(context.Background(), dto.PricingQuery{
			CheckIn:  futureDate(1),
			CheckOut: futureDate(3),
			Adults:   1,
		})

		assert.EqualError(t, err, "Room type ID, check-in, and check-out dates are required")
	})

	t.Run("unknown room type", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{}, nil)

		_, err := svc.GetPricing(context.Background(), dto.PricingQuery{
			RoomTypeID: 99,
			CheckIn:    futureDate(1),
			CheckOut:   futureDate(3),
			Adults:     1,
		})

		assert.True(t, failure.IsNotFound(err))
	})
}
