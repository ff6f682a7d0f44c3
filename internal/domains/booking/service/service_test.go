package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"oberoy/config"
	kafkaMocks "oberoy/infras/kafka/mocks"
	"oberoy/infras/otel/mocks"
	addonModel "oberoy/internal/domains/addon/model"
	addonServiceMocks "oberoy/internal/domains/addon/service/mocks"
	bookingMocks "oberoy/internal/domains/booking/mocks"
	"oberoy/internal/domains/booking/model"
	"oberoy/internal/domains/booking/model/dto"
	"oberoy/internal/domains/booking/service"
	guestDto "oberoy/internal/domains/guest/model/dto"
	guestServiceMocks "oberoy/internal/domains/guest/service/mocks"
	roomtypeMocks "oberoy/internal/domains/roomtype/mocks"
	roomtypeModel "oberoy/internal/domains/roomtype/model"
	cacheMocks "oberoy/shared/cache/mocks"
	"oberoy/shared/constant"
	"oberoy/shared/failure"
	"oberoy/shared/timezone"
)

type bookingMockSet struct {
	repo     *bookingMocks.MockBooking
	roomType *roomtypeMocks.MockRoomType
	guests   *guestServiceMocks.MockGuest
	addons   *addonServiceMocks.MockAddon
	cache    *cacheMocks.MockRedisCache
	kafka    *kafkaMocks.MockClient
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingMockSet) {
	m := bookingMockSet{
		repo:     bookingMocks.NewMockBooking(ctrl),
		roomType: roomtypeMocks.NewMockRoomType(ctrl),
		guests:   guestServiceMocks.NewMockGuest(ctrl),
		addons:   addonServiceMocks.NewMockAddon(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topic.BookingEvents = "booking-events"

	// Events and cache writes happen on background goroutines, so their
	// expectations cannot be counted deterministically.
	m.kafka.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	m.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(m.repo, m.roomType, m.guests, m.addons, cfg, m.cache, m.kafka, mocks.NewOtel())

	return svc, m
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		Guest: guestDto.GuestRequest{
			Name: "John Doe",
		},
		Booking: dto.BookingRequest{
			RoomTypeID:   2,
			CheckInDate:  "2026-09-10",
			CheckOutDate: "2026-09-12",
			Adults:       2,
			TotalRooms:   2,
		},
		Addons: []dto.BookingAddonRequest{
			{AddonID: 5, Quantity: 2},
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	t.Run("successful creation computes totals", func(t *testing.T) {
		m.repo.EXPECT().PNRExists(gomock.Any(), gomock.Any()).Return(false, nil)
		m.guests.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(int64(7), nil)
		m.roomType.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomtypeModel.RoomType{ID: 2, BasePrice: 100}, nil)
		m.addons.EXPECT().
			GetActiveByIDs(gomock.Any(), []int64{5}).
			Return(map[int64]addonModel.Addon{5: {ID: 5, Price: 50}}, nil)
		m.repo.EXPECT().
			CreateWithAddons(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking, addons []model.BookingAddon) (int64, error) {
				assert.Equal(t, int64(7), booking.GuestID)
				assert.Equal(t, float64(100), booking.RoomPrice)
				// 100 x 2 rooms + 50 x 2 addon units
				assert.Equal(t, float64(300), booking.TotalAmount)
				assert.Equal(t, constant.BookingStatusConfirmed, booking.BookingStatus)
				assert.Equal(t, constant.BookingSourceWebsite, booking.BookingSource)
				assert.Len(t, addons, 1)
				assert.Equal(t, float64(100), addons[0].TotalPrice)

				return int64(42), nil
			})

		res, err := svc.Create(context.Background(), validCreateRequest())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), res.BookingID)
		assert.Len(t, res.PNR, 6)
	})

	t.Run("regenerates on PNR collision", func(t *testing.T) {
		gomock.InOrder(
			m.repo.EXPECT().PNRExists(gomock.Any(), gomock.Any()).Return(true, nil),
			m.repo.EXPECT().PNRExists(gomock.Any(), gomock.Any()).Return(false, nil),
		)
		m.guests.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(int64(7), nil)
		m.roomType.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomtypeModel.RoomType{ID: 2, BasePrice: 100}, nil)
		m.addons.EXPECT().
			GetActiveByIDs(gomock.Any(), gomock.Any()).
			Return(map[int64]addonModel.Addon{5: {ID: 5, Price: 50}}, nil)
		m.repo.EXPECT().
			CreateWithAddons(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(43), nil)

		_, err := svc.Create(context.Background(), validCreateRequest())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("missing guest name", func(t *testing.T) {
		req := validCreateRequest()
		req.Guest.Name = ""

		_, err := svc.Create(context.Background(), req)

		assert.EqualError(t, err, "Guest name is required")
	})

	t.Run("missing booking information", func(t *testing.T) {
		req := validCreateRequest()
		req.Booking.RoomTypeID = 0

		_, err := svc.Create(context.Background(), req)

		assert.EqualError(t, err, "Missing required booking information")
	})

	t.Run("invalid date format", func(t *testing.T) {
		req := validCreateRequest()
		req.Booking.CheckInDate = "10/09/2026"

		_, err := svc.Create(context.Background(), req)

		assert.EqualError(t, err, "Invalid date format. Please use YYYY-MM-DD format")
	})

	t.Run("check-out not after check-in", func(t *testing.T) {
		req := validCreateRequest()
		req.Booking.CheckOutDate = req.Booking.CheckInDate

		_, err := svc.Create(context.Background(), req)

		assert.EqualError(t, err, "Check-out date must be after check-in date")
	})

	t.Run("room type not found", func(t *testing.T) {
		m.repo.EXPECT().PNRExists(gomock.Any(), gomock.Any()).Return(false, nil)
		m.guests.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(int64(7), nil)
		m.roomType.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomtypeModel.RoomType{}, nil)

		_, err := svc.Create(context.Background(), validCreateRequest())

		assert.EqualError(t, err, "Room type with ID 2 not found")
	})

	t.Run("inactive addon aborts the booking", func(t *testing.T) {
		m.repo.EXPECT().PNRExists(gomock.Any(), gomock.Any()).Return(false, nil)
		m.guests.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(int64(7), nil)
		m.roomType.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomtypeModel.RoomType{ID: 2, BasePrice: 100}, nil)
		m.addons.EXPECT().
			GetActiveByIDs(gomock.Any(), gomock.Any()).
			Return(nil, failure.BadRequestFromString("Addon with ID 5 not found or is inactive"))

		_, err := svc.Create(context.Background(), validCreateRequest())

		assert.EqualError(t, err, "Addon with ID 5 not found or is inactive")
	})
}

func TestBookingService_GetByPNR(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	detail := model.BookingDetail{
		Booking: model.Booking{
			ID:            9,
			PNR:           "ABC123",
			GuestID:       7,
			RoomTypeID:    2,
			CheckInDate:   timezone.Now(),
			CheckOutDate:  timezone.Now().Add(48 * time.Hour),
			Adults:        2,
			TotalRooms:    1,
			RoomPrice:     100,
			TotalAmount:   100,
			BookingStatus: constant.BookingStatusConfirmed,
			BookingSource: constant.BookingSourceWebsite,
		},
		GuestName:    "John Doe",
		RoomTypeName: "Deluxe Room",
	}

	t.Run("successful get", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		m.repo.EXPECT().GetDetailByPNR(gomock.Any(), "ABC123").Return(detail, nil)
		m.repo.EXPECT().
			GetAddonDetails(gomock.Any(), int64(9)).
			Return([]model.BookingAddonDetail{}, nil)

		res, err := svc.GetByPNR(context.Background(), "ABC123")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "ABC123", res.PNR)
		assert.Equal(t, "John Doe", res.Guest.Name)
	})

	t.Run("not found", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		m.repo.EXPECT().
			GetDetailByPNR(gomock.Any(), "ZZZZZZ").
			Return(model.BookingDetail{}, nil)

		_, err := svc.GetByPNR(context.Background(), "ZZZZZZ")

		assert.EqualError(t, err, "No booking found with PNR ZZZZZZ")
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res := value.(*dto.BookingDetailResponse)
				res.PNR = "ABC123"

				return nil
			})

		res, err := svc.GetByPNR(context.Background(), "ABC123")

		assert.NoError(t, err)
		assert.Equal(t, "ABC123", res.PNR)
	})
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	detail := model.BookingDetail{
		Booking: model.Booking{
			ID:            9,
			PNR:           "ABC123",
			BookingStatus: constant.BookingStatusConfirmed,
		},
	}

	t.Run("empty patch is rejected", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "ABC123", dto.UpdateBookingRequest{})

		assert.EqualError(t, err, "No valid fields to update")
	})

	t.Run("not found", func(t *testing.T) {
		notes := "late arrival"

		m.repo.EXPECT().
			GetDetailByPNR(gomock.Any(), "ZZZZZZ").
			Return(model.BookingDetail{}, nil)

		_, err := svc.Update(context.Background(), "ZZZZZZ", dto.UpdateBookingRequest{SpecialRequests: &notes})

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("successful update returns the fresh detail", func(t *testing.T) {
		notes := "late arrival"

		m.repo.EXPECT().GetDetailByPNR(gomock.Any(), "ABC123").Return(detail, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, patch map[string]any, _ interface{}) error {
				assert.Equal(t, notes, patch[model.FieldSpecialRequests])
				assert.Contains(t, patch, constant.FieldUpdatedAt)

				return nil
			})

		// The reread after the write.
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		m.repo.EXPECT().GetDetailByPNR(gomock.Any(), "ABC123").Return(detail, nil)
		m.repo.EXPECT().
			GetAddonDetails(gomock.Any(), int64(9)).
			Return([]model.BookingAddonDetail{}, nil)

		res, err := svc.Update(context.Background(), "ABC123", dto.UpdateBookingRequest{SpecialRequests: &notes})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "ABC123", res.PNR)
	})
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	t.Run("successful cancel", func(t *testing.T) {
		m.repo.EXPECT().PNRExists(gomock.Any(), "ABC123").Return(true, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, patch map[string]any, _ interface{}) error {
				assert.Equal(t, constant.BookingStatusCancelled, patch[model.FieldBookingStatus])

				return nil
			})

		res, err := svc.Cancel(context.Background(), "ABC123")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, constant.BookingStatusCancelled, res.BookingStatus)
	})

	t.Run("cancel is idempotent for already cancelled bookings", func(t *testing.T) {
		m.repo.EXPECT().PNRExists(gomock.Any(), "ABC123").Return(true, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Cancel(context.Background(), "ABC123")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		m.repo.EXPECT().PNRExists(gomock.Any(), "ZZZZZZ").Return(false, nil)

		_, err := svc.Cancel(context.Background(), "ZZZZZZ")

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("existence check error", func(t *testing.T) {
		m.repo.EXPECT().
			PNRExists(gomock.Any(), "ABC123").
			Return(false, errors.New("database error"))

		_, err := svc.Cancel(context.Background(), "ABC123")

		assert.Error(t, err)
	})
}
