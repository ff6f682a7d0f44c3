package dto

import (
	guestDto "oberoy/internal/domains/guest/model/dto"

	"oberoy/internal/domains/booking/model"
	"oberoy/shared/constant"
	"oberoy/shared/timezone"
)

type BookingAddonRequest struct {
	AddonID  int64 `json:"addon_id" validate:"required"`
	Quantity int   `json:"quantity" validate:"required,gte=1"`
}

type BookingRequest struct {
	RoomTypeID      int64   `json:"room_type_id" validate:"required"`
	CheckInDate     string  `json:"check_in_date" validate:"required"`
	CheckOutDate    string  `json:"check_out_date" validate:"required"`
	Adults          int     `json:"adults" validate:"required,gte=1"`
	Children        int     `json:"children" validate:"omitempty,gte=0"`
	TotalRooms      int     `json:"total_rooms" validate:"required,gte=1"`
	BookingSource   *string `json:"booking_source"`
	SpecialRequests *string `json:"special_requests"`
}

type CreateBookingRequest struct {
	Guest   guestDto.GuestRequest `json:"guest" validate:"required"`
	Booking BookingRequest        `json:"booking" validate:"required"`
	Addons  []BookingAddonRequest `json:"addons" validate:"omitempty,dive"`
}

type CreateBookingResponse struct {
	PNR       string `json:"pnr"`
	BookingID int64  `json:"booking_id"`
}

type BookingAddonResponse struct {
	AddonID    int64   `json:"addon_id"`
	Name       string  `json:"name"`
	Unit       string  `json:"unit"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
	AddedAt    string  `json:"added_at"`
}

func (r *BookingAddonResponse) FromModel(model model.BookingAddonDetail) {
	r.AddonID = model.AddonID
	r.Name = model.AddonName
	r.Unit = model.AddonUnit
	r.Quantity = model.Quantity
	r.UnitPrice = model.UnitPrice
	r.TotalPrice = model.TotalPrice
	r.AddedAt = timezone.Format(model.AddedAt, constant.TimestampFormat)
}

type BookingGuestResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

type BookingRoomTypeResponse struct {
	ID           int64   `json:"id"`
	HotelID      int64   `json:"hotel_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	MaxAdults    int     `json:"max_adults"`
	MaxChildren  int     `json:"max_children"`
	BasePrice    float64 `json:"base_price"`
	MainImageURL *string `json:"main_image_url,omitempty"`
}

type BookingDetailResponse struct {
	ID              int64                   `json:"id"`
	PNR             string                  `json:"pnr"`
	CheckInDate     string                  `json:"check_in_date"`
	CheckOutDate    string                  `json:"check_out_date"`
	Adults          int                     `json:"adults"`
	Children        int                     `json:"children"`
	TotalRooms      int                     `json:"total_rooms"`
	RoomPrice       float64                 `json:"room_price"`
	TotalAmount     float64                 `json:"total_amount"`
	BookingStatus   string                  `json:"booking_status"`
	BookingSource   string                  `json:"booking_source"`
	SpecialRequests *string                 `json:"special_requests,omitempty"`
	CreatedAt       string                  `json:"created_at"`
	UpdatedAt       string                  `json:"updated_at"`
	Guest           BookingGuestResponse    `json:"guest"`
	RoomType        BookingRoomTypeResponse `json:"room_type"`
	Addons          []BookingAddonResponse  `json:"addons"`
}

func (r *BookingDetailResponse) FromModel(detail model.BookingDetail, addons []model.BookingAddonDetail) {
	r.ID = detail.ID
	r.PNR = detail.PNR
	r.CheckInDate = detail.CheckInDate.Format(constant.DateFormat)
	r.CheckOutDate = detail.CheckOutDate.Format(constant.DateFormat)
	r.Adults = detail.Adults
	r.Children = detail.Children
	r.TotalRooms = detail.TotalRooms
	r.RoomPrice = detail.RoomPrice
	r.TotalAmount = detail.TotalAmount
	r.BookingStatus = detail.BookingStatus
	r.BookingSource = detail.BookingSource
	r.SpecialRequests = detail.SpecialRequests
	r.CreatedAt = timezone.Format(detail.CreatedAt, constant.TimestampFormat)
	r.UpdatedAt = timezone.Format(detail.UpdatedAt, constant.TimestampFormat)

	r.Guest = BookingGuestResponse{
		ID:    detail.GuestID,
		Name:  detail.GuestName,
		Email: detail.GuestEmail,
		Phone: detail.GuestPhone,
	}

	r.RoomType = BookingRoomTypeResponse{
		ID:           detail.RoomTypeID,
		HotelID:      detail.RoomTypeHotelID,
		Name:         detail.RoomTypeName,
		Description:  detail.RoomTypeDesc,
		MaxAdults:    detail.RoomTypeMaxAdults,
		MaxChildren:  detail.RoomTypeMaxChilds,
		BasePrice:    detail.RoomTypeBasePrice,
		MainImageURL: detail.RoomTypeImageURL,
	}

	r.Addons = make([]BookingAddonResponse, len(addons))
	for i, addon := range addons {
		r.Addons[i].FromModel(addon)
	}
}

// UpdateBookingRequest is the allow-listed patch payload. Fields absent from
// the body stay untouched; any other field a client sends is dropped by the
// decoder.
type UpdateBookingRequest struct {
	SpecialRequests *string `json:"special_requests"`
	BookingStatus   *string `json:"booking_status" validate:"omitempty,oneof=confirmed cancelled"`
}

func (r UpdateBookingRequest) ToPatch() map[string]any {
	patch := map[string]any{}

	if r.SpecialRequests != nil {
		patch[model.FieldSpecialRequests] = *r.SpecialRequests
	}

	if r.BookingStatus != nil {
		patch[model.FieldBookingStatus] = *r.BookingStatus
	}

	return patch
}

type CancelBookingResponse struct {
	PNR           string `json:"pnr"`
	BookingStatus string `json:"booking_status"`
}
