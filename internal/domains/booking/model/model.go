package model

import (
	"fmt"
	"time"

	guest "oberoy/internal/domains/guest/model"
	roomtype "oberoy/internal/domains/roomtype/model"
	"oberoy/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldPNR             = "pnr"
	FieldGuestID         = "guest_id"
	FieldRoomTypeID      = "room_type_id"
	FieldCheckInDate     = "check_in_date"
	FieldCheckOutDate    = "check_out_date"
	FieldAdults          = "adults"
	FieldChildren        = "children"
	FieldTotalRooms      = "total_rooms"
	FieldRoomPrice       = "room_price"
	FieldTotalAmount     = "total_amount"
	FieldBookingStatus   = "booking_status"
	FieldBookingSource   = "booking_source"
	FieldSpecialRequests = "special_requests"
)

const (
	AddonTableName  = "booking_addons"
	AddonEntityName = "booking_addon"

	AddonFieldID        = "id"
	AddonFieldBookingID = "booking_id"
	AddonFieldAddonID   = "addon_id"
)

type Booking struct {
	ID              int64     `db:"id"`
	PNR             string    `db:"pnr"`
	GuestID         int64     `db:"guest_id"`
	RoomTypeID      int64     `db:"room_type_id"`
	CheckInDate     time.Time `db:"check_in_date"`
	CheckOutDate    time.Time `db:"check_out_date"`
	Adults          int       `db:"adults"`
	Children        int       `db:"children"`
	TotalRooms      int       `db:"total_rooms"`
	RoomPrice       float64   `db:"room_price"`
	TotalAmount     float64   `db:"total_amount"`
	BookingStatus   string    `db:"booking_status"`
	BookingSource   string    `db:"booking_source"`
	SpecialRequests *string   `db:"special_requests"`
	model.Metadata
}

// BookingAddon snapshots the addon price at booking time, so later price
// changes never rewrite history.
type BookingAddon struct {
	ID         int64     `db:"id"`
	BookingID  int64     `db:"booking_id"`
	AddonID    int64     `db:"addon_id"`
	Quantity   int       `db:"quantity"`
	UnitPrice  float64   `db:"unit_price"`
	TotalPrice float64   `db:"total_price"`
	AddedAt    time.Time `db:"added_at"`
}

// BookingDetail is the booking row joined with its guest and room type. Inner
// joins on purpose: a booking whose guest or room type row is gone is treated
// as not found.
type BookingDetail struct {
	Booking
	GuestName         string  `db:"guest_name" table:"guests" column:"name"`
	GuestEmail        *string `db:"guest_email" table:"guests" column:"email"`
	GuestPhone        *string `db:"guest_phone" table:"guests" column:"phone"`
	RoomTypeName      string  `db:"room_type_name" table:"room_types" column:"name"`
	RoomTypeBasePrice float64 `db:"room_type_base_price" table:"room_types" column:"base_price"`
	RoomTypeMaxAdults int     `db:"room_type_max_adults" table:"room_types" column:"max_adults"`
	RoomTypeMaxChilds int     `db:"room_type_max_children" table:"room_types" column:"max_children"`
	RoomTypeImageURL  *string `db:"room_type_main_image_url" table:"room_types" column:"main_image_url"`
	RoomTypeHotelID   int64   `db:"room_type_hotel_id" table:"room_types" column:"hotel_id"`
	RoomTypeDesc      string  `db:"room_type_description" table:"room_types" column:"description"`
}

func (BookingDetail) GetJoinQuery() string {
	return fmt.Sprintf(
		"INNER JOIN %s ON %s.%s = %s.%s INNER JOIN %s ON %s.%s = %s.%s",
		guest.TableName, guest.TableName, guest.FieldID, TableName, FieldGuestID,
		roomtype.TableName, roomtype.TableName, roomtype.FieldID, TableName, FieldRoomTypeID,
	)
}

// BookingAddonDetail is a booking addon line joined with the addon row for
// display context.
type BookingAddonDetail struct {
	BookingAddon
	AddonName string `db:"addon_name" table:"addons" column:"name"`
	AddonUnit string `db:"addon_unit" table:"addons" column:"unit"`
}

func (BookingAddonDetail) GetJoinQuery() string {
	return fmt.Sprintf(
		"INNER JOIN addons ON addons.id = %s.%s",
		AddonTableName, AddonFieldAddonID,
	)
}
