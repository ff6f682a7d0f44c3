package model

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID           = "id"
	FieldHotelID      = "hotel_id"
	FieldName         = "name"
	FieldDescription  = "description"
	FieldMaxAdults    = "max_adults"
	FieldMaxChildren  = "max_children"
	FieldBasePrice    = "base_price"
	FieldMainImageURL = "main_image_url"
	FieldIsDeleted    = "is_deleted"
)

const (
	ImageTableName  = "room_type_images"
	ImageEntityName = "room_type_image"

	ImageFieldID           = "id"
	ImageFieldRoomTypeID   = "room_type_id"
	ImageFieldImageURL     = "image_url"
	ImageFieldDisplayOrder = "display_order"
)

type RoomType struct {
	ID           int64   `db:"id"`
	HotelID      int64   `db:"hotel_id"`
	Name         string  `db:"name"`
	Description  string  `db:"description"`
	MaxAdults    int     `db:"max_adults"`
	MaxChildren  int     `db:"max_children"`
	BasePrice    float64 `db:"base_price"`
	MainImageURL *string `db:"main_image_url"`
	IsDeleted    bool    `db:"is_deleted"`
}

type RoomTypeImage struct {
	ID           int64  `db:"id"`
	RoomTypeID   int64  `db:"room_type_id"`
	ImageURL     string `db:"image_url"`
	DisplayOrder int    `db:"display_order"`
}
