package dto

import (
	"net/http"
	"strconv"

	"oberoy/internal/domains/roomtype/model"
	"oberoy/shared/constant"
)

type RoomTypeResponse struct {
	ID           int64   `json:"id"`
	HotelID      int64   `json:"hotel_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	MaxAdults    int     `json:"max_adults"`
	MaxChildren  int     `json:"max_children"`
	BasePrice    float64 `json:"base_price"`
	MainImageURL *string `json:"main_image_url,omitempty"`
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.Name = model.Name
	r.Description = model.Description
	r.MaxAdults = model.MaxAdults
	r.MaxChildren = model.MaxChildren
	r.BasePrice = model.BasePrice
	r.MainImageURL = model.MainImageURL
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse
	Total     int
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, total int) {
	r.Total = total

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}

type RoomTypeImageResponse struct {
	ID           int64  `json:"id"`
	RoomTypeID   int64  `json:"room_type_id"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
}

func (r *RoomTypeImageResponse) FromModel(model model.RoomTypeImage) {
	r.ID = model.ID
	r.RoomTypeID = model.RoomTypeID
	r.ImageURL = model.ImageURL
	r.DisplayOrder = model.DisplayOrder
}

// AvailabilityQuery carries the candidate-room-type query parameters. The
// lookup filters on party capacity only; occupied date ranges are not
// consulted.
type AvailabilityQuery struct {
	CheckIn  string `json:"check_in"  validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Adults   int    `json:"adults"    validate:"omitempty,gte=0"`
	Children int    `json:"children"  validate:"omitempty,gte=0"`
}

type PricingQuery struct {
	RoomTypeID int64  `json:"room_type_id" validate:"required"`
	CheckIn    string `json:"check_in"     validate:"required"`
	CheckOut   string `json:"check_out"    validate:"required"`
	Adults     int    `json:"adults"       validate:"omitempty,gte=0"`
	Children   int    `json:"children"     validate:"omitempty,gte=0"`
}

type PricingResponse struct {
	BasePrice  float64 `json:"base_price"`
	TotalPrice float64 `json:"total_price"`
}

// FromRequest populates the availability query from URL parameters, applying
// the same floors the original API used: adults >= 1, children >= 0.
func (q *AvailabilityQuery) FromRequest(r *http.Request) {
	params := r.URL.Query()

	q.CheckIn = params.Get(constant.RequestParamCheckIn)
	q.CheckOut = params.Get(constant.RequestParamCheckOut)
	q.Adults = 1
	q.Children = 0

	if adults, err := strconv.Atoi(params.Get(constant.RequestParamAdults)); err == nil && adults > 1 {
		q.Adults = adults
	}

	if children, err := strconv.Atoi(params.Get(constant.RequestParamChildren)); err == nil && children > 0 {
		q.Children = children
	}
}

func (q *PricingQuery) FromRequest(r *http.Request) {
	params := r.URL.Query()

	availability := AvailabilityQuery{}
	availability.FromRequest(r)

	q.CheckIn = availability.CheckIn
	q.CheckOut = availability.CheckOut
	q.Adults = availability.Adults
	q.Children = availability.Children

	if id, err := strconv.ParseInt(params.Get(constant.RequestParamRoomTypeID), 10, 64); err == nil {
		q.RoomTypeID = id
	}
}
