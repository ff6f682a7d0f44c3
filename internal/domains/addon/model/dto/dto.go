package dto

import (
	"oberoy/internal/domains/addon/model"
)

type AddonResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Unit     string  `json:"unit"`
	IsActive bool    `json:"is_active"`
}

func (r *AddonResponse) FromModel(model model.Addon) {
	r.ID = model.ID
	r.Name = model.Name
	r.Price = model.Price
	r.Unit = model.Unit
	r.IsActive = model.IsActive
}

type GetAddonsResponse struct {
	Addons []AddonResponse
	Total  int
}

func (r *GetAddonsResponse) FromModels(models []model.Addon, total int) {
	r.Total = total

	r.Addons = make([]AddonResponse, len(models))
	for i, mod := range models {
		r.Addons[i].FromModel(mod)
	}
}
