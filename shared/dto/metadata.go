package dto

import (
	"oberoy/shared/constant"
	"oberoy/shared/model"
	"oberoy/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.TimestampFormat)
	m.UpdatedAt = timezone.Format(model.UpdatedAt, constant.TimestampFormat)
}
