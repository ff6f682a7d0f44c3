package dto

import (
	"time"

	"github.com/google/uuid"

	"oberoy/internal/domains/contact/model"
)

type ContactRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone"`
	Subject string  `json:"subject" validate:"required"`
	Message string  `json:"message" validate:"required"`
}

func (r ContactRequest) ToModel(now time.Time) model.ContactMessage {
	return model.ContactMessage{
		ID:        uuid.NewString(),
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Subject:   r.Subject,
		Message:   r.Message,
		CreatedAt: now,
	}
}

type ContactResponse struct {
	Message string `json:"message"`
}
