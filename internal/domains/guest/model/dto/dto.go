package dto

import (
	"oberoy/internal/domains/guest/model"
)

// GuestRequest is the guest block of a booking-creation payload. Only the
// name is mandatory; phone and email drive identity resolution.
type GuestRequest struct {
	Name          string  `json:"name" validate:"required"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	IDProofType   *string `json:"id_proof_type"`
	IDProofNumber *string `json:"id_proof_number"`
	DateOfBirth   *string `json:"date_of_birth"`
}

func (r GuestRequest) ToModel() model.Guest {
	return model.Guest{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		IDProofType:   r.IDProofType,
		IDProofNumber: r.IDProofNumber,
		DateOfBirth:   r.DateOfBirth,
	}
}

type GuestResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	IDProofType   *string `json:"id_proof_type,omitempty"`
	IDProofNumber *string `json:"id_proof_number,omitempty"`
	DateOfBirth   *string `json:"date_of_birth,omitempty"`
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.IDProofType = model.IDProofType
	r.IDProofNumber = model.IDProofNumber
	r.DateOfBirth = model.DateOfBirth
}
