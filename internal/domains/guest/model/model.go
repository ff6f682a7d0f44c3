package model

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID            = "id"
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldAddress       = "address"
	FieldIDProofType   = "id_proof_type"
	FieldIDProofNumber = "id_proof_number"
	FieldDateOfBirth   = "date_of_birth"
)

type Guest struct {
	ID            int64   `db:"id"`
	Name          string  `db:"name"`
	Email         *string `db:"email"`
	Phone         *string `db:"phone"`
	Address       *string `db:"address"`
	IDProofType   *string `db:"id_proof_type"`
	IDProofNumber *string `db:"id_proof_number"`
	DateOfBirth   *string `db:"date_of_birth"`
}
