package model

import "time"

const (
	TableName  = "contact_messages"
	EntityName = "contact_message"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldSubject = "subject"
	FieldMessage = "message"
)

type ContactMessage struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     *string   `db:"phone"`
	Subject   string    `db:"subject"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}
