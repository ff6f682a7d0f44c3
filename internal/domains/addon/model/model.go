package model

const (
	TableName  = "addons"
	EntityName = "addon"

	FieldID       = "id"
	FieldName     = "name"
	FieldPrice    = "price"
	FieldUnit     = "unit"
	FieldIsActive = "is_active"
)

type Addon struct {
	ID       int64   `db:"id"`
	Name     string  `db:"name"`
	Price    float64 `db:"price"`
	Unit     string  `db:"unit"`
	IsActive bool    `db:"is_active"`
}
