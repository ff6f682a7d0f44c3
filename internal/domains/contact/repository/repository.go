package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"oberoy/infras/otel"
	"oberoy/infras/postgres"
	"oberoy/internal/domains/contact/model"
	gRepo "oberoy/shared/repository"
)

type Contact interface {
	Insert(ctx context.Context, message model.ContactMessage) error
}

type repositoryImpl struct {
	gRepo.Repository[model.ContactMessage]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Contact {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ContactMessage](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
