package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"oberoy/infras/otel"
	"oberoy/infras/postgres"
	"oberoy/internal/domains/addon/model"
	gDto "oberoy/shared/dto"
	gRepo "oberoy/shared/repository"
)

type Addon interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Addon, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Addon]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Addon {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Addon](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
