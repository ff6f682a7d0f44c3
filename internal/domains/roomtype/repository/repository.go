package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"oberoy/infras/otel"
	"oberoy/infras/postgres"
	"oberoy/internal/domains/roomtype/model"
	gDto "oberoy/shared/dto"
	gRepo "oberoy/shared/repository"
)

type RoomType interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type RoomTypeImage interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomTypeImage, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomType]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RoomType {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomType](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type imageRepositoryImpl struct {
	gRepo.Repository[model.RoomTypeImage]
	db   *postgres.Connection
	otel otel.Otel
}

func NewImage(db *postgres.Connection, otel otel.Otel) RoomTypeImage {
	return &imageRepositoryImpl{
		Repository: gRepo.NewRepository[model.RoomTypeImage](model.ImageEntityName, model.ImageTableName, model.ImageFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
