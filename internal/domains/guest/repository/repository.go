package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"oberoy/infras/otel"
	"oberoy/infras/postgres"
	"oberoy/internal/domains/guest/model"
	"oberoy/shared/constant"
	gDto "oberoy/shared/dto"
	gRepo "oberoy/shared/repository"
)

type Guest interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Guest, error)
	Insert(ctx context.Context, guest model.Guest) (int64, error)
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert persists a new guest and returns the generated id.
func (repo *repositoryImpl) Insert(ctx context.Context, guest model.Guest) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.Insert")
	defer scope.End()

	query := fmt.Sprintf(`INSERT INTO %s (name, email, phone, address, id_proof_type, id_proof_number, date_of_birth)
		VALUES (:name, :email, :phone, :address, :id_proof_type, :id_proof_number, :date_of_birth)
		RETURNING id`, model.TableName)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Write.PrepareNamedContext(ctx, query)
	if err != nil {
		return 0, errors.Wrap(err, "failed to prepare insert guest query")
	}
	defer stmt.Close()

	var id int64
	if err := stmt.GetContext(ctx, &id, guest); err != nil {
		return 0, errors.Wrap(err, "failed to insert guest")
	}

	return id, nil
}
