package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"oberoy/infras/otel"
	"oberoy/infras/postgres"
	"oberoy/internal/domains/booking/model"
	"oberoy/shared/constant"
	gDto "oberoy/shared/dto"
	gRepo "oberoy/shared/repository"
)

type Booking interface {
	CreateWithAddons(ctx context.Context, booking model.Booking, addons []model.BookingAddon) (int64, error)
	PNRExists(ctx context.Context, pnr string) (bool, error)
	GetDetailByPNR(ctx context.Context, pnr string) (model.BookingDetail, error)
	GetAddonDetails(ctx context.Context, bookingID int64) ([]model.BookingAddonDetail, error)
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	detail gRepo.Repository[model.BookingDetail]
	addons gRepo.Repository[model.BookingAddonDetail]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		detail: gRepo.NewRepository[model.BookingDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
		addons: gRepo.NewRepository[model.BookingAddonDetail](model.AddonEntityName, model.AddonTableName, model.AddonFieldID, db, otel),
		db:     db,
		otel:   otel,
	}
}

// CreateWithAddons inserts the booking and its addon lines in one
// transaction, so a failed addon insert never leaves an orphaned booking.
func (repo *repositoryImpl) CreateWithAddons(ctx context.Context, booking model.Booking, addons []model.BookingAddon) (id int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateWithAddons")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "failed to begin booking transaction")
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback booking transaction")
			}
		}
	}()

	query := fmt.Sprintf(`INSERT INTO %s (pnr, guest_id, room_type_id, check_in_date, check_out_date, adults, children,
		total_rooms, room_price, total_amount, booking_status, booking_source, special_requests, created_at, updated_at)
		VALUES (:pnr, :guest_id, :room_type_id, :check_in_date, :check_out_date, :adults, :children,
		:total_rooms, :room_price, :total_amount, :booking_status, :booking_source, :special_requests, :created_at, :updated_at)
		RETURNING id`, model.TableName)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := tx.PrepareNamedContext(ctx, query)
	if err != nil {
		return 0, errors.Wrap(err, "failed to prepare insert booking query")
	}
	defer stmt.Close()

	if err = stmt.GetContext(ctx, &id, booking); err != nil {
		return 0, errors.Wrap(err, "failed to insert booking")
	}

	if len(addons) > 0 {
		for i := range addons {
			addons[i].BookingID = id
		}

		addonQuery := fmt.Sprintf(`INSERT INTO %s (booking_id, addon_id, quantity, unit_price, total_price, added_at)
			VALUES (:booking_id, :addon_id, :quantity, :unit_price, :total_price, :added_at)`, model.AddonTableName)

		if _, err = tx.NamedExecContext(ctx, addonQuery, addons); err != nil {
			return 0, errors.Wrap(err, "failed to insert booking addons")
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "failed to commit booking transaction")
	}

	return id, nil
}

func (repo *repositoryImpl) PNRExists(ctx context.Context, pnr string) (bool, error) {
	return repo.detail.Exist(ctx, matchByPNR(pnr)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetDetailByPNR(ctx context.Context, pnr string) (model.BookingDetail, error) {
	return repo.detail.Get(ctx, matchByPNR(pnr)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAddonDetails(ctx context.Context, bookingID int64) ([]model.BookingAddonDetail, error) {
	params := gDto.QueryParams{
		SortBy:  model.AddonTableName + "." + model.AddonFieldID,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.AddonFieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.AddonTableName,
			},
		},
	}

	return repo.addons.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error {
	return repo.detail.Update(ctx, mod, filter) //nolint:wrapcheck
}

func matchByPNR(pnr string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPNR,
				Operator: gDto.FilterOperatorEq,
				Value:    pnr,
				Table:    model.TableName,
			},
		},
	}
}
