package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"oberoy/infras/otel"
	"oberoy/internal/domains/guest/model"
	"oberoy/internal/domains/guest/model/dto"
	"oberoy/internal/domains/guest/repository"
	"oberoy/shared/constant"
	gDto "oberoy/shared/dto"
)

type Guest interface {
	Resolve(ctx context.Context, req dto.GuestRequest) (int64, error)
}

type serviceImpl struct {
	repo repository.Guest
	otel otel.Otel
}

func New(repo repository.Guest, otel otel.Otel) Guest {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Resolve finds the guest the request refers to, preferring the phone number
// over the email, and updates any provided field that differs from the stored
// value. When no existing guest matches, a new one is created. The returned
// id always refers to a persisted row.
func (s *serviceImpl) Resolve(ctx context.Context, req dto.GuestRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer scope.TraceIfError(err)

	existing, err := s.find(ctx, req)
	if err != nil {
		return 0, err
	}

	if existing.ID == 0 {
		id, err = s.repo.Insert(ctx, req.ToModel())
		if err != nil {
			log.Error().Err(err).Msg("failed to create guest")

			return 0, fmt.Errorf("failed to create guest: %w", err)
		}

		return id, nil
	}

	patch := buildPatch(existing, req)
	if len(patch) > 0 {
		err = s.repo.Update(ctx, patch, matchByID(existing.ID))
		if err != nil {
			log.Error().Err(err).Int64("guestID", existing.ID).Msg("failed to update guest")

			return 0, fmt.Errorf("failed to update guest: %w", err)
		}
	}

	return existing.ID, nil
}

func (s *serviceImpl) find(ctx context.Context, req dto.GuestRequest) (guest model.Guest, err error) {
	if req.Phone != nil && *req.Phone != "" {
		guest, err = s.repo.Get(ctx, matchByField(model.FieldPhone, *req.Phone))
		if err != nil {
			log.Error().Err(err).Msg("failed to get guest by phone")

			return guest, fmt.Errorf("failed to get guest by phone: %w", err)
		}

		if guest.ID != 0 {
			return guest, nil
		}
	}

	if req.Email != nil && *req.Email != "" {
		guest, err = s.repo.Get(ctx, matchByField(model.FieldEmail, *req.Email))
		if err != nil {
			log.Error().Err(err).Msg("failed to get guest by email")

			return guest, fmt.Errorf("failed to get guest by email: %w", err)
		}
	}

	return guest, nil
}

// buildPatch collects the provided fields that differ from the stored guest.
// The phone is the resolution key and is never rewritten.
func buildPatch(existing model.Guest, req dto.GuestRequest) map[string]any {
	patch := map[string]any{}

	if req.Name != "" && req.Name != existing.Name {
		patch[model.FieldName] = req.Name
	}

	putChanged(patch, model.FieldEmail, req.Email, existing.Email)
	putChanged(patch, model.FieldAddress, req.Address, existing.Address)
	putChanged(patch, model.FieldIDProofType, req.IDProofType, existing.IDProofType)
	putChanged(patch, model.FieldIDProofNumber, req.IDProofNumber, existing.IDProofNumber)
	putChanged(patch, model.FieldDateOfBirth, req.DateOfBirth, existing.DateOfBirth)

	return patch
}

func putChanged(patch map[string]any, field string, provided, stored *string) {
	if provided == nil || *provided == "" {
		return
	}

	if stored != nil && *stored == *provided {
		return
	}

	patch[field] = *provided
}

func matchByID(id int64) gDto.FilterGroup {
	return matchByField(model.FieldID, id)
}

func matchByField(field string, value any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			},
		},
	}
}
