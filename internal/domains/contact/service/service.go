package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"oberoy/config"
	"oberoy/infras/kafka"
	"oberoy/infras/otel"
	"oberoy/internal/domains/contact/model"
	"oberoy/internal/domains/contact/model/dto"
	"oberoy/internal/domains/contact/repository"
	"oberoy/shared/constant"
	"oberoy/shared/timezone"
)

type Contact interface {
	Submit(ctx context.Context, req dto.ContactRequest) (dto.ContactResponse, error)
}

type contactEvent struct {
	ID         string `json:"id"`
	Event      string `json:"event"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	OccurredAt string `json:"occurred_at"`
}

type serviceImpl struct {
	repo  repository.Contact
	cfg   *config.Config
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Contact, cfg *config.Config, kafkaClient kafka.Client, otel otel.Otel) Contact {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		kafka: kafkaClient,
		otel:  otel,
	}
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.ContactRequest) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	message := req.ToModel(timezone.Now())

	if err = s.repo.Insert(ctx, message); err != nil {
		log.Error().Err(err).Msg("failed to save contact message")

		return res, fmt.Errorf("failed to save contact message: %w", err)
	}

	s.publishEvent(ctx, message)

	res.Message = "Thank you for your inquiry. We will get back to you soon."

	return res, nil
}

// publishEvent notifies downstream consumers (mailers, CRM sync) without
// blocking or failing the request.
func (s *serviceImpl) publishEvent(ctx context.Context, message model.ContactMessage) {
	payload := contactEvent{
		ID:         message.ID,
		Event:      constant.EventContactSubmitted,
		Name:       message.Name,
		Email:      message.Email,
		Subject:    message.Subject,
		OccurredAt: timezone.Format(message.CreatedAt, constant.TimestampFormat),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic.ContactEvents, kafka.Message{
			Key:   message.ID,
			Value: payload,
		})
		if err != nil {
			log.Error().Err(err).Str("contactID", message.ID).Msg("failed to publish contact event")
		}
	}()
}
