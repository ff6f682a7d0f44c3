package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"oberoy/config"
	kafkaMocks "oberoy/infras/kafka/mocks"
	"oberoy/infras/otel/mocks"
	contactMocks "oberoy/internal/domains/contact/mocks"
	"oberoy/internal/domains/contact/model"
	"oberoy/internal/domains/contact/model/dto"
	"oberoy/internal/domains/contact/service"
)

func TestContactService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Topic.ContactEvents = "contact-events"

	// The event goes out on a background goroutine.
	mockKafka.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, cfg, mockKafka, mocks.NewOtel())

	req := dto.ContactRequest{
		Name:    "John Doe",
		Email:   "john@example.com",
		Subject: "Room availability",
		Message: "Do you have rooms for this weekend?",
	}

	t.Run("successful submission", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, message model.ContactMessage) error {
				assert.NotEmpty(t, message.ID)
				assert.Equal(t, "John Doe", message.Name)

				return nil
			})

		res, err := svc.Submit(context.Background(), req)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "Thank you for your inquiry. We will get back to you soon.", res.Message)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Submit(context.Background(), req)

		assert.Error(t, err)
	})
}
