package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"fintech-admin-be/internal/pkg/logger"
	"fintech-admin-be/internal/pkg/mailer"
	"fintech-admin-be/pkg/money"
)

// Broadcaster pushes a payload to every connected dashboard session.
type Broadcaster interface {
	Broadcast(payload []byte)
}

type NotificationService interface {
	Consume(ctx context.Context) error
}

type notificationService struct {
	pubSub   *gochannel.GoChannel
	hub      Broadcaster
	mailer   mailer.IEmailService
	opsEmail string
	log      logger.ILogger
}

func NewNotificationService(pubSub *gochannel.GoChannel, hub Broadcaster, email mailer.IEmailService, opsEmail string, log logger.ILogger) NotificationService {
	return &notificationService{
		pubSub:   pubSub,
		hub:      hub,
		mailer:   email,
		opsEmail: opsEmail,
		log:      log,
	}
}

// Consume fans watcher notifications out to connected dashboards and the
// operations inbox.
func (s *notificationService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, TransactionWatchTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(msg)
		}
	}()
	return nil
}

func (s *notificationService) processMessage(msg *message.Message) {
	var payload TransactionStatusMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.log.Warn("notification", "dropping malformed message", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	if s.hub != nil {
		s.hub.Broadcast(msg.Payload)
	}

	if s.mailer != nil && s.opsEmail != "" {
		err := s.mailer.SendTransactionAlert(s.opsEmail, payload.Reference, payload.NewStatus, money.Format(payload.Amount))
		if err != nil {
			s.log.Warn("notification", "failed to send ops alert", map[string]interface{}{
				"reference": payload.Reference, "error": err.Error(),
			})
		}
	}

	msg.Ack()
}
