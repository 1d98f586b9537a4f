package service

import (
	"context"

	"ai-study-tutor-be/internal/pkg/logger"
	"ai-study-tutor-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService writes every bus event to the activity log.
type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	activity   logger.ILogger
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	activity logger.ILogger,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		activity:   activity,
		logger:     log,
	}
}

// Consume subscribes and returns; messages are handled on a background
// goroutine until ctx is cancelled.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	evt, err := events.Decode(msg.Payload)
	if err != nil {
		cs.logger.Warn("CONSUMER", "Dropping undecodable event", map[string]interface{}{
			"message_uuid": msg.UUID,
			"error":        err.Error(),
		})
		msg.Ack()
		return
	}

	details := make(map[string]interface{}, len(evt.Data)+1)
	for k, v := range evt.Data {
		details[k] = v
	}
	details["occurred_at"] = evt.OccurredAt

	cs.activity.Info("ACTIVITY", evt.Type, details)
	msg.Ack()
}
