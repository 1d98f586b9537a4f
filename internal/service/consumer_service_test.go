package service

import (
	"context"
	"testing"
	"time"

	"ai-study-tutor-be/internal/pkg/logger"
	"ai-study-tutor-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBusWritesActivityLog(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	activity := &recordingLogger{}
	consumer := NewConsumerService(pubSub, "test.activity", activity, logger.NewNopLogger())
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService("test.activity", pubSub)
	require.NoError(t, publisher.Publish(ctx, events.New(events.TypeMessageExchanged, map[string]interface{}{
		"conversation_id": "c1",
	})))

	require.Eventually(t, func() bool {
		return len(activity.snapshot()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	entry := activity.snapshot()[0]
	assert.Equal(t, "info", entry.Level)
	assert.Equal(t, "ACTIVITY", entry.Module)
	assert.Equal(t, events.TypeMessageExchanged, entry.Message)
	assert.Equal(t, "c1", entry.Details["conversation_id"])
	assert.Contains(t, entry.Details, "occurred_at")
}

func TestConsumerAcksGarbage(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	activity := &recordingLogger{}
	sysLog := &recordingLogger{}
	require.NoError(t, NewConsumerService(pubSub, "test.activity", activity, sysLog).Consume(ctx))

	require.NoError(t, pubSub.Publish("test.activity", message.NewMessage(watermill.NewUUID(), []byte("{broken"))))

	require.Eventually(t, func() bool {
		return len(sysLog.snapshot()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Empty(t, activity.snapshot())
	assert.Equal(t, "warn", sysLog.snapshot()[0].Level)
}
