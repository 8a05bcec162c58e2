package kafka

import (
	"context"
	"fmt"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/events"
)

type consumerConfig interface {
	producerConfig
	ConsumerGroup() string
}

type invalidator interface {
	Invalidate(ctx context.Context, userID int64) error
}

// Consumer drops cached statistics of every user an event names.
type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	invalidator   invalidator
}

func NewConsumer(cfg consumerConfig, invalidator invalidator) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup(), config)
	if err != nil {
		return nil, errors.Wrap(err, "create consumer group")
	}
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         cfg.EventsTopic(),
		invalidator:   invalidator,
	}, nil
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("consume from %s", c.topic))
			}
		}
	}
}

func (c *Consumer) Close() {
	if err := c.consumerGroup.Close(); err != nil {
		logger.Error("failed to close consumer group", zap.Error(err))
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		c.handle(session.Context(), message)
		session.MarkMessage(message, "")
	}
	return nil
}

// handle only logs failures; the message is marked either way.
func (c *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) {
	ev, err := events.Decode(message.Value)
	if err != nil {
		logger.Error("cannot decode kafka message", zap.ByteString("key", message.Key), zap.Error(err))
		return
	}

	logger.Info(
		"received expense event",
		zap.String("id", ev.ID.String()),
		zap.String("kind", string(ev.Kind)),
		zap.Int64("userID", ev.UserID),
		zap.Int64("expenseID", ev.ExpenseID),
	)
	if err = c.invalidator.Invalidate(ctx, ev.UserID); err != nil {
		logger.Error("failed to invalidate stats", zap.Int64("userID", ev.UserID), zap.Error(err))
	}
}
