package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/nsqio/go-nsq"
)

// MessageHandler is a function that processes NSQ messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
	topic    string
}

// ConsumerConfig describes one topic/channel subscription
type ConsumerConfig struct {
	Topic            string
	Channel          string
	NSQDAddress      string
	LookupdAddresses []string
	MaxAttempts      uint16
}

// NewConsumer creates a consumer for a topic/channel and connects it to
// lookupd when addresses are given, otherwise directly to nsqd
func NewConsumer(cfg ConsumerConfig, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()
	if cfg.MaxAttempts > 0 {
		config.MaxAttempts = cfg.MaxAttempts
	}

	consumer, err := nsq.NewConsumer(cfg.Topic, cfg.Channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelWarning)
	consumer.AddHandler(wrapHandler(cfg.Topic, handler))

	c := &Consumer{consumer: consumer, topic: cfg.Topic}
	if len(cfg.LookupdAddresses) > 0 {
		if err := c.ConnectToLookupd(cfg.LookupdAddresses); err != nil {
			return nil, err
		}
		return c, nil
	}

	if err := consumer.ConnectToNSQD(cfg.NSQDAddress); err != nil {
		return nil, fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}
	return c, nil
}

// wrapHandler adapts a MessageHandler. A returned error requeues the message.
func wrapHandler(topic string, handler MessageHandler) nsq.HandlerFunc {
	return func(message *nsq.Message) error {
		if len(message.Body) == 0 {
			return nil
		}

		if err := handler(message.Body); err != nil {
			logger.Error("Error processing message",
				logger.String("topic", topic),
				logger.Int("attempts", int(message.Attempts)),
				logger.ErrorField(err),
			)
			return err
		}
		return nil
	}
}

// ConnectToLookupd connects the consumer to NSQ lookupd instances
func (c *Consumer) ConnectToLookupd(addresses []string) error {
	for _, addr := range addresses {
		if err := c.consumer.ConnectToNSQLookupd(addr); err != nil {
			return fmt.Errorf("failed to connect to NSQ lookupd at %s: %w", addr, err)
		}
	}
	return nil
}

// UnmarshalMessage deserializes a JSON message into the provided struct
func UnmarshalMessage(messageBody []byte, v interface{}) error {
	if err := json.Unmarshal(messageBody, v); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}

// Stop gracefully stops the consumer and waits for in-flight messages
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
	logger.Info("NSQ consumer stopped", logger.String("topic", c.topic))
}
