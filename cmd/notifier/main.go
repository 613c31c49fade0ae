package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/config"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/constants"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	nsqpkg "github.com/chetanshingare9301/Exam-Management-System/internal/pkg/nsq"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts/gateway"
	nsqHandler "github.com/chetanshingare9301/Exam-Management-System/services/accounts/handler/nsq"
)

const maxDeliveryAttempts = 5

func main() {
	appName := "notifier-service"
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", ".env"))

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
	)

	// The notifier always talks to the providers directly
	accountGW := gateway.NewAccountGW(configs.Notification, nil)
	notifier := nsqHandler.NewNotifierHandler(accountGW)

	channel := configs.NSQ.Channel
	if channel == "" {
		channel = constants.ChannelNotifier
	}

	var consumers []*nsqpkg.Consumer
	for _, topic := range []string{constants.TopicOTPEmail, constants.TopicOTPSMS} {
		consumer, err := nsqpkg.NewConsumer(nsqpkg.ConsumerConfig{
			Topic:            topic,
			Channel:          channel,
			NSQDAddress:      configs.NSQ.NSQDAddress,
			LookupdAddresses: configs.NSQ.LookupdAddresses,
			MaxAttempts:      maxDeliveryAttempts,
		}, notifier.HandleOTP)
		if err != nil {
			zapLogger.Fatal("Failed to start NSQ consumer",
				logger.String("topic", topic),
				logger.ErrorField(err),
			)
		}
		consumers = append(consumers, consumer)
		zapLogger.Info("Consuming OTP notifications", logger.String("topic", topic), logger.String("channel", channel))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down notifier")
	for _, consumer := range consumers {
		consumer.Stop()
	}
}
