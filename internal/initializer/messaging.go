package initializer

import (
	"context"
	"log"
	"time"

	"word-game-service/config"
	"word-game-service/pkg/messaging"
)

func InitMessaging(appConfig config.Config, handler messaging.MessageHandler) *messaging.KafkaClient {
	kafkaConfig := messaging.KafkaConfig{
		Brokers:           appConfig.Kafka.Brokers,
		Topic:             "main-events",
		RetryTopic:        "retry-events",
		DLQTopic:          "dlq-events",
		ServiceName:       appConfig.App.Name,
		EnableRetry:       true,
		MaxRetries:        3,
		ConnectionTimeout: 10 * time.Second,
	}

	kafkaClient, err := messaging.NewKafkaClient(kafkaConfig)
	if err != nil {
		log.Fatalf("kafka bağlantısı kurulamadı: %v", err)
	}
	log.Printf("Kafka Client initialized for service: %s, main topic: %s", kafkaConfig.ServiceName, kafkaConfig.Topic)

	ctx, cancel := context.WithCancel(context.Background())
	// Ana Consumer
	go func() {
		log.Println("Starting Kafka consumer for main-events...")
		groupID := kafkaConfig.ServiceName + "-main-group"
		topic := kafkaConfig.Topic
		if err := kafkaClient.ConsumeMessages(ctx, handler, &topic, &groupID); err != nil {
			log.Printf("Main consumer error: %v", err)
			cancel()
		}
	}()

	// Retry Consumer
	go func() {
		log.Println("Starting Kafka consumer for retry-events...")
		groupID := kafkaConfig.ServiceName + "-retry-group"
		topic := kafkaConfig.RetryTopic
		if err := kafkaClient.ConsumeMessages(ctx, handler, &topic, &groupID); err != nil {
			log.Printf("Retry consumer error: %v", err)
			cancel()
		}
	}()

	// DLQ Consumer
	go func() {
		log.Println("Starting DLQ recovery consumer...")
		if err := kafkaClient.ConsumeDLQWithRecovery(ctx, handler); err != nil {
			log.Printf("DLQ consumer error: %v", err)
		}
	}()

	return kafkaClient
}
