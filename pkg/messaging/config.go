package messaging

import "time"

// KafkaConfig, kafka istemcisinin ayarları.
type KafkaConfig struct {
	Brokers           []string
	Topic             string
	GroupID           string
	ClientID          string // İsteğe bağlı, Kafka loglarında görünür
	EnableRetry       bool
	MaxRetries        int
	RetryTopic        string
	DLQTopic          string
	ConnectionTimeout time.Duration
	ServiceName       string // Mesaj zarfında kaynak olarak görünür
}

func NewDefaultConfig(kafkaBrokers []string) KafkaConfig {
	if len(kafkaBrokers) == 0 {
		kafkaBrokers = []string{"localhost:9092"}
	}

	return KafkaConfig{
		Brokers:           kafkaBrokers,
		Topic:             "main-events",
		RetryTopic:        "main-events-retry",
		DLQTopic:          "main-events-dlq",
		ServiceName:       "word-game-service",
		EnableRetry:       true,
		MaxRetries:        3,
		ConnectionTimeout: 10 * time.Second,
	}
}
