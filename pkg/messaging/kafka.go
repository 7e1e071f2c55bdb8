package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// MessageHandler, tüketilen mesajı işleyen fonksiyon sözleşmesi.
type MessageHandler func(ctx context.Context, msg *Message) error

// KafkaClient, servisler arası olay alışverişi için üretici ve tüketici.
// Üretim ana topic'e yapılır; tüketimde hata alan mesajlar retry topic'ine,
// deneme hakkı bitenler DLQ'ya taşınır.
type KafkaClient struct {
	config KafkaConfig
	writer *kafka.Writer
}

func NewKafkaClient(config KafkaConfig) (*KafkaClient, error) {
	if len(config.Brokers) == 0 {
		return nil, fmt.Errorf("at least one kafka broker is required")
	}

	// Bağlantıyı baştan doğrula; broker yoksa servis hiç kalkmasın.
	dialer := &kafka.Dialer{Timeout: config.ConnectionTimeout}
	conn, err := dialer.Dial("tcp", config.Brokers[0])
	if err != nil {
		return nil, fmt.Errorf("failed to connect to kafka broker: %w", err)
	}
	conn.Close()

	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}

	return &KafkaClient{config: config, writer: writer}, nil
}

func (c *KafkaClient) Close() error {
	return c.writer.Close()
}

// PublishMessage, veriyi zarfa sarıp ana topic'e yazar.
func (c *KafkaClient) PublishMessage(ctx context.Context, msgType MessageType, data interface{}) error {
	msg, err := NewMessage(msgType, c.config.ServiceName, data)
	if err != nil {
		return fmt.Errorf("failed to build message: %w", err)
	}
	return c.writeMessage(ctx, c.writer, msg)
}

func (c *KafkaClient) writeMessage(ctx context.Context, writer *kafka.Writer, msg *Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	err = writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(string(msg.Type)),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("failed to write kafka message: %w", err)
	}
	return nil
}

// publishTo, retry/DLQ gibi ikincil topic'lere tek seferlik yazım yapar.
func (c *KafkaClient) publishTo(ctx context.Context, topic string, msg *Message) error {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(c.config.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
	defer writer.Close()
	return c.writeMessage(ctx, writer, msg)
}

// ConsumeMessages, verilen topic'i grup kimliğiyle tüketir ve her mesaj için
// handler'ı çağırır. Handler hata dönerse mesaj retry akışına girer; mesaj
// her durumda commit edilir, teslim tekrarını retry topic'i üstlenir.
func (c *KafkaClient) ConsumeMessages(ctx context.Context, handler MessageHandler, topic, groupID *string) error {
	readTopic := c.config.Topic
	if topic != nil {
		readTopic = *topic
	}
	readGroup := c.config.GroupID
	if groupID != nil {
		readGroup = *groupID
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  c.config.Brokers,
		GroupID:  readGroup,
		Topic:    readTopic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer reader.Close()

	for {
		raw, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("failed to fetch kafka message: %w", err)
		}

		var msg Message
		if err := json.Unmarshal(raw.Value, &msg); err != nil {
			log.Printf("Skipping malformed message on topic '%s': %v", readTopic, err)
			_ = reader.CommitMessages(ctx, raw)
			continue
		}

		if err := handler(ctx, &msg); err != nil {
			log.Printf("Handler failed for message %s (%s): %v", msg.ID, msg.Type, err)
			c.routeFailed(ctx, &msg)
		}

		if err := reader.CommitMessages(ctx, raw); err != nil {
			return fmt.Errorf("failed to commit kafka message: %w", err)
		}
	}
}

// routeFailed, başarısız mesajı deneme sayısına göre retry veya DLQ
// topic'ine taşır.
func (c *KafkaClient) routeFailed(ctx context.Context, msg *Message) {
	if !c.config.EnableRetry {
		return
	}

	msg.RetryCount++
	target := c.config.RetryTopic
	if msg.RetryCount > c.config.MaxRetries {
		target = c.config.DLQTopic
		log.Printf("Message %s exceeded %d retries, moving to DLQ", msg.ID, c.config.MaxRetries)
	}
	if err := c.publishTo(ctx, target, msg); err != nil {
		log.Printf("Failed to route message %s to '%s': %v", msg.ID, target, err)
	}
}

// ConsumeDLQWithRecovery, DLQ'daki mesajları periyodik olarak yeniden işler.
// Burada da başarısız olan mesaj DLQ'da kalır; veri kaybedilmez.
func (c *KafkaClient) ConsumeDLQWithRecovery(ctx context.Context, handler MessageHandler) error {
	groupID := c.config.ServiceName + "-dlq-group"
	topic := c.config.DLQTopic

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  c.config.Brokers,
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer reader.Close()

	for {
		raw, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("failed to fetch DLQ message: %w", err)
		}

		var msg Message
		if err := json.Unmarshal(raw.Value, &msg); err == nil {
			if err := handler(ctx, &msg); err != nil {
				log.Printf("DLQ recovery failed for message %s: %v", msg.ID, err)
				_ = c.publishTo(ctx, topic, &msg)
			}
		}

		if err := reader.CommitMessages(ctx, raw); err != nil {
			return fmt.Errorf("failed to commit DLQ message: %w", err)
		}
	}
}
