package bootstrap

import (
	"context"

	"word-game-service/config"
	"word-game-service/internal/initializer"
	"word-game-service/pkg/messaging"
)

type Messaging interface {
	Close() error
	PublishMessage(ctx context.Context, msgType messaging.MessageType, data interface{}) error
}

type MessageHandler interface {
	Handle(ctx context.Context, msg *messaging.Message) error
}

func SetupMessaging(handlers map[messaging.MessageType]MessageHandler, config config.Config) Messaging {
	messageRouter := func(ctx context.Context, msg *messaging.Message) error {
		handler, ok := handlers[msg.Type]
		if !ok {
			return nil
		}
		return handler.Handle(ctx, msg)
	}

	return initializer.InitMessaging(config, messageRouter)
}
