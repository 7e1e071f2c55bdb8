package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"word-game-service/domain"

	"github.com/redis/go-redis/v9"
)

// SessionManager, bearer-token -> kimlik eşlemesini redis'te tutar. Kimlik
// doğrulamanın kendisi auth servisinin işidir; burada sadece token'dan
// kullanıcı adı çözülür.
type SessionManager struct {
	client *redis.Client
}

func NewSessionManager(redisAddr string, password string, db int) (*SessionManager, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &SessionManager{client: client}, nil
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// GetSession, token'a karşılık gelen oturum verisini döndürür.
func (sm *SessionManager) GetSession(ctx context.Context, token string) (*domain.SessionData, error) {
	raw, err := sm.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("%w: session not found", domain.ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}

	var data domain.SessionData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// CreateSession, testler ve yerel geliştirme için oturum yazar; üretimde
// oturumları auth servisi oluşturur.
func (sm *SessionManager) CreateSession(ctx context.Context, token string, data *domain.SessionData, duration time.Duration) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return sm.client.Set(ctx, sessionKey(token), raw, duration).Err()
}

func (sm *SessionManager) DeleteSession(ctx context.Context, token string) error {
	return sm.client.Del(ctx, sessionKey(token)).Err()
}
