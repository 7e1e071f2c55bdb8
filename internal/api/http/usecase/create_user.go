package httpUsecase

import (
	"context"

	"word-game-service/domain"

	"github.com/google/uuid"
)

// CreateUserUseCase, auth servisinin user_created olayını yerel kullanıcı
// tablosuna işler. HTTP'den değil kafka tüketicisinden çağrılır.
type CreateUserUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID, username, email string) error
}

type createUserUseCase struct {
	repository PostgresRepository
}

func NewCreateUserUseCase(repository PostgresRepository) CreateUserUseCase {
	return &createUserUseCase{repository: repository}
}

func (u *createUserUseCase) Execute(ctx context.Context, userID uuid.UUID, username, email string) error {
	return u.repository.CreateUser(ctx, domain.User{
		ID:       userID,
		Username: username,
		Email:    email,
	})
}
