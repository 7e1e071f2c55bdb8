package httpUsecase

import (
	"context"
	"net/http"

	"word-game-service/domain"
)

type ListQuestionSetsUseCase interface {
	Execute(ctx context.Context) ([]domain.QuestionSet, int, error)
}

type listQuestionSetsUseCase struct {
	repository PostgresRepository
}

func NewListQuestionSetsUseCase(repository PostgresRepository) ListQuestionSetsUseCase {
	return &listQuestionSetsUseCase{repository: repository}
}

func (u *listQuestionSetsUseCase) Execute(ctx context.Context) ([]domain.QuestionSet, int, error) {
	sets, err := u.repository.ListQuestionSets(ctx)
	if err != nil {
		return nil, statusFromError(err), err
	}
	return sets, http.StatusOK, nil
}

type CreateQuestionSetUseCase interface {
	Execute(ctx context.Context, name string, prompts []string) (*domain.QuestionSet, int, error)
}

type createQuestionSetUseCase struct {
	repository PostgresRepository
}

func NewCreateQuestionSetUseCase(repository PostgresRepository) CreateQuestionSetUseCase {
	return &createQuestionSetUseCase{repository: repository}
}

func (u *createQuestionSetUseCase) Execute(ctx context.Context, name string, prompts []string) (*domain.QuestionSet, int, error) {
	set := domain.QuestionSet{
		Name:    name,
		Prompts: prompts,
	}

	id, err := u.repository.CreateQuestionSet(ctx, set)
	if err != nil {
		return nil, statusFromError(err), err
	}
	set.ID = id

	return &set, http.StatusCreated, nil
}
