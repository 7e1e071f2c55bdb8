package handler

import (
	"context"

	httpUsecase "word-game-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CastVoteRequest struct {
	RoomName string    `params:"room_name" validate:"required"`
	AnswerID uuid.UUID `json:"answer_id" validate:"required"`
	Vote     *bool     `json:"vote" validate:"required"`
}

type CastVoteResponse struct {
	VoteYes int `json:"vote_yes"`
	VoteNo  int `json:"vote_no"`
}

type CastVoteHandler struct {
	usecase httpUsecase.CastVoteUseCase
}

func NewCastVoteHandler(usecase httpUsecase.CastVoteUseCase) *CastVoteHandler {
	return &CastVoteHandler{
		usecase: usecase,
	}
}

func (h *CastVoteHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *CastVoteRequest) (*CastVoteResponse, int, error) {
	username, err := currentUsername(fbrCtx)
	if err != nil {
		return nil, fiber.StatusUnauthorized, err
	}

	tally, status, err := h.usecase.Execute(ctx, req.RoomName, req.AnswerID, username, *req.Vote)
	if err != nil {
		return nil, status, err
	}
	return &CastVoteResponse{VoteYes: tally.VoteYes, VoteNo: tally.VoteNo}, status, nil
}
