package bootstrap

import (
	"time"

	"word-game-service/config"
	httpHandler "word-game-service/internal/api/http/handler"
	httpUsecase "word-game-service/internal/api/http/usecase"
	kafkaHandler "word-game-service/internal/api/kafka"
	wsHandler "word-game-service/internal/api/ws/handler"
	"word-game-service/internal/api/ws/hub"
	wsUsecase "word-game-service/internal/api/ws/usecase"
	"word-game-service/internal/game"
	"word-game-service/pkg/messaging"
)

func SetupHTTPHandlers(cfg config.Config, registry *game.Registry, adjudicator *game.Adjudicator, postgresRepository PostgresRepository) map[string]interface{} {
	defaultTimeLimit := time.Duration(cfg.Game.DefaultTimeLimit) * time.Second

	createRoomUseCase := httpUsecase.NewCreateRoomUseCase(registry, postgresRepository, defaultTimeLimit)
	createRoomHandler := httpHandler.NewCreateRoomHandler(createRoomUseCase)

	joinRoomUseCase := httpUsecase.NewJoinRoomUseCase(registry)
	joinRoomHandler := httpHandler.NewJoinRoomHandler(joinRoomUseCase)

	getRoomsUseCase := httpUsecase.NewGetRoomsUseCase(registry)
	getRoomsHandler := httpHandler.NewGetRoomsHandler(getRoomsUseCase)

	startGameUseCase := httpUsecase.NewStartGameUseCase(registry, postgresRepository, cfg.Game.DefaultRounds)
	startGameHandler := httpHandler.NewStartGameHandler(startGameUseCase)

	getStateUseCase := httpUsecase.NewGetStateUseCase(registry)
	getStateHandler := httpHandler.NewGetStateHandler(getStateUseCase)

	submitAnswersUseCase := httpUsecase.NewSubmitAnswersUseCase(registry)
	submitAnswersHandler := httpHandler.NewSubmitAnswersHandler(submitAnswersUseCase)

	submitAnswerUseCase := httpUsecase.NewSubmitAnswerUseCase(registry)
	submitAnswerHandler := httpHandler.NewSubmitAnswerHandler(submitAnswerUseCase)

	submitWordUseCase := httpUsecase.NewSubmitWordUseCase(registry)
	submitWordHandler := httpHandler.NewSubmitWordHandler(submitWordUseCase)

	kickPlayerUseCase := httpUsecase.NewKickPlayerUseCase(registry)
	kickPlayerHandler := httpHandler.NewKickPlayerHandler(kickPlayerUseCase)

	vetoWordUseCase := httpUsecase.NewVetoWordUseCase(registry)
	vetoWordHandler := httpHandler.NewVetoWordHandler(vetoWordUseCase)

	getAnswersUseCase := httpUsecase.NewGetAnswersUseCase(registry)
	getAnswersHandler := httpHandler.NewGetAnswersHandler(getAnswersUseCase)

	checkAnswerUseCase := httpUsecase.NewCheckAnswerUseCase(registry, adjudicator)
	checkAnswerHandler := httpHandler.NewCheckAnswerHandler(checkAnswerUseCase)

	requestVoteUseCase := httpUsecase.NewRequestVoteUseCase(registry, adjudicator)
	requestVoteHandler := httpHandler.NewRequestVoteHandler(requestVoteUseCase)

	castVoteUseCase := httpUsecase.NewCastVoteUseCase(registry, adjudicator)
	castVoteHandler := httpHandler.NewCastVoteHandler(castVoteUseCase)

	overrideAnswerUseCase := httpUsecase.NewOverrideAnswerUseCase(registry, adjudicator)
	overrideAnswerHandler := httpHandler.NewOverrideAnswerHandler(overrideAnswerUseCase)

	listQuestionSetsUseCase := httpUsecase.NewListQuestionSetsUseCase(postgresRepository)
	listQuestionSetsHandler := httpHandler.NewListQuestionSetsHandler(listQuestionSetsUseCase)

	createQuestionSetUseCase := httpUsecase.NewCreateQuestionSetUseCase(postgresRepository)
	createQuestionSetHandler := httpHandler.NewCreateQuestionSetHandler(createQuestionSetUseCase)

	return map[string]interface{}{
		"create-room":         createRoomHandler,
		"join-room":           joinRoomHandler,
		"get-rooms":           getRoomsHandler,
		"start-game":          startGameHandler,
		"get-state":           getStateHandler,
		"submit-all":          submitAnswersHandler,
		"submit-answer":       submitAnswerHandler,
		"submit-word":         submitWordHandler,
		"kick-player":         kickPlayerHandler,
		"veto-word":           vetoWordHandler,
		"get-answers":         getAnswersHandler,
		"check-answer":        checkAnswerHandler,
		"request-vote":        requestVoteHandler,
		"cast-vote":           castVoteHandler,
		"override-answer":     overrideAnswerHandler,
		"question-sets":       listQuestionSetsHandler,
		"create-question-set": createQuestionSetHandler,
	}
}

func SetupMessageHandlers(postgresRepository PostgresRepository) map[messaging.MessageType]MessageHandler {
	createdUserUseCase := httpUsecase.NewCreateUserUseCase(postgresRepository)
	createdUserHandler := kafkaHandler.NewCreatedUserHandler(createdUserUseCase)

	return map[messaging.MessageType]MessageHandler{
		messaging.MessageTypeUserCreated: createdUserHandler,
	}
}

func SetupWSHandlers(wsHub *hub.Hub, registry *game.Registry, sessionManager SessionManager) map[string]interface{} {
	stateStreamUseCase := wsUsecase.NewStateStreamUseCase(wsHub, registry)
	stateStreamHandler := wsHandler.NewStateStreamHandler(stateStreamUseCase, sessionManager)

	return map[string]interface{}{
		"state-stream": stateStreamHandler,
	}
}
