package bootstrap

import (
	"time"

	"word-game-service/config"
	httpGameHandler "word-game-service/internal/api/http/handler"
	wsHandler "word-game-service/internal/api/ws/handler"
	"word-game-service/internal/handler"
	"word-game-service/internal/server"

	"github.com/gofiber/fiber/v2"
)

func SetupServer(config config.Config, httpHandlers map[string]interface{}, wsHandlers map[string]interface{}, sessionManager SessionManager) *fiber.App {

	serverConfig := server.Config{
		Port:         config.Server.Port,
		IdleTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	app := server.NewFiberApp(serverConfig)

	createRoomHandler := httpHandlers["create-room"].(*httpGameHandler.CreateRoomHandler)
	joinRoomHandler := httpHandlers["join-room"].(*httpGameHandler.JoinRoomHandler)
	getRoomsHandler := httpHandlers["get-rooms"].(*httpGameHandler.GetRoomsHandler)
	startGameHandler := httpHandlers["start-game"].(*httpGameHandler.StartGameHandler)
	getStateHandler := httpHandlers["get-state"].(*httpGameHandler.GetStateHandler)
	submitAnswersHandler := httpHandlers["submit-all"].(*httpGameHandler.SubmitAnswersHandler)
	submitAnswerHandler := httpHandlers["submit-answer"].(*httpGameHandler.SubmitAnswerHandler)
	submitWordHandler := httpHandlers["submit-word"].(*httpGameHandler.SubmitWordHandler)
	kickPlayerHandler := httpHandlers["kick-player"].(*httpGameHandler.KickPlayerHandler)
	vetoWordHandler := httpHandlers["veto-word"].(*httpGameHandler.VetoWordHandler)
	getAnswersHandler := httpHandlers["get-answers"].(*httpGameHandler.GetAnswersHandler)
	checkAnswerHandler := httpHandlers["check-answer"].(*httpGameHandler.CheckAnswerHandler)
	requestVoteHandler := httpHandlers["request-vote"].(*httpGameHandler.RequestVoteHandler)
	castVoteHandler := httpHandlers["cast-vote"].(*httpGameHandler.CastVoteHandler)
	overrideAnswerHandler := httpHandlers["override-answer"].(*httpGameHandler.OverrideAnswerHandler)
	questionSetsHandler := httpHandlers["question-sets"].(*httpGameHandler.ListQuestionSetsHandler)
	createQuestionSetHandler := httpHandlers["create-question-set"].(*httpGameHandler.CreateQuestionSetHandler)

	auth := handler.NewAuthMiddleware(sessionManager)

	app.Post("/create-room", auth, handler.HandleWithFiber[httpGameHandler.CreateRoomRequest, httpGameHandler.CreateRoomResponse](createRoomHandler))
	app.Post("/join-room/:room_name", auth, handler.HandleWithFiber[httpGameHandler.JoinRoomRequest, httpGameHandler.JoinRoomResponse](joinRoomHandler))
	app.Get("/rooms", auth, handler.HandleWithFiber[httpGameHandler.GetRoomsRequest, httpGameHandler.GetRoomsResponse](getRoomsHandler))
	app.Post("/start-game/:room_name", auth, handler.HandleWithFiber[httpGameHandler.StartGameRequest, httpGameHandler.StartGameResponse](startGameHandler))
	app.Get("/state/:room_name", auth, handler.HandleWithFiber[httpGameHandler.GetStateRequest, httpGameHandler.GetStateResponse](getStateHandler))
	app.Post("/submit-all/:room_name", auth, handler.HandleWithFiber[httpGameHandler.SubmitAnswersRequest, httpGameHandler.SubmitAnswersResponse](submitAnswersHandler))
	app.Post("/submit-answer/:room_name", auth, handler.HandleWithFiber[httpGameHandler.SubmitAnswerRequest, httpGameHandler.SubmitAnswerResponse](submitAnswerHandler))
	app.Post("/submit-word/:room_name", auth, handler.HandleWithFiber[httpGameHandler.SubmitWordRequest, httpGameHandler.SubmitWordResponse](submitWordHandler))
	app.Post("/kick-player/:room_name", auth, handler.HandleWithFiber[httpGameHandler.KickPlayerRequest, httpGameHandler.KickPlayerResponse](kickPlayerHandler))
	app.Post("/veto-word/:room_name", auth, handler.HandleWithFiber[httpGameHandler.VetoWordRequest, httpGameHandler.VetoWordResponse](vetoWordHandler))
	app.Get("/answers/:room_name", auth, handler.HandleWithFiber[httpGameHandler.GetAnswersRequest, httpGameHandler.GetAnswersResponse](getAnswersHandler))
	app.Post("/check-answer/:room_name", auth, handler.HandleWithFiber[httpGameHandler.CheckAnswerRequest, httpGameHandler.CheckAnswerResponse](checkAnswerHandler))
	app.Post("/request-vote/:room_name", auth, handler.HandleWithFiber[httpGameHandler.RequestVoteRequest, httpGameHandler.RequestVoteResponse](requestVoteHandler))
	app.Post("/cast-vote/:room_name", auth, handler.HandleWithFiber[httpGameHandler.CastVoteRequest, httpGameHandler.CastVoteResponse](castVoteHandler))
	app.Post("/override-answer/:room_name", auth, handler.HandleWithFiber[httpGameHandler.OverrideAnswerRequest, httpGameHandler.OverrideAnswerResponse](overrideAnswerHandler))
	app.Get("/question-sets", auth, handler.HandleWithFiber[httpGameHandler.ListQuestionSetsRequest, httpGameHandler.ListQuestionSetsResponse](questionSetsHandler))
	app.Post("/question-sets", auth, handler.HandleWithFiber[httpGameHandler.CreateQuestionSetRequest, httpGameHandler.CreateQuestionSetResponse](createQuestionSetHandler))

	wsRoute := app.Group("/ws")
	stateStreamHandler := wsHandlers["state-stream"].(*wsHandler.StateStreamHandler)
	wsRoute.Get("/state/:room_name", handler.HandleWithFiberWS[wsHandler.StateStreamRequest](stateStreamHandler))

	return app
}
