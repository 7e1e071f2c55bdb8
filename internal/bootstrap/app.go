package bootstrap

import (
	"context"
	"time"

	"word-game-service/config"
	"word-game-service/internal/api/ws/hub"
	"word-game-service/internal/game"
	"word-game-service/internal/recorder"
	"word-game-service/pkg/graceful"
	"word-game-service/pkg/messaging"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type App struct {
	config          config.Config
	postgresRepo    PostgresRepository
	sessionManager  SessionManager
	roomEvents      RoomEventManager
	kafka           Messaging
	registry        *game.Registry
	adjudicator     *game.Adjudicator
	wsHub           *hub.Hub
	fiberApp        *fiber.App
	httpHandlers    map[string]interface{}
	wsHandlers      map[string]interface{}
	messageHandlers map[messaging.MessageType]MessageHandler
}

func NewApp(config config.Config) *App {
	app := &App{
		config: config,
	}
	app.initDependencies()
	return app
}

func (a *App) initDependencies() {
	a.postgresRepo = InitDatabase(a.config)
	a.sessionManager = InitSessionRedis(a.config)
	a.roomEvents = InitRoomRedis(a.config)
	a.messageHandlers = SetupMessageHandlers(a.postgresRepo)
	a.kafka = SetupMessaging(a.messageHandlers, a.config)

	// Kayıt defteri kurulurken yayıncı listesi boştur; kaydedici kayıt
	// defterine ihtiyaç duyduğu için liste sonradan doldurulur.
	publishers := &game.Publishers{}
	timers := game.NewTimerService()
	a.registry = game.NewRegistry(timers, publishers, game.ParseLetterRule(a.config.Game.ChainLetterRule))

	rec := recorder.New(a.registry, a.postgresRepo, a.kafka)
	*publishers = append(*publishers, a.roomEvents, rec)

	a.adjudicator = game.NewAdjudicator(InitJudge(a.config))
	a.wsHub = hub.NewHub(a.roomEvents)

	a.httpHandlers = SetupHTTPHandlers(a.config, a.registry, a.adjudicator, a.postgresRepo)
	a.wsHandlers = SetupWSHandlers(a.wsHub, a.registry, a.sessionManager)
	a.fiberApp = SetupServer(a.config, a.httpHandlers, a.wsHandlers, a.sessionManager)
}

func (a *App) Start() {
	go func() {
		port := a.config.Server.Port
		if err := a.fiberApp.Listen(":" + port); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
		}
	}()

	zap.L().Info("Server started on port", zap.String("port", a.config.Server.Port))

	defer func() {
		if err := a.postgresRepo.Close(); err != nil {
			zap.L().Error("Failed to close database", zap.Error(err))
		}
		if err := a.kafka.Close(); err != nil {
			zap.L().Error("Failed to close kafka client", zap.Error(err))
		}
	}()

	graceful.WaitForShutdown(a.fiberApp, 5*time.Second, context.Background())
}
