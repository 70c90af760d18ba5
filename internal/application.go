package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/monopoly-backend/internal/config"
	"github.com/rocketscienceinc/monopoly-backend/internal/monopoly"
	"github.com/rocketscienceinc/monopoly-backend/internal/repository"
	"github.com/rocketscienceinc/monopoly-backend/internal/repository/storage"
	"github.com/rocketscienceinc/monopoly-backend/internal/service"
	"github.com/rocketscienceinc/monopoly-backend/transport/rest"
	"github.com/rocketscienceinc/monopoly-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	playerRepo := repository.NewPlayerRepository(redisStorage.Connection)
	gameRepo := repository.NewGameRepository(redisStorage.Connection)
	roomRepo := repository.NewRoomRepository(redisStorage.Connection)

	playerService := service.NewPlayerService(playerRepo)
	roomService := service.NewRoomService(roomRepo)

	rules := monopoly.Rules{
		StartMoney:     conf.Game.StartMoney,
		PassStartBonus: conf.Game.PassStartBonus,
		BailFee:        conf.Game.BailFee,
	}
	engine := monopoly.NewEngine(rules, monopoly.NewRandomizer(timeSeed()))
	decider := service.NewBalanceDecider(conf.Game.BotReserve)
	gamePlay := service.NewGamePlay(logger, engine, decider, gameRepo, conf.Game.CardDelay, conf.Game.BotDelay)

	wsServer := websocket.New(logger, gamePlay, playerService)
	gamePlay.SetBroadcast(wsServer.BroadcastSnapshot)

	restServer := rest.New(logger, roomService, gamePlay)

	// run room directory server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := restServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run relay server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func timeSeed() int64 {
	return time.Now().UnixNano()
}
