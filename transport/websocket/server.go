package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/internal/monopoly"
	"github.com/rocketscienceinc/monopoly-backend/internal/pkg"
	"github.com/rocketscienceinc/monopoly-backend/internal/replica"
)

type gamePlayUseCase interface {
	Submit(ctx context.Context, gameID string, intent monopoly.Intent) error
	GameByID(gameID string) (*entity.Game, bool)
}

type playerUseCase interface {
	GetOrCreatePlayer(ctx context.Context, id, name string) (*entity.Player, error)
}

// connection wraps the hijacked stream; the mutex serializes concurrent
// writes from the read loop and the broadcast fan-out.
type connection struct {
	bufrw *bufio.ReadWriter
	mu    sync.Mutex
}

// Server is the relay between participants and the host pipeline. It never
// applies game logic itself: intents go to the host, snapshots come back.
type Server struct {
	logger   *slog.Logger
	gamePlay gamePlayUseCase
	players  playerUseCase

	connectionsMutex sync.RWMutex
	connections      map[string]*connection

	handlers map[string]func(ctx context.Context, message *Message, conn *connection) error
}

func New(logger *slog.Logger, gamePlay gamePlayUseCase, players playerUseCase) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gamePlay:    gamePlay,
		players:     players,
		connections: make(map[string]*connection),
		handlers:    make(map[string]func(context.Context, *Message, *connection) error),
	}

	server.handlers["connect"] = server.handleConnect
	server.handlers["game:intent"] = server.handleGameIntent
	server.handlers["game:state"] = server.handleGameState

	return server
}

// Start - starts the relay server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// BroadcastSnapshot pushes the complete state to every human seat of the
// game. It satisfies service.BroadcastFunc.
func (that *Server) BroadcastSnapshot(gameID string, snapshot replica.Snapshot) {
	log := that.logger.With("method", "BroadcastSnapshot", "gameID", gameID)

	for _, player := range snapshot.Game.Players {
		if player.IsBot() {
			continue
		}

		that.connectionsMutex.RLock()
		conn, ok := that.connections[player.ID]
		that.connectionsMutex.RUnlock()

		if !ok {
			continue
		}

		payload := Payload{
			GameID:   gameID,
			Snapshot: &snapshot,
		}

		if err := that.sendMessage(conn, "game:snapshot", payload); err != nil {
			log.Error("failed to send snapshot", "playerID", player.ID, "error", err)
		}
	}
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	if req.Header.Get("Upgrade") != "websocket" {
		http.Error(writer, "not a websocket upgrade", http.StatusBadRequest)
		return
	}

	key := req.Header.Get("Sec-WebSocket-Key")
	acceptKey := pkg.GenerateAcceptKey(key)

	writer.Header().Set("Upgrade", "websocket")
	writer.Header().Set("Connection", "Upgrade")
	writer.Header().Set("Sec-WebSocket-Accept", acceptKey)
	writer.WriteHeader(http.StatusSwitchingProtocols)

	hijacker, ok := writer.(http.Hijacker)
	if !ok {
		log.Error("web server does not support hijacking")
		return
	}

	netConn, bufrw, err := hijacker.Hijack()
	if err != nil {
		log.Error("failed to hijack connection", "error", err)
		return
	}

	defer netConn.Close()

	log.Info("WebSocket connection established")

	conn := &connection{bufrw: bufrw}

	if err = that.handleMessages(ctx, conn); err != nil && !errors.Is(err, io.EOF) {
		log.Error("error handling messages", "error", err)
	}

	that.dropConnection(conn)
}

// handleMessages - processes messages from the participant until the
// connection dies.
func (that *Server) handleMessages(ctx context.Context, conn *connection) error {
	log := that.logger.With("method", "handleMessages")

	for {
		reqBody, err := readRequest(conn.bufrw)
		if err != nil {
			return err
		}

		if reqBody == nil {
			continue
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			continue
		}

		if err = handler(ctx, &message, conn); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) dropConnection(conn *connection) {
	log := that.logger.With("method", "dropConnection")

	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	for playerID, known := range that.connections {
		if known == conn {
			delete(that.connections, playerID)
			log.Info("player disconnected", "playerID", playerID)
			return
		}
	}
}
