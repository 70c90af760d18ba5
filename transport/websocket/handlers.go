package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/monopoly-backend/internal/replica"
	"github.com/rocketscienceinc/monopoly-backend/internal/service"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleConnect")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	var id, name string
	if payloadReq.Player != nil {
		id = payloadReq.Player.ID
		name = payloadReq.Player.Name
	}

	player, err := that.players.GetOrCreatePlayer(ctx, id, name)
	if err != nil {
		log.Error("failed to get or create player", "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to create a new player")
	}

	that.connectionsMutex.Lock()
	that.connections[player.ID] = conn
	that.connectionsMutex.Unlock()

	payloadResp := Payload{
		Player: player,
	}

	if err = that.sendMessage(conn, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("player connected", "playerID", player.ID)

	return nil
}

// handleGameIntent forwards one intent to the host pipeline. Accepted
// intents answer through the snapshot broadcast; rejections only answer
// the sender.
func (that *Server) handleGameIntent(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleGameIntent")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Intent == nil {
		return that.sendErrorResponse(conn, msg.Action, "intent is required")
	}

	if payloadReq.GameID == "" {
		return that.sendErrorResponse(conn, msg.Action, "game_id is required")
	}

	err := that.gamePlay.Submit(ctx, payloadReq.GameID, *payloadReq.Intent)
	if errors.Is(err, service.ErrMatchNotFound) {
		return that.sendErrorResponse(conn, msg.Action, "game not found")
	}

	if err != nil {
		log.Warn("intent rejected",
			"gameID", payloadReq.GameID,
			"kind", payloadReq.Intent.Kind,
			"error", err,
		)
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	}

	return nil
}

// handleGameState answers with the newest snapshot; reconnecting
// participants use it to resync.
func (that *Server) handleGameState(_ context.Context, msg *Message, conn *connection) error {
	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.GameID == "" {
		return that.sendErrorResponse(conn, msg.Action, "game_id is required")
	}

	game, ok := that.gamePlay.GameByID(payloadReq.GameID)
	if !ok {
		return that.sendErrorResponse(conn, msg.Action, "game not found")
	}

	snapshot := replica.NewSnapshot(game)
	payloadResp := Payload{
		GameID:   game.ID,
		Snapshot: &snapshot,
	}

	if err := that.sendMessage(conn, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(conn *connection, action, errorMsg string) error {
	payload := Payload{Error: errorMsg}
	if err := that.sendMessage(conn, action, payload); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
