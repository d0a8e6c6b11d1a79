package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleConnect")

	var payloadReq Payload
	if len(msg.Payload) != 0 {
		if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
			return that.sendErrorResponse(conn, actionError, "malformed payload")
		}
	}

	var playerID string
	if payloadReq.Player != nil {
		playerID = payloadReq.Player.ID
	}

	player, err := that.uGame.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to create or get player", "error", err)
		return that.sendErrorResponse(conn, actionError, "failed to create a new player")
	}

	payloadResp := Payload{Player: player}

	if player.GameID != "" {
		game, err := that.uGame.GetGame(ctx, player.ID)
		if err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
			log.Error("failed to get game", "gameID", player.GameID, "error", err)
			return that.sendErrorResponse(conn, actionError, "failed to get the game")
		}
		payloadResp.Game = game
	}

	if err = that.sendMessage(conn, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player", "playerID", player.ID)

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleNewGame")

	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return that.sendErrorResponse(conn, actionError, "malformed payload")
	}

	if payloadReq.Player == nil || payloadReq.Player.ID == "" {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(conn, actionError, "Player is required")
	}

	game, err := that.uGame.GetOrCreateGame(ctx, payloadReq.Player.ID, payloadReq.Mark)
	if err != nil {
		log.Error("failed to create or get game", "playerID", payloadReq.Player.ID, "error", err)
		return that.sendErrorResponse(conn, actionError, fmt.Sprintf("failed to create a new game: %v", err))
	}

	log.Info("game ready", "gameID", game.ID, "playerID", payloadReq.Player.ID)

	return that.sendMessage(conn, msg.Action, Payload{Player: game.Human(), Game: game})
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleGameTurn")

	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return that.sendErrorResponse(conn, actionError, "malformed payload")
	}

	if payloadReq.Player == nil || payloadReq.Player.ID == "" {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(conn, actionError, "Player is required")
	}

	if payloadReq.Row == nil || payloadReq.Col == nil {
		log.Error("Cell is missing in payload")
		return that.sendErrorResponse(conn, actionError, "row and col are required")
	}

	log = log.With("playerID", payloadReq.Player.ID)

	game, err := that.uGame.MakeTurn(ctx, payloadReq.Player.ID, *payloadReq.Row, *payloadReq.Col)
	if err != nil {
		log.Info("turn rejected", "error", err)
		return that.sendErrorResponse(conn, actionError, err.Error())
	}

	log.Info("Player made a turn", "gameID", game.ID, "status", game.Status)

	return that.sendMessage(conn, msg.Action, Payload{Player: game.Human(), Game: game})
}
