package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-agent/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-agent/pkg/handlers"
)

type PlayerRequest struct {
	PlayerID string `json:"player_id"`
}

type NewGameRequest struct {
	PlayerID string `json:"player_id"`
	Mark     string `json:"mark"`
}

type TurnRequest struct {
	PlayerID string `json:"player_id"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
}

func (that *Server) handleNewPlayer(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleNewPlayer")

	var req PlayerRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handlers.WriteError(w, http.StatusBadRequest, "malformed request body")
			return
		}
	}

	player, err := that.uGame.GetOrCreatePlayer(r.Context(), req.PlayerID)
	if err != nil {
		log.Error("failed to get or create player", "error", err)
		that.writeUseCaseError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, player)
}

func (that *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleNewGame")

	var req NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "player_id is required")
		return
	}

	game, err := that.uGame.GetOrCreateGame(r.Context(), req.PlayerID, req.Mark)
	if err != nil {
		log.Error("failed to get or create game", "playerID", req.PlayerID, "error", err)
		that.writeUseCaseError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, game)
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("player_id")
	if playerID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "player_id is required")
		return
	}

	game, err := that.uGame.GetGame(r.Context(), playerID)
	if err != nil {
		that.writeUseCaseError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, game)
}

func (that *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleTurn")

	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "player_id, row and col are required")
		return
	}

	game, err := that.uGame.MakeTurn(r.Context(), req.PlayerID, req.Row, req.Col)
	if err != nil {
		log.Info("turn rejected", "playerID", req.PlayerID, "error", err)
		that.writeUseCaseError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, game)
}

func (that *Server) writeUseCaseError(w http.ResponseWriter, err error) {
	handlers.WriteError(w, statusFor(err), err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrPlayerNotFound), errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrGameIsNotStarted):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrInvalidCell), errors.Is(err, tictactoe.ErrUnknownMark):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
