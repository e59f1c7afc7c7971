package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/pkg/handlers"
)

const maxBodyBytes = 1 << 10

type moveRequest struct {
	Cell *int `json:"cell"`
}

type errorResponse struct {
	Error  string                `json:"error"`
	Reason apperror.RejectReason `json:"reason,omitempty"`
	Round  *entity.Snapshot      `json:"round,omitempty"`
}

func (that *Server) handleGetRound(w http.ResponseWriter, r *http.Request) {
	snapshot, err := that.rounds.GetSnapshot(r.Context())
	if err != nil {
		that.sendError(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}

	that.sendSnapshot(w, snapshot)
}

func (that *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		that.sendError(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if req.Cell == nil {
		that.sendError(w, http.StatusBadRequest, errorResponse{Error: "cell is required"})
		return
	}

	snapshot, err := that.rounds.MakeMove(r.Context(), *req.Cell)

	var rejected *apperror.MoveRejected

	switch {
	case errors.As(err, &rejected):
		that.sendError(w, http.StatusConflict, errorResponse{
			Error:  err.Error(),
			Reason: rejected.Reason,
			Round:  &snapshot,
		})
	case errors.Is(err, apperror.ErrInvalidInput):
		that.sendError(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case err != nil:
		that.sendError(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	default:
		that.sendSnapshot(w, snapshot)
	}
}

func (that *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	snapshot, err := that.rounds.ResetRound(r.Context())
	if err != nil {
		that.sendError(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}

	that.sendSnapshot(w, snapshot)
}

func (that *Server) sendSnapshot(w http.ResponseWriter, snapshot entity.Snapshot) {
	if err := handlers.WriteJSON(w, http.StatusOK, snapshot); err != nil {
		that.logger.Error("failed to write snapshot", "error", err)
	}
}

func (that *Server) sendError(w http.ResponseWriter, status int, resp errorResponse) {
	if err := handlers.WriteJSON(w, status, resp); err != nil {
		that.logger.Error("failed to write error response", "status", status, "error", err)
	}
}
