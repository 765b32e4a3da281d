package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository"
)

var ErrBadRequest = errors.New("bad request")

type uGame interface {
	NewGame(ctx context.Context, difficulty entity.Difficulty) (*entity.Session, error)
	GetGame(ctx context.Context, id string) (*entity.Session, error)
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Session, error)
	Reset(ctx context.Context, id string) (*entity.Session, error)
	SetDifficulty(ctx context.Context, id string, difficulty entity.Difficulty) (*entity.Session, error)
	DeleteGame(ctx context.Context, id string) error
}

type difficultyRequest struct {
	Difficulty string `json:"difficulty"`
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type gameResponse struct {
	Game    *entity.Session `json:"game"`
	Message string          `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handlers struct {
	logger *slog.Logger
	uGame  uGame

	defaultDifficulty entity.Difficulty
}

func NewHandlers(logger *slog.Logger, uGame uGame, defaultDifficulty entity.Difficulty) *Handlers {
	return &Handlers{
		logger: logger.With("component", "rest"),
		uGame:  uGame,

		defaultDifficulty: defaultDifficulty,
	}
}

// NewGame - the body is optional; without a difficulty the configured default is used.
func (that *Handlers) NewGame(w http.ResponseWriter, r *http.Request) {
	req := difficultyRequest{Difficulty: string(that.defaultDifficulty)}
	if err := decodeBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		that.writeError(w, "NewGame", err)
		return
	}

	if req.Difficulty == "" {
		req.Difficulty = string(that.defaultDifficulty)
	}

	difficulty, err := entity.ParseDifficulty(req.Difficulty)
	if err != nil {
		that.writeError(w, "NewGame", err)
		return
	}

	session, err := that.uGame.NewGame(r.Context(), difficulty)
	if err != nil {
		that.writeError(w, "NewGame", err)
		return
	}

	writeJSON(w, http.StatusCreated, newGameResponse(session))
}

func (that *Handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	session, err := that.uGame.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "GetGame", err)
		return
	}

	writeJSON(w, http.StatusOK, newGameResponse(session))
}

func (that *Handlers) MakeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, "MakeTurn", err)
		return
	}

	if req.Cell == nil {
		that.writeError(w, "MakeTurn", fmt.Errorf("%w: cell is required", ErrBadRequest))
		return
	}

	session, err := that.uGame.MakeTurn(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	if err != nil {
		that.writeError(w, "MakeTurn", err)
		return
	}

	writeJSON(w, http.StatusOK, newGameResponse(session))
}

func (that *Handlers) Reset(w http.ResponseWriter, r *http.Request) {
	session, err := that.uGame.Reset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "Reset", err)
		return
	}

	writeJSON(w, http.StatusOK, newGameResponse(session))
}

func (that *Handlers) SetDifficulty(w http.ResponseWriter, r *http.Request) {
	var req difficultyRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, "SetDifficulty", err)
		return
	}

	difficulty, err := entity.ParseDifficulty(req.Difficulty)
	if err != nil {
		that.writeError(w, "SetDifficulty", err)
		return
	}

	session, err := that.uGame.SetDifficulty(r.Context(), chi.URLParam(r, "id"), difficulty)
	if err != nil {
		that.writeError(w, "SetDifficulty", err)
		return
	}

	writeJSON(w, http.StatusOK, newGameResponse(session))
}

func (that *Handlers) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.uGame.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, "DeleteGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := statusCode(err)

	log := that.logger.With("method", method)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "error", err)
	} else {
		log.Debug("request rejected", "error", err, "status", status)
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// statusCode - maps domain errors to HTTP statuses.
func statusCode(err error) int {
	switch {
	case errors.Is(err, repository.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrUnknownDifficulty):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameAlreadyOver),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, repository.ErrConcurrentUpdate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func newGameResponse(session *entity.Session) gameResponse {
	return gameResponse{
		Game:    session,
		Message: session.Message(),
	}
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
