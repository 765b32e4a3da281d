package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	shutdownTimeout = 5 * time.Second
)

type uGame interface {
	NewGame(ctx context.Context, difficulty entity.Difficulty) (*entity.Session, error)
	GetGame(ctx context.Context, id string) (*entity.Session, error)
	PlayHuman(ctx context.Context, id string, cell int) (*entity.Session, error)
	PlayComputer(ctx context.Context, id string) (*entity.Session, error)
	Reset(ctx context.Context, id string) (*entity.Session, error)
	SetDifficulty(ctx context.Context, id string, difficulty entity.Difficulty) (*entity.Session, error)
}

type handlerFunc func(ctx context.Context, msg *Message, conn *connection) error

type Server struct {
	logger *slog.Logger
	uGame  uGame

	thinkingDelay     time.Duration
	defaultDifficulty entity.Difficulty
	upgrader          websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame, thinkingDelay time.Duration, defaultDifficulty entity.Difficulty) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,

		thinkingDelay:     thinkingDelay,
		defaultDifficulty: defaultDifficulty,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionGameNew] = server.handleNewGame
	server.handlers[actionGameGet] = server.handleGetGame
	server.handlers[actionGameTurn] = server.handleGameTurn
	server.handlers[actionGameReset] = server.handleReset
	server.handlers[actionGameDifficulty] = server.handleDifficulty

	return server
}

// Handler - the /ws endpoint; connections live until ctx is canceled or the peer leaves.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(ctx),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	ws, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn := &connection{ws: ws}
	defer conn.close()

	log.Info("WebSocket connection established", "remote", r.RemoteAddr)

	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go that.keepAlive(connCtx, conn)

	if err = that.handleMessages(connCtx, conn); err != nil {
		log.Info("WebSocket connection closed", "reason", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *connection) error {
	log := that.logger.With("method", "handleMessages")

	conn.ws.SetReadLimit(maxMessageSize)
	_ = conn.ws.SetReadDeadline(time.Now().Add(pongWait))
	conn.ws.SetPongHandler(func(string) error {
		return conn.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, reqBody, err := conn.ws.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var msg Message
		if err = json.Unmarshal(reqBody, &msg); err != nil {
			log.Debug("failed to unmarshal message", "error", err)
			if err = that.sendError(conn, actionError, "malformed message"); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[msg.Action]
		if !ok {
			log.Debug("unknown action", "action", msg.Action)
			if err = that.sendError(conn, msg.Action, "unknown action"); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, &msg, conn); err != nil {
			log.Error("error processing message", "action", msg.Action, "error", err)
		}
	}
}

// keepAlive - pings the peer so dead connections hit the read deadline.
func (that *Server) keepAlive(ctx context.Context, conn *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.ping(); err != nil {
				return
			}
		}
	}
}

// connection - serializes writes; gorilla allows one concurrent writer.
type connection struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (that *connection) writeJSON(v any) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	_ = that.ws.SetWriteDeadline(time.Now().Add(writeWait))

	return that.ws.WriteJSON(v)
}

func (that *connection) ping() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (that *connection) close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	_ = that.ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
	_ = that.ws.Close()
}
