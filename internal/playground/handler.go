package playground

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/elements/internal/stories"
	"github.com/vango-dev/elements/internal/telemetry"
)

const writeTimeout = 10 * time.Second

// Handler serves playground sessions over WebSocket. The story is chosen
// with the story query parameter:
//
//	GET /play/ws?story=tabs-account
//
// The server sends a state frame after connecting and after every action.
// Invalid frames produce an error frame and the session continues.
type Handler struct {
	manager  *Manager
	stories  *stories.Set
	upgrader websocket.Upgrader
	idle     time.Duration
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewHandler creates a Handler serving stories from set.
func NewHandler(manager *Manager, set *stories.Set) *Handler {
	return &Handler{
		manager: manager,
		stories: set,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 16384,
		},
		idle:    manager.config.IdleTimeout,
		metrics: manager.config.Metrics,
		logger:  manager.logger,
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	st, err := h.stories.Get(r.URL.Query().Get("story"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorFrame(err))
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.metrics.RecordWebSocketError("upgrade")
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sess, err := h.manager.Create(st)
	if err != nil {
		h.write(conn, ErrorFrame(err))
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "session limit"),
			time.Now().Add(writeTimeout))
		return
	}
	defer h.manager.Close(sess.ID)

	frame, err := sess.State()
	if err != nil {
		h.write(conn, ErrorFrame(err))
		return
	}
	if !h.write(conn, frame) {
		return
	}

	// A session closed by the manager (idle expiry, shutdown) ends the
	// connection; closing it unblocks the read loop.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-sess.Done():
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "session closed"),
				time.Now().Add(writeTimeout))
			conn.Close()
		case <-stop:
		}
	}()

	for {
		if h.idle > 0 {
			conn.SetReadDeadline(time.Now().Add(h.idle))
		}
		_, msg, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-sess.Done():
				h.logger.Debug("connection closed with session", "session_id", sess.ID)
				return
			default:
			}
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure) {
				h.metrics.RecordWebSocketError("read")
				h.logger.Warn("read error", "session_id", sess.ID, "error", err)
			}
			return
		}

		sess.Touch()
		action, err := DecodeAction(msg)
		if err != nil {
			h.logger.Debug("invalid frame", "session_id", sess.ID, "error", err)
			if !h.write(conn, ErrorFrame(err)) {
				return
			}
			continue
		}

		frame, err := sess.Apply(r.Context(), action)
		if err != nil {
			frame = ErrorFrame(err)
		}
		if !h.write(conn, frame) {
			return
		}
	}
}

func (h *Handler) write(conn *websocket.Conn, f Frame) bool {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(f); err != nil {
		h.metrics.RecordWebSocketError("write")
		h.logger.Warn("write error", "error", err)
		return false
	}
	return true
}
