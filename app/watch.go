package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/jmoiron/sqlx"
)

// NewWatchRouter serves the read only http surface: a status endpoint and a
// websocket feed of moves per session. The match protocol itself stays on tcp.
func NewWatchRouter(hub *Hub, sessions *SessionStore, db *sqlx.DB) chi.Router {
	r := chi.NewRouter()
	r.Get("/status", handleStatus(hub, sessions, db))
	r.Get("/watch/{session}", handleWatch(hub))
	return r
}

type statusResponse struct {
	Sessions []string `json:"sessions"`
	Watchers int      `json:"watchers"`
	Matches  int      `json:"matches,omitempty"`
}

func handleStatus(hub *Hub, sessions *SessionStore, db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := statusResponse{
			Sessions: sessions.Keys(),
			Watchers: hub.watcherCount(),
		}
		if db != nil {
			count, err := CountMatches(r.Context(), db)
			if err == nil {
				resp.Matches = count
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(mustEncode(resp))
	}
}

func handleWatch(hub *Hub) http.HandlerFunc {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "session")
		if sessionID == "" {
			sessionID = DefaultSessionID
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Warn("failed to upgrade watch connection", "session", sessionID, "err", err)
			return
		}

		watch := &watcher{session: sessionID, send: make(chan []byte, 16)}
		hub.register(watch)
		slog.Info("watcher connected", "session", sessionID, "remote", conn.RemoteAddr().String())

		go writeWatcher(conn, watch)

		// the read loop exists only to detect the client hanging up
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.unregister(watch)
				conn.Close()
				return
			}
		}
	}
}

const watchPingPeriod = 30 * time.Second

func writeWatcher(conn *websocket.Conn, watch *watcher) {
	defer conn.Close()
	ticker := time.NewTicker(watchPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case data, ok := <-watch.send:
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ServeWatch runs the http surface until the context is cancelled.
func ServeWatch(ctx context.Context, addr string, router chi.Router) error {
	server := &http.Server{Addr: addr, Handler: router}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()
	slog.Info("serving watch feed", "addr", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
