package inspect

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/vrange/internal/errors"
	"github.com/vango-dev/vrange/internal/snapshot"
)

// DispatchRequest is the body of POST /dispatch.
type DispatchRequest struct {
	Target string         `json:"target"`
	Event  string         `json:"event"`
	Data   map[string]any `json:"data,omitempty"`
}

// DispatchResponse reports the outcome of a dispatched event.
type DispatchResponse struct {
	Handlers int    `json:"handlers"`
	HTML     string `json:"html"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	page := s.session.HTML()
	s.mu.Unlock()

	w.Header().Set("Content-Type", snapshot.ContentType)
	w.Write([]byte(page))
}

func (s *Server) handleSaveSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, fmt.Errorf("no snapshot store configured"))
		return
	}
	s.mu.Lock()
	page := s.session.HTML()
	name := s.session.Demo.Name
	s.mu.Unlock()

	loc, err := s.store.Save(r.Context(), snapshot.Key(name, time.Now()), []byte(page))
	if err != nil {
		s.log.Error("snapshot save failed", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"location": loc})
}

func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	var req DispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid body: %w", err))
		return
	}
	if req.Event == "" {
		req.Event = "click"
	}

	s.mu.Lock()
	n, err := s.session.Dispatch(req.Target, req.Event, req.Data)
	page := s.session.AppHTML()
	s.mu.Unlock()

	if err != nil {
		status := http.StatusInternalServerError
		if errors.Code(err) == "E303" {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}
	s.log.Debug("event dispatched", "target", req.Target, "event", req.Event, "handlers", n)
	writeJSON(w, http.StatusOK, DispatchResponse{Handlers: n, HTML: page})
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.recorder.Records())
}

// handleStream upgrades to a websocket and writes every new record as a
// JSON text message until the client goes away.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	records, cancel := s.recorder.Subscribe(s.cfg.StreamBuffer)
	defer cancel()

	// The read loop only detects the close; clients never send data.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case rec, ok := <-records:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteJSON(rec); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					s.log.Debug("websocket write failed", "error", err)
				}
				return
			}
		}
	}
}
