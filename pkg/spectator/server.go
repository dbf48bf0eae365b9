package spectator

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/Nishj0gi/snake-evolution/pkg/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server exposes a read-only websocket feed of game snapshots so a browser
// can watch a run. It never feeds anything back into the simulation; a
// failure to listen only costs the feed, never the game.
type Server struct {
	addr        string
	broadcaster *Broadcaster
}

// NewServer creates a spectator server for the given address
func NewServer(addr string) *Server {
	return &Server{
		addr:        addr,
		broadcaster: NewBroadcaster(),
	}
}

// Start serves the feed in the background. Listen errors are logged and
// swallowed; the game keeps running without spectators.
func (s *Server) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)

	go func() {
		log.WithField("addr", s.addr).Info("spectator feed listening")
		if err := http.ListenAndServe(s.addr, mux); err != nil {
			log.WithError(err).Warn("spectator feed unavailable")
		}
	}()
}

// Publish serializes a snapshot and fans it out to connected spectators
func (s *Server) Publish(snap game.Snapshot) {
	frame, err := json.Marshal(snap)
	if err != nil {
		log.WithError(err).Warn("spectator: snapshot marshal failed")
		return
	}
	s.broadcaster.Publish(frame)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("spectator: upgrade failed")
		return
	}

	ch := s.broadcaster.Subscribe()
	defer s.broadcaster.Unsubscribe(ch)
	defer conn.Close()

	// Spectators are read-only; drain and discard anything they send so the
	// connection's control frames keep flowing.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case frame, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
