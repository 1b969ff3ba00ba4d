package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	// Origins are already checked by the CORS middleware in front of the router.
	CheckOrigin: func(*http.Request) bool { return true },
}

// sendBuffer is how many messages a client may fall behind before it is
// dropped.
const sendBuffer = 16

// client is one websocket connection with its own writer goroutine.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

func newClient(conn *websocket.Conn) *client {
	return &client{conn: conn, send: make(chan []byte, sendBuffer)}
}

// writeLoop writes queued messages until send is closed or a write fails,
// then closes the connection so the read loop ends too.
func (c *client) writeLoop(log *slog.Logger) {
	defer c.conn.Close()
	for msg := range c.send {
		if err := writeMessage(c.conn, msg); err != nil {
			log.Debug("stream write failed", "remote", c.conn.RemoteAddr().String(), "error", err)
			return
		}
	}
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
}

// feed fans a JSON message out to every connected client without waiting
// on any of them. A client whose queue is full is dropped.
type feed struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	log     *slog.Logger
}

func newFeed(log *slog.Logger) *feed {
	return &feed{clients: map[*client]struct{}{}, log: log}
}

func (f *feed) add(c *client) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clients[c] = struct{}{}
}

// remove unregisters c and stops its writer. Safe to call more than once.
func (f *feed) remove(c *client) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drop(c)
}

func (f *feed) drop(c *client) {
	if _, ok := f.clients[c]; !ok {
		return
	}
	delete(f.clients, c)
	close(c.send)
}

func (f *feed) clientCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients)
}

func (f *feed) broadcast(v any) {
	msg, err := json.Marshal(v)
	if err != nil {
		f.log.Error("encode stream message", "error", err)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for c := range f.clients {
		select {
		case c.send <- msg:
		default:
			f.log.Debug("dropping slow stream client")
			f.drop(c)
		}
	}
}

func writeMessage(conn *websocket.Conn, msg []byte) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, msg)
}

// StreamAttractions handles GET /ws/attractions. The client receives the
// filtered attraction list on connect and again after every change.
func (s *Server) StreamAttractions(w http.ResponseWriter, r *http.Request) {
	s.stream(w, r, s.attractionFeed, func() any {
		return attractionItems(s.model.FilteredAttractions(), 0)
	})
}

// StreamItineraries handles GET /ws/itineraries.
func (s *Server) StreamItineraries(w http.ResponseWriter, r *http.Request) {
	s.stream(w, r, s.itineraryFeed, func() any {
		return itinerarySummaries(s.model.FilteredItineraries())
	})
}

// stream upgrades the request, sends the current snapshot and registers the
// connection on f until the client goes away. Incoming messages are ignored.
func (s *Server) stream(w http.ResponseWriter, r *http.Request, f *feed, snapshot func() any) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error.
		s.log.Debug("websocket upgrade failed", "path", r.URL.Path, "error", err)
		return
	}
	defer conn.Close()

	c := newClient(conn)
	go c.writeLoop(s.log)

	// Queueing the snapshot and registering under the model lock keeps the
	// first message ahead of later broadcasts.
	s.mu.Lock()
	msg, err := json.Marshal(snapshot())
	if err == nil {
		c.send <- msg
		f.add(c)
	}
	s.mu.Unlock()
	if err != nil {
		s.log.Error("encode stream snapshot", "path", r.URL.Path, "error", err)
		close(c.send)
		return
	}
	defer f.remove(c)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
