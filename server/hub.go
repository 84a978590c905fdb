package main

import (
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/burntcarrot/treapad/commons"
	"github.com/burntcarrot/treapad/editor"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// client is a connected user.
type client struct {
	ID       uuid.UUID
	Username string
}

// server hosts a single editor session. The editor is only touched by the
// handleMsg goroutine, which also performs every websocket write.
type server struct {
	// Upgrader instance to upgrade all HTTP connections to a WebSocket.
	upgrader websocket.Upgrader

	// Map to store currently active client connections.
	mu            sync.Mutex
	activeClients map[*websocket.Conn]client

	// Channel for connection events and client messages.
	eventChan chan event

	editor *editor.Editor
}

func newServer(opts ...editor.Option) *server {
	return &server{
		activeClients: make(map[*websocket.Conn]client),
		eventChan:     make(chan event),
		editor:        editor.New(opts...),
	}
}

// eventKind tells the hub where an event came from. Only handleConn sets it,
// so a client frame can never pose as a join or leave.
type eventKind int

const (
	eventJoin eventKind = iota
	eventLeave
	eventFrame
)

type event struct {
	kind   eventKind
	client client
	msg    commons.Message
}

// handleConn handles incoming HTTP connections by adding the connection to activeClients and reads messages from the connection.
func (s *server) handleConn(w http.ResponseWriter, r *http.Request) {
	// Upgrade incoming HTTP connections to WebSocket connections
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading connection to websocket: %v", err)
		return
	}
	defer conn.Close()

	// Generate a UUID for the client.
	id := uuid.New()
	c := client{ID: id, Username: r.URL.Query().Get("name")}
	s.mu.Lock()
	s.activeClients[conn] = c
	s.mu.Unlock()

	s.eventChan <- event{kind: eventJoin, client: c}

	for {
		var msg commons.Message

		// Read message from the connection.
		err := conn.ReadJSON(&msg)
		if err != nil {
			log.Printf("Closing connection with ID: %v", id)
			s.removeClient(conn)
			s.eventChan <- event{kind: eventLeave, client: c}
			break
		}

		// Set message ID
		msg.ID = id

		// Send message to the hub.
		s.eventChan <- event{kind: eventFrame, client: c, msg: msg}
	}
}

// handleMsg listens to the eventChan channel, applies operations to the editor and broadcasts the resulting state.
func (s *server) handleMsg() {
	for ev := range s.eventChan {
		// Log each event to stdout.
		t := time.Now().Format(time.ANSIC)
		c := ev.client

		switch ev.kind {
		case eventJoin:
			color.Green("%s >> %s (%v) joined\n", t, c.Username, c.ID)
			s.broadcast(commons.Message{Type: commons.JoinMessage, Username: c.Username, ID: c.ID})
			s.broadcastUsers()
			s.broadcast(commons.Message{Type: commons.StateMessage, State: commons.StateOf(s.editor)})

		case eventLeave:
			color.Yellow("%s >> %s (%v) left\n", t, c.Username, c.ID)
			s.broadcast(commons.Message{Type: commons.LeftMessage, Username: c.Username, ID: c.ID})
			s.broadcastUsers()

		case eventFrame:
			s.handleFrame(t, ev.msg)
		}
	}
}

// handleFrame handles a message read from a client. Clients may only send operations.
func (s *server) handleFrame(t string, msg commons.Message) {
	if msg.Type != commons.OperationMessage {
		color.Red("%s >> %v: rejected %q message\n", t, msg.ID, msg.Type)
		s.sendTo(msg.ID, commons.Message{Type: commons.ErrorMessage, Text: fmt.Sprintf("unsupported message type %q", msg.Type)})
		return
	}

	if err := commons.Apply(s.editor, msg.Operation); err != nil {
		color.Red("%s >> %v: %v\n", t, msg.ID, err)
		s.sendTo(msg.ID, commons.Message{Type: commons.ErrorMessage, Text: err.Error(), Operation: msg.Operation})
		return
	}

	color.Cyan("%s >> %v: %s %q (version %d)\n", t, msg.ID, msg.Operation.Type, msg.Operation.Value, s.editor.Version())
	s.broadcast(commons.Message{Type: commons.StateMessage, State: commons.StateOf(s.editor)})
}

// broadcastUsers sends the sorted list of active usernames to every client.
func (s *server) broadcastUsers() {
	s.broadcast(commons.Message{Type: commons.UsersMessage, Text: strings.Join(s.usernames(), ",")})
}

// broadcast writes msg to every active client.
func (s *server) broadcast(msg commons.Message) {
	for _, conn := range s.conns() {
		s.write(conn, msg)
	}
}

// sendTo writes msg to the client with the given ID.
func (s *server) sendTo(id uuid.UUID, msg commons.Message) {
	s.mu.Lock()
	var target *websocket.Conn
	for conn, c := range s.activeClients {
		if c.ID == id {
			target = conn
			break
		}
	}
	s.mu.Unlock()

	if target != nil {
		s.write(target, msg)
	}
}

func (s *server) write(conn *websocket.Conn, msg commons.Message) {
	// Write JSON message.
	err := conn.WriteJSON(msg)
	if err != nil {
		log.Printf("Error sending message to client: %v", err)
		conn.Close()
		s.removeClient(conn)
	}
}

func (s *server) conns() []*websocket.Conn {
	s.mu.Lock()
	defer s.mu.Unlock()

	conns := make([]*websocket.Conn, 0, len(s.activeClients))
	for conn := range s.activeClients {
		conns = append(conns, conn)
	}
	return conns
}

// usernames returns the sorted names of the active clients.
func (s *server) usernames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.activeClients))
	for _, c := range s.activeClients {
		names = append(names, c.Username)
	}
	sort.Strings(names)
	return names
}

func (s *server) removeClient(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.activeClients, conn)
	s.mu.Unlock()
}
