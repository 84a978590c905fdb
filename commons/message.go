package commons

import (
	"github.com/burntcarrot/treapad/editor"
	"github.com/google/uuid"
)

// Message represents the message sent over the wire.
type Message struct {
	Username string `json:"username"`

	// Text represents the body of the message. This is used for join notices and error descriptions.
	Text string `json:"text"`

	// Type represents the message type.
	Type MessageType `json:"type"`

	// ID represents the client's UUID.
	ID uuid.UUID `json:"ID"`

	// Operation represents the editor operation.
	Operation Operation `json:"operation"`

	// State represents the editor state after the last applied operation.
	State State `json:"state"`
}

// State is the part of an editor a driver needs to display it.
type State struct {
	Text     string `json:"text"`
	Cursor   int    `json:"cursor"`
	Version  int    `json:"version"`
	Versions int    `json:"versions"`
	CanUndo  bool   `json:"canUndo"`
	CanRedo  bool   `json:"canRedo"`
}

// StateOf captures the current state of e.
func StateOf(e *editor.Editor) State {
	return State{
		Text:     e.GetText(),
		Cursor:   e.Cursor(),
		Version:  e.Version(),
		Versions: e.Versions(),
		CanUndo:  e.CanUndo(),
		CanRedo:  e.CanRedo(),
	}
}

// MessageType represents the message type.
type MessageType string

// Currently, treapad supports 6 message types:
// - operation (for editor operations sent by a client)
// - state (for the editor state sent back by the server)
// - join (for joining messages)
// - left (for clients that disconnected)
// - users (for the list of active users)
// - error (for operations the server rejected)

const (
	OperationMessage MessageType = "operation"
	StateMessage     MessageType = "state"
	JoinMessage      MessageType = "join"
	LeftMessage      MessageType = "left"
	UsersMessage     MessageType = "users"
	ErrorMessage     MessageType = "error"
)
