package main

import (
	"errors"
	"fmt"

	"github.com/burntcarrot/treapad/commons"
	"github.com/gorilla/websocket"
	"github.com/nsf/termbox-go"
	"github.com/sirupsen/logrus"
)

// errExit is returned by the event handler when the user quits.
var errExit = errors.New("treapad: exiting")

// operationsForEvent maps a termbox key event to the editor operations it triggers.
// quit is true for the exit keys.
func operationsForEvent(ev termbox.Event) (ops []commons.Operation, quit bool) {
	// We only want to deal with termbox key events (EventKey).
	if ev.Type != termbox.EventKey {
		return nil, false
	}

	switch ev.Key {

	// The default keys for exiting a session are Esc and Ctrl+C.
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return nil, true

	// The default keys for moving left are the left arrow key, and Ctrl+B (move backward).
	case termbox.KeyArrowLeft, termbox.KeyCtrlB:
		return []commons.Operation{{Type: commons.OpShiftLeft}}, false

	// The default keys for moving right are the right arrow key, and Ctrl+F (move forward).
	case termbox.KeyArrowRight, termbox.KeyCtrlF:
		return []commons.Operation{{Type: commons.OpShiftRight}}, false

	// The default key for deleting the character before the cursor is Backspace.
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return []commons.Operation{{Type: commons.OpBackspace}}, false

	case termbox.KeyCtrlZ:
		return []commons.Operation{{Type: commons.OpUndo}}, false

	case termbox.KeyCtrlY:
		return []commons.Operation{{Type: commons.OpRedo}}, false

	// The Tab key inserts 4 spaces to simulate a "tab".
	case termbox.KeyTab:
		return []commons.Operation{{Type: commons.OpType, Value: "    "}}, false

	// The Enter key inserts a newline character to the editor's content.
	case termbox.KeyEnter:
		return []commons.Operation{{Type: commons.OpType, Value: "\n"}}, false

	// The Space key inserts a space character to the editor's content.
	case termbox.KeySpace:
		return []commons.Operation{{Type: commons.OpType, Value: " "}}, false

	// Every other key is eligible to be a candidate for insertion.
	default:
		if ev.Ch != 0 {
			return []commons.Operation{{Type: commons.OpType, Value: string(ev.Ch)}}, false
		}
	}

	return nil, false
}

// handleTermboxEvent handles key input by sending the matching operations over the WebSocket connection.
func handleTermboxEvent(ev termbox.Event, conn *websocket.Conn) error {
	ops, quit := operationsForEvent(ev)
	if quit {
		return errExit
	}

	for _, op := range ops {
		logger.WithFields(logrus.Fields{"type": op.Type, "value": op.Value}).Info("sending operation")

		msg := commons.Message{Type: commons.OperationMessage, Operation: op}
		if err := conn.WriteJSON(msg); err != nil {
			e.StatusMsg = "lost connection!"
			e.SetStatusBar()
			logger.Errorf("failed to send operation: %v", err)
			break
		}
	}

	e.Draw()
	return nil
}

// getTermboxChan returns a channel of termbox Events repeatedly waiting on user input.
func getTermboxChan() chan termbox.Event {
	termboxChan := make(chan termbox.Event)

	go func() {
		for {
			termboxChan <- termbox.PollEvent()
		}
	}()

	return termboxChan
}

// handleMsg updates the view with the contents of the message.
func handleMsg(msg commons.Message) {
	switch msg.Type {
	case commons.StateMessage:
		logger.Infof("STATE RECEIVED: version %d, cursor %d", msg.State.Version, msg.State.Cursor)
		e.SetState(msg.State.Text, msg.State.Cursor, msg.State.Version, msg.State.Versions)

	case commons.JoinMessage:
		e.StatusMsg = fmt.Sprintf("%s has joined the session!", msg.Username)
		e.SetStatusBar()

	case commons.LeftMessage:
		e.StatusMsg = fmt.Sprintf("%s has left the session!", msg.Username)
		e.SetStatusBar()

	case commons.UsersMessage:
		logger.Infof("ACTIVE USERS: %s", msg.Text)

	case commons.ErrorMessage:
		logger.Errorf("server rejected %s: %s", msg.Operation.Type, msg.Text)
		e.StatusMsg = "error: " + msg.Text
		e.SetStatusBar()
	}

	printState(msg.State)
	e.Draw()
}

// getMsgChan returns a message channel that repeatedly reads from a websocket connection.
func getMsgChan(conn *websocket.Conn) chan commons.Message {
	messageChan := make(chan commons.Message)
	go func() {
		for {
			var msg commons.Message

			// Read message.
			err := conn.ReadJSON(&msg)
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					logger.Errorf("websocket error: %v", err)
				}
				close(messageChan)
				return
			}

			logger.Infof("message received: %+v\n", msg.Type)

			// send message through channel
			messageChan <- msg
		}
	}()
	return messageChan
}
