package main

import (
	"errors"

	"github.com/burntcarrot/treapad/client/view"
	"github.com/gorilla/websocket"
	"github.com/nsf/termbox-go"
)

// errConnClosed is returned when the server goes away.
var errConnClosed = errors.New("treapad: connection closed")

// UI creates a new view and runs the main loop.
func UI(conn *websocket.Conn) error {
	err := termbox.Init()
	if err != nil {
		return err
	}
	defer termbox.Close()

	e = view.NewView()
	e.SetSize(termbox.Size())
	e.Draw()

	err = mainLoop(conn)
	if errors.Is(err, errExit) {
		return nil
	}
	return err
}

// mainLoop is the main update loop for the UI.
func mainLoop(conn *websocket.Conn) error {
	termboxChan := getTermboxChan()
	msgChan := getMsgChan(conn)

	// event select
	for {
		select {
		case termboxEvent := <-termboxChan:
			if termboxEvent.Type == termbox.EventResize {
				e.SetSize(termboxEvent.Width, termboxEvent.Height)
				e.Draw()
				continue
			}
			err := handleTermboxEvent(termboxEvent, conn)
			if err != nil {
				return err
			}
		case msg, ok := <-msgChan:
			if !ok {
				return errConnClosed
			}
			handleMsg(msg)
		}
	}
}
