package main

import (
	"fmt"
	"os"

	"github.com/burntcarrot/treapad/client/view"
	"github.com/burntcarrot/treapad/editor"
	"github.com/burntcarrot/treapad/tui"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

var (
	// Local view, rendering the state sent by the server.
	e *view.View

	// Logger for the client, configured in setupLogger.
	logger = logrus.New()

	// Parsed command-line flags.
	flags Flags
)

func main() {
	flags = parseFlags()

	logFile, debugLogFile, err := setupLogger(logger)
	if err != nil {
		fmt.Printf("Failed to set up logger: %s\n", err)
		os.Exit(1)
	}
	defer closeLogFiles(logFile, debugLogFile)

	if flags.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Local mode runs the editor in-process without a server.
	if flags.Local {
		ed := editor.New(editor.WithLogger(logger))
		if err := tui.Run(ed); err != nil {
			color.Red("TUI error, exiting: %s\n", err)
			os.Exit(1)
		}
		return
	}

	// Get WebSocket connection.
	conn, _, err := createConn(flags)
	if err != nil {
		color.Red("Connection error, exiting: %s\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	logger.WithField("server", flags.Server).Info("connected")

	if err := UI(conn); err != nil {
		logger.Errorf("UI error: %v", err)
		color.Red("%s\n", err)
		return
	}

	color.Yellow("Goodbye, %s!\n", flags.Name)
}
