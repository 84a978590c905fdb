package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestServerURL(t *testing.T) {
	tests := []struct {
		description string
		flags       Flags
		expected    string
	}{
		{description: "plain", flags: Flags{Server: "localhost:8080", Name: "alice"},
			expected: "ws://localhost:8080/?name=alice"},
		{description: "secure", flags: Flags{Server: "example.com", Secure: true, Name: "bob smith"},
			expected: "wss://example.com/?name=bob+smith"},
	}

	for _, tc := range tests {
		u := serverURL(tc.flags)
		if got := u.String(); got != tc.expected {
			t.Errorf("(%s) got != expected; got = %v, expected = %v\n", tc.description, got, tc.expected)
		}
	}
}

func TestConfigureLogger(t *testing.T) {
	var logOut, debugOut bytes.Buffer

	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	configureLogger(l, &logOut, &debugOut)

	l.Info("info line")
	l.Error("error line")

	if !strings.Contains(debugOut.String(), "info line") || strings.Contains(debugOut.String(), "error line") {
		t.Errorf("debug log should only hold info and below; got %q", debugOut.String())
	}
	if !strings.Contains(logOut.String(), "error line") || strings.Contains(logOut.String(), "info line") {
		t.Errorf("log should only hold warnings and above; got %q", logOut.String())
	}
}
