package view

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestCalcXY(t *testing.T) {
	tests := []struct {
		description string
		text        string
		cursor      int
		expectedX   int
		expectedY   int
	}{
		{description: "initial position", text: "content\ntest", cursor: 0, expectedX: 1, expectedY: 1},
		{description: "negative index", text: "content\ntest", cursor: -1, expectedX: 1, expectedY: 1},
		{description: "normal editing", text: "content\ntest", cursor: 6, expectedX: 7, expectedY: 1},
		{description: "after newline", text: "content\ntest", cursor: 10, expectedX: 3, expectedY: 2},
		{description: "large number", text: "content\ntest", cursor: 100000, expectedX: 5, expectedY: 2},
		{description: "wide runes", text: "世界x", cursor: 2, expectedX: 5, expectedY: 1},
		{description: "empty text", text: "", cursor: 3, expectedX: 1, expectedY: 1},
	}

	v := NewView()

	for _, tc := range tests {
		v.SetState(tc.text, tc.cursor, 0, 1)
		x, y := v.calcXY(v.Cursor)

		got := []int{x, y}
		expected := []int{tc.expectedX, tc.expectedY}

		if !cmp.Equal(got, expected) {
			t.Errorf("(%s) got != expected, diff: %v\n", tc.description, cmp.Diff(got, expected))
		}
	}
}

func TestSetState(t *testing.T) {
	v := NewView()
	v.SetState("héllo", 2, 4, 6)

	if !cmp.Equal(v.Text, []rune("héllo")) {
		t.Errorf("got != expected, diff: %v\n", cmp.Diff(v.Text, []rune("héllo")))
	}
	got := []int{v.Cursor, v.Version, v.Versions}
	expected := []int{2, 4, 6}
	if !cmp.Equal(got, expected) {
		t.Errorf("got != expected, diff: %v\n", cmp.Diff(got, expected))
	}
}

func TestStatusBarExpires(t *testing.T) {
	old := statusTimeout
	statusTimeout = 10 * time.Millisecond
	t.Cleanup(func() { statusTimeout = old })

	v := NewView()
	v.StatusMsg = "bob has joined the session!"
	v.SetStatusBar()

	if !v.statusVisible() {
		t.Fatalf("status message should be visible after SetStatusBar")
	}

	deadline := time.Now().Add(5 * time.Second)
	for v.statusVisible() {
		if time.Now().After(deadline) {
			t.Fatalf("status message was never hidden")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
