package view

import (
	"fmt"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
)

// View renders editor state received from the server. It holds no editing
// logic of its own; the server is authoritative for text and cursor.
type View struct {
	Text      []rune
	Cursor    int
	Version   int
	Versions  int
	Width     int
	Height    int
	StatusMsg string

	// showMsg is cleared by a timer goroutine, so it is guarded by mu.
	mu      sync.Mutex
	showMsg bool
}

// statusTimeout is how long a status message stays visible.
var statusTimeout = 5 * time.Second

func NewView() *View {
	return &View{}
}

// SetState replaces the displayed text and cursor.
func (v *View) SetState(text string, cursor, version, versions int) {
	v.Text = []rune(text)
	v.Cursor = cursor
	v.Version = version
	v.Versions = versions
}

func (v *View) SetSize(w, h int) {
	v.Width = w
	v.Height = h
}

// Draw updates the UI by setting cells with the view's content.
func (v *View) Draw() {
	_ = termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	cx, cy := v.calcXY(v.Cursor)
	termbox.SetCursor(cx-1, cy-1)

	x, y := 0, 0
	for i := 0; i < len(v.Text); i++ {
		if v.Text[i] == rune('\n') {
			x = 0
			y++
		} else {
			if x < v.Width {
				// Set cell content.
				termbox.SetCell(x, y, v.Text[i], termbox.ColorDefault, termbox.ColorDefault)
			}

			// Update x by rune's width.
			x = x + runewidth.RuneWidth(v.Text[i])
		}
	}

	if v.statusVisible() {
		v.drawStatusMsg()
	} else {
		v.showPositions()
	}

	// Flush back buffer!
	termbox.Flush()
}

// SetStatusBar shows StatusMsg in the last row for a few seconds.
func (v *View) SetStatusBar() {
	v.mu.Lock()
	v.showMsg = true
	v.mu.Unlock()
	v.drawStatusMsg()

	_ = time.AfterFunc(statusTimeout, func() {
		v.mu.Lock()
		v.showMsg = false
		v.mu.Unlock()
	})
}

func (v *View) statusVisible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.showMsg
}

func (v *View) drawStatusMsg() {
	for i, r := range []rune(v.StatusMsg) {
		termbox.SetCell(i, v.Height-1, r, termbox.ColorDefault, termbox.ColorDefault)
	}
}

// showPositions shows the cursor and history position in the last row.
func (v *View) showPositions() {
	x, y := v.calcXY(v.Cursor)

	str := fmt.Sprintf("x=%d, y=%d, cursor=%d, len(text)=%d, version=%d/%d", x, y, v.Cursor, len(v.Text), v.Version, v.Versions-1)

	for i, r := range []rune(str) {
		termbox.SetCell(i, v.Height-1, r, termbox.ColorDefault, termbox.ColorDefault)
	}
}

// calcXY calculates the 1-based screen position of the cell at index.
func (v *View) calcXY(index int) (int, int) {
	x := 1
	y := 1

	if index < 0 {
		return x, y
	}

	if index > len(v.Text) {
		index = len(v.Text)
	}

	for i := 0; i < index; i++ {
		if v.Text[i] == rune('\n') {
			x = 1
			y++
		} else {
			x = x + runewidth.RuneWidth(v.Text[i])
		}
	}
	return x, y
}
