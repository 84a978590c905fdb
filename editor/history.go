package editor

import "github.com/burntcarrot/treapad/treap"

// version is one retained state of the buffer.
type version struct {
	root   *treap.Node[rune]
	cursor int
}

// history is a linear version log with a movable current pointer.
// versions[0] is always the empty buffer.
type history struct {
	versions []version
	cur      int
}

func newHistory() *history {
	return &history{versions: []version{{}}}
}

// current returns the version the pointer is at.
func (h *history) current() version {
	return h.versions[h.cur]
}

// truncate drops every version after the current one.
func (h *history) truncate() {
	for i := h.cur + 1; i < len(h.versions); i++ {
		h.versions[i] = version{}
	}
	h.versions = h.versions[:h.cur+1]
}

// commit discards any redo branch, appends v and moves the pointer onto it.
func (h *history) commit(v version) {
	h.truncate()
	h.versions = append(h.versions, v)
	h.cur++
}

func (h *history) undo() bool {
	if h.cur == 0 {
		return false
	}
	h.cur--
	return true
}

func (h *history) redo() bool {
	if h.cur+1 >= len(h.versions) {
		return false
	}
	h.cur++
	return true
}
