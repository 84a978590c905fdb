// Package editor implements a text buffer with a cursor and linear undo/redo.
//
// Each edit produces a new immutable treap root; the history keeps every root
// together with its cursor, so undo and redo only move a pointer. Unchanged
// subtrees are shared between versions, which keeps each edit at O(log n).
//
// An Editor is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
package editor

import (
	"github.com/burntcarrot/treapad/treap"
	"github.com/sirupsen/logrus"
)

// Editor is a cursor-addressed text buffer with versioned history.
type Editor struct {
	hist   *history
	src    treap.Source
	logger logrus.FieldLogger
}

// Snapshot is a read-only view of one version.
type Snapshot struct {
	Root    *treap.Node[rune]
	Cursor  int
	Version int
}

// Text returns the content of the snapshot.
func (s Snapshot) Text() string {
	return string(treap.PrintTo(s.Root, nil))
}

// New returns an empty editor at version 0.
func New(opts ...Option) *Editor {
	e := &Editor{
		hist:   newHistory(),
		src:    treap.DefaultSource(),
		logger: discardLogger(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// GetText returns the content of the current version.
func (e *Editor) GetText() string {
	return string(treap.PrintTo(e.hist.current().root, nil))
}

// Cursor returns the cursor offset, in runes, of the current version.
func (e *Editor) Cursor() int {
	return e.hist.current().cursor
}

// Len returns the number of runes in the current version.
func (e *Editor) Len() int {
	return treap.Size(e.hist.current().root)
}

// Version returns the index of the current version.
func (e *Editor) Version() int {
	return e.hist.cur
}

// Versions returns the number of stored versions, including any redo branch.
func (e *Editor) Versions() int {
	return len(e.hist.versions)
}

// CanUndo reports whether Undo would move the pointer.
func (e *Editor) CanUndo() bool {
	return e.hist.cur > 0
}

// CanRedo reports whether Redo would move the pointer.
func (e *Editor) CanRedo() bool {
	return e.hist.cur+1 < len(e.hist.versions)
}

// Snapshot returns the current version.
func (e *Editor) Snapshot() Snapshot {
	v := e.hist.current()
	return Snapshot{Root: v.root, Cursor: v.cursor, Version: e.hist.cur}
}

// Type inserts ch at the cursor and moves the cursor past it.
func (e *Editor) Type(ch rune) {
	v := e.hist.current()

	before, after := treap.Split(v.root, v.cursor)
	root := treap.Merge(before, treap.Merge(treap.Leaf(ch, e.src), after))

	e.commit("type", version{root: root, cursor: v.cursor + 1})
}

// ShiftLeft moves the cursor one rune left.
// It does nothing on an empty buffer; at offset 0 of a non-empty buffer it
// still records a version with the cursor unchanged.
func (e *Editor) ShiftLeft() {
	v := e.hist.current()
	if treap.Size(v.root) == 0 {
		return
	}

	cursor := v.cursor - 1
	if cursor < 0 {
		cursor = 0
	}
	e.commit("shiftLeft", version{root: v.root, cursor: cursor})
}

// ShiftRight moves the cursor one rune right. It does nothing at the end of the buffer.
func (e *Editor) ShiftRight() {
	v := e.hist.current()
	if v.cursor == treap.Size(v.root) {
		return
	}

	e.commit("shiftRight", version{root: v.root, cursor: v.cursor + 1})
}

// Backspace deletes the rune before the cursor.
// At offset 0 nothing is deleted but a version is still recorded.
func (e *Editor) Backspace() {
	v := e.hist.current()
	if v.cursor == 0 {
		e.commit("backspace", version{root: v.root, cursor: 0})
		return
	}

	before, midAfter := treap.Split(v.root, v.cursor-1)
	_, after := treap.Split(midAfter, 1)

	e.commit("backspace", version{root: treap.Merge(before, after), cursor: v.cursor - 1})
}

// Undo moves to the previous version. It reports whether the pointer moved.
func (e *Editor) Undo() bool {
	return e.hist.undo()
}

// Redo moves to the next stored version. It reports whether the pointer moved.
func (e *Editor) Redo() bool {
	return e.hist.redo()
}

// commit appends v after the current version, dropping any redo branch.
func (e *Editor) commit(op string, v version) {
	dropped := len(e.hist.versions) - e.hist.cur - 1
	e.hist.commit(v)

	if !debugEnabled(e.logger) {
		return
	}
	e.logger.WithFields(logrus.Fields{
		"op":      op,
		"version": e.hist.cur,
		"cursor":  v.cursor,
		"size":    treap.Size(v.root),
		"dropped": dropped,
	}).Debug("committed version")
}
