package editor

import (
	"io"

	"github.com/burntcarrot/treapad/treap"
	"github.com/sirupsen/logrus"
)

// Option configures an Editor during creation.
type Option func(*Editor)

// WithSource sets the priority source used for new nodes.
// Tests pass a seeded source to get reproducible tree shapes.
func WithSource(src treap.Source) Option {
	return func(e *Editor) {
		if src != nil {
			e.src = src
		}
	}
}

// WithLogger sets the logger that receives a debug entry per committed version.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// debugEnabled reports whether logger would emit a debug entry. Loggers of
// other types are assumed to want everything.
func debugEnabled(logger logrus.FieldLogger) bool {
	switch l := logger.(type) {
	case *logrus.Logger:
		return l.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.DebugLevel)
	}
	return true
}
