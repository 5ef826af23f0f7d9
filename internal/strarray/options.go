package strarray

import (
	"log/slog"
	"os"
)

// Observer receives structural events from an Array.
type Observer interface {
	OnGrow(from, to int)
	OnInsert(index, count int)
	OnRemove(index, count int)
}

type Option func(*Array)

// WithLogger sets the logger that receives diagnostics. A nil logger is
// ignored.
func WithLogger(l *slog.Logger) Option {
	return func(a *Array) {
		if l != nil {
			a.log = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(a *Array) {
		if o != nil {
			a.observers = append(a.observers, o)
		}
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
