package logging

import (
	"context"
	"log/slog"
	"slices"
)

// Tee fans each record out to every handler enabled for its level. Each
// handler keeps its own level, so the console can stay at Warn while
// --log-file records Debug.
type Tee []slog.Handler

// NewTee combines handlers. A single handler is returned unwrapped.
func NewTee(handlers ...slog.Handler) slog.Handler {
	if len(handlers) == 1 {
		return handlers[0]
	}
	return Tee(handlers)
}

// Enabled reports whether any handler accepts level.
func (t Tee) Enabled(ctx context.Context, level slog.Level) bool {
	return slices.ContainsFunc(t, func(h slog.Handler) bool {
		return h.Enabled(ctx, level)
	})
}

// Handle passes r to each enabled handler and returns the first failure.
func (t Tee) Handle(ctx context.Context, r slog.Record) error {
	var first error
	for _, h := range t {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (t Tee) WithAttrs(attrs []slog.Attr) slog.Handler {
	return t.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (t Tee) WithGroup(name string) slog.Handler {
	if name == "" {
		return t
	}
	return t.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (t Tee) each(f func(slog.Handler) slog.Handler) Tee {
	out := make(Tee, len(t))
	for i, h := range t {
		out[i] = f(h)
	}
	return out
}
