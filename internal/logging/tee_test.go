package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestTee_LevelsPerHandler(t *testing.T) {
	var console, file bytes.Buffer
	tee := NewTee(
		NewHandler(&console, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&file, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	logger := slog.New(tee)

	logger.Debug("skipped sublayer", "path", "Missing_LYR.usda")
	logger.Warn("engine rejected file", "path", "Prop.usda")

	if strings.Contains(console.String(), "skipped sublayer") {
		t.Error("console handler should filter debug records")
	}
	if !strings.Contains(console.String(), "engine rejected file") {
		t.Error("console handler should receive warnings")
	}
	if !strings.Contains(file.String(), "skipped sublayer") || !strings.Contains(file.String(), "engine rejected file") {
		t.Errorf("file handler should receive both records, got: %q", file.String())
	}
	if !tee.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("tee should be enabled when any handler is")
	}
	if tee.Enabled(t.Context(), LevelTrace) {
		t.Error("tee should be disabled when no handler is")
	}
}

func TestTee_Single(t *testing.T) {
	h := slog.NewJSONHandler(&bytes.Buffer{}, nil)
	if got := NewTee(h); got != slog.Handler(h) {
		t.Errorf("NewTee with one handler = %T, want the handler itself", got)
	}
}

func TestTee_AttrsAndGroups(t *testing.T) {
	var a, b bytes.Buffer
	tee := NewTee(
		slog.NewJSONHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	)
	logger := slog.New(tee).With("tool", "validate_scene").WithGroup("layer")

	logger.Info("opened", "path", "Shot_ROOT.usda")

	for name, buf := range map[string]*bytes.Buffer{"first": &a, "second": &b} {
		out := buf.String()
		if !strings.Contains(out, `"tool":"validate_scene"`) {
			t.Errorf("%s handler missing attribute: %q", name, out)
		}
		if !strings.Contains(out, `"layer":{"path":"Shot_ROOT.usda"}`) {
			t.Errorf("%s handler missing group: %q", name, out)
		}
	}
}

type failingHandler struct {
	slog.Handler
	err error
}

func (h failingHandler) Handle(context.Context, slog.Record) error { return h.err }

func TestTee_FirstError(t *testing.T) {
	first := errors.New("disk full")
	var buf bytes.Buffer
	tee := NewTee(
		failingHandler{Handler: slog.NewJSONHandler(&bytes.Buffer{}, nil), err: first},
		slog.NewJSONHandler(&buf, nil),
		failingHandler{Handler: slog.NewJSONHandler(&bytes.Buffer{}, nil), err: errors.New("closed")},
	)

	err := tee.Handle(t.Context(), slog.NewRecord(time.Time{}, slog.LevelInfo, "opened layer", 0))

	if !errors.Is(err, first) {
		t.Errorf("Handle() = %v, want %v", err, first)
	}
	if !strings.Contains(buf.String(), "opened layer") {
		t.Error("a failing handler should not stop the others")
	}
}
