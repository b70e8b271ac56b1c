package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// conditionalSourceHandler wraps a handler and attaches the source location
// only for the configured levels. The wrapped handler must be built with
// AddSource disabled; this wrapper injects the attribute itself.
type conditionalSourceHandler struct {
	inner  slog.Handler
	levels map[slog.Level]bool
}

// NewConditionalSourceHandler keeps routine records compact while warn and
// error records stay traceable to their call site.
func NewConditionalSourceHandler(inner slog.Handler, withSource ...slog.Level) slog.Handler {
	levels := make(map[slog.Level]bool, len(withSource))
	for _, l := range withSource {
		levels[l] = true
	}
	return &conditionalSourceHandler{inner: inner, levels: levels}
}

func (h *conditionalSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.levels[r.Level] {
		// Skip this frame plus the slog internal frame.
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		frame, _ := runtime.CallersFrames(pcs[:]).Next()

		r.AddAttrs(slog.Attr{
			Key: slog.SourceKey,
			Value: slog.AnyValue(&slog.Source{
				Function: frame.Function,
				File:     frame.File,
				Line:     frame.Line,
			}),
		})
	}

	return h.inner.Handle(ctx, r)
}

func (h *conditionalSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &conditionalSourceHandler{inner: h.inner.WithAttrs(attrs), levels: h.levels}
}

func (h *conditionalSourceHandler) WithGroup(name string) slog.Handler {
	return &conditionalSourceHandler{inner: h.inner.WithGroup(name), levels: h.levels}
}

func (h *conditionalSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}
