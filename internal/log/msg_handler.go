package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

// MsgHandler just prints the values and looks like fmt.Println.
// Records above info are prefixed with their level.
type MsgHandler struct {
	writer io.Writer
	level  slog.Level
	attrs  []slog.Attr
}

func NewMsgHandler(writer io.Writer, level slog.Level) *MsgHandler {
	return &MsgHandler{writer: writer, level: level}
}

func (h *MsgHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *MsgHandler) Handle(_ context.Context, record slog.Record) error {
	if record.Level > slog.LevelInfo {
		_, _ = fmt.Fprint(h.writer, strings.ToUpper(record.Level.String()), " - ")
	}
	_, _ = fmt.Fprint(h.writer, record.Message)

	for _, a := range h.attrs {
		_, _ = fmt.Fprint(h.writer, " ", a.Value)
	}
	record.Attrs(func(a slog.Attr) bool {
		_, _ = fmt.Fprint(h.writer, " ", a.Value)
		return true
	})

	_, _ = fmt.Fprintln(h.writer)
	return nil
}

func (h *MsgHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &MsgHandler{
		writer: h.writer,
		level:  h.level,
		attrs:  slices.Concat(h.attrs, attrs),
	}
}

func (h *MsgHandler) WithGroup(_ string) slog.Handler {
	return h
}
