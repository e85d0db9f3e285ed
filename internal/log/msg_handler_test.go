package log

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestMsgHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewMsgHandler(buf, slog.LevelInfo))

	logger.Debug("hidden")
	logger.Info("Looking for radio messages...")
	logger.Info("processed", "name", "1m1r1", "slot", "radio 1")
	logger.With("path", "out.lfd").Warn("cannot remove")
	logger.Error("failed", "err", "boom")

	want := `Looking for radio messages...
processed 1m1r1 radio 1
WARN - cannot remove out.lfd
ERROR - failed boom
`
	if buf.String() != want {
		t.Fatalf("got\n%s\nwant\n%s", buf.String(), want)
	}
}
