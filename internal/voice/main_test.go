package voice

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	exitVal := m.Run()
	os.Exit(exitVal)
}

// vocFile returns a VOC file with one 8 bit PCM block of 10000 Hz.
func vocFile(samples int) []byte {
	b := []byte("Creative Voice File\x1a")
	b = append(b, 26, 0, 0x0a, 0x01, 0x29, 0x11)
	size := samples + 2
	b = append(b, 1, byte(size), byte(size>>8), byte(size>>16), 156, 0)
	b = append(b, make([]byte, samples)...)
	return append(b, 0)
}

// writeFiles creates files in dir. Every file holds a VOC sound of
// one second per index of its name in the list.
func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	for i, name := range names {
		err := os.WriteFile(filepath.Join(dir, name), vocFile((i+1)*10000), 0o600)
		if err != nil {
			t.Fatal(err)
		}
	}
}
