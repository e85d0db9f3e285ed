// Package m3u writes extended M3U playlists.
package m3u

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

type item struct {
	absFilePath string
	title       string
	dur         time.Duration
}

type Playlist struct {
	w     io.Writer
	items []item
}

func NewPlaylist(w io.Writer) *Playlist {
	return &Playlist{w: w}
}

// Add appends a file. An empty title falls back to the file name.
// A zero duration is written as unknown (-1).
func (p *Playlist) Add(absFilePath string, title string, dur time.Duration) {
	if title == "" {
		title = filepath.Base(absFilePath)
	}
	p.items = append(p.items, item{absFilePath, title, dur})
}

func (p *Playlist) Len() int {
	return len(p.items)
}

func (p *Playlist) Write() error {
	_, err := io.WriteString(p.w, "#EXTM3U\n")
	if err != nil {
		return err
	}
	for _, it := range p.items {
		seconds := -1
		if it.dur > 0 {
			seconds = int(it.dur / time.Second)
		}
		_, err = fmt.Fprintf(p.w, "#EXTINF:%d,%s\n", seconds, it.title)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(p.w, "file://%s\n", escape(filepath.ToSlash(it.absFilePath)))
		if err != nil {
			return err
		}
	}
	return nil
}

func escape(input string) string {
	s := norm.NFD.String(input)
	var b strings.Builder
	for _, c := range []byte(s) {
		if c > 127 || c == '%' || c == ' ' {
			_, _ = fmt.Fprintf(&b, "%%%02X", c)
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}
