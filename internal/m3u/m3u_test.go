package m3u

import (
	"bytes"
	"testing"
	"time"
)

func TestPlaylist_Write(t *testing.T) {
	tests := []struct {
		name  string
		items []item
		want  string
	}{
		{
			"one item",
			[]item{
				{absFilePath: "/voc/1m1r1.voc", title: "1m1r1", dur: time.Second * 10},
			},
			`#EXTM3U
#EXTINF:10,1m1r1
file:///voc/1m1r1.voc
`,
		},
		{
			"title falls back to file name",
			[]item{
				{absFilePath: "/voc/1m1r1.voc", dur: time.Second * 3},
			},
			`#EXTM3U
#EXTINF:3,1m1r1.voc
file:///voc/1m1r1.voc
`,
		},
		{
			"escape non ASCII characters and spaces",
			[]item{
				{absFilePath: "/über/mission one/1m1r1.voc", title: "1m1r1", dur: time.Second * 10},
			},
			`#EXTM3U
#EXTINF:10,1m1r1
file:///u%CC%88ber/mission%20one/1m1r1.voc
`,
		},
		{
			"multiple items in order",
			[]item{
				{absFilePath: "/voc/1m1r1.voc", title: "1m1r1", dur: time.Second * 2},
				{absFilePath: "/voc/1m1w1.voc", title: "1m1w1", dur: time.Second * 4},
				{absFilePath: "/voc/1m1l1.voc", title: "1m1l1", dur: time.Second * 5},
			},
			`#EXTM3U
#EXTINF:2,1m1r1
file:///voc/1m1r1.voc
#EXTINF:4,1m1w1
file:///voc/1m1w1.voc
#EXTINF:5,1m1l1
file:///voc/1m1l1.voc
`,
		},
		{
			"round time down",
			[]item{
				{absFilePath: "/voc/1m1r1.voc", title: "1m1r1", dur: time.Millisecond * 9999},
			},
			`#EXTM3U
#EXTINF:9,1m1r1
file:///voc/1m1r1.voc
`,
		},
		{
			"unknown duration",
			[]item{
				{absFilePath: "/voc/1m1r1.voc", title: "1m1r1"},
			},
			`#EXTM3U
#EXTINF:-1,1m1r1
file:///voc/1m1r1.voc
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buffer := &bytes.Buffer{}
			p := NewPlaylist(buffer)
			for _, it := range tt.items {
				p.Add(it.absFilePath, it.title, it.dur)
			}
			if p.Len() != len(tt.items) {
				t.Fatalf("Len() = %d, want %d", p.Len(), len(tt.items))
			}
			err := p.Write()
			if err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if buffer.String() != tt.want {
				t.Fatalf("Write() = %v, want %v", buffer.String(), tt.want)
			}
		})
	}
}
