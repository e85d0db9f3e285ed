package lfd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustResource(t *testing.T, typ Type, name string, data []byte) *Resource {
	t.Helper()
	r, err := NewResource(typ, name, data)
	if err != nil {
		t.Fatalf("NewResource() error = %v", err)
	}
	return r
}

type entry struct {
	Type   Type
	Name   string
	Offset int64
	Length uint32
}

func entries(c *Container) []entry {
	var e []entry
	for _, r := range c.Resources() {
		e = append(e, entry{r.Type, r.Name, r.Offset, r.Length})
	}
	return e
}

func TestContainer_CreateRmap(t *testing.T) {
	c := New()
	for _, r := range []*Resource{
		mustResource(t, TypeVoic, "1m1r1", []byte("abc")),
		mustResource(t, TypeVoic, "1m1w1", []byte("defgh")),
	} {
		if err := c.Add(r); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}
	if err := c.CreateRmap(); err != nil {
		t.Fatalf("CreateRmap() error = %v", err)
	}

	want := []entry{
		{TypeVoic, "1m1r1", 48, 3},
		{TypeVoic, "1m1w1", 67, 5},
	}
	if diff := cmp.Diff(want, entries(c)); diff != "" {
		t.Fatalf("offsets mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	b := buf.Bytes()
	if len(b) != 88 {
		t.Fatalf("len = %d, want 88", len(b))
	}
	if got := string(b[:12]); got != "RMAPresource" {
		t.Fatalf("rmap header = %q", got)
	}
	for _, e := range want {
		if got := string(b[e.Offset : e.Offset+4]); got != string(e.Type) {
			t.Fatalf("type at offset %d = %q, want %q", e.Offset, got, e.Type)
		}
	}
	// The map repeats the resource headers.
	if !bytes.Equal(b[16:32], b[48:64]) || !bytes.Equal(b[32:48], b[67:83]) {
		t.Fatalf("rmap entries do not match resource headers")
	}
}

func TestContainer_Lock(t *testing.T) {
	c := New()
	if err := c.Add(mustResource(t, TypeVoic, "a", nil)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	c.Lock()
	if !c.Locked() {
		t.Fatalf("Locked() = false")
	}
	err := c.Add(mustResource(t, TypeVoic, "b", nil))
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("Add() error = %v, want %v", err, ErrLocked)
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
}

func TestContainer_AddDropsStaleRmap(t *testing.T) {
	c := New()
	_ = c.Add(mustResource(t, TypeVoic, "a", []byte{1}))
	if err := c.CreateRmap(); err != nil {
		t.Fatalf("CreateRmap() error = %v", err)
	}
	_ = c.Add(mustResource(t, TypeVoic, "b", []byte{2}))
	if c.Rmap() != nil {
		t.Fatalf("Rmap() is stale after Add")
	}
	if got := c.Resources()[0].Offset; got != 0 {
		t.Fatalf("Offset = %d, want 0", got)
	}
}

func TestContainer_AddRmap(t *testing.T) {
	err := New().Add(mustResource(t, TypeRmap, "resource", nil))
	if !errors.Is(err, ErrInvalidHeader) {
		t.Fatalf("Add() error = %v, want %v", err, ErrInvalidHeader)
	}
}

func TestReadWrite(t *testing.T) {
	tests := []struct {
		name     string
		withRmap bool
	}{
		{"with resource map", true},
		{"without resource map", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			_ = c.Add(mustResource(t, TypeVoic, "1m1r1", []byte("first")))
			_ = c.Add(mustResource(t, TypeBlas, "1m1l1", []byte("second")))
			if tt.withRmap {
				if err := c.CreateRmap(); err != nil {
					t.Fatalf("CreateRmap() error = %v", err)
				}
			}

			path := filepath.Join(t.TempDir(), "test.lfd")
			if err := c.WriteFile(path); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
			got, err := Open(path)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if (got.Rmap() != nil) != tt.withRmap {
				t.Fatalf("Rmap() = %v, want map: %v", got.Rmap(), tt.withRmap)
			}
			if diff := cmp.Diff(entries(c), entries(got)); diff != "" {
				t.Fatalf("entries mismatch (-want +got):\n%s", diff)
			}
			if !bytes.Equal(got.Resources()[1].Data, []byte("second")) {
				t.Fatalf("Data = %q", got.Resources()[1].Data)
			}
		})
	}
}

func TestRead_Empty(t *testing.T) {
	c, err := Read(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if c.Len() != 0 || c.Rmap() != nil {
		t.Fatalf("Read() = %d resources, rmap %v", c.Len(), c.Rmap())
	}
}

func TestRead_Invalid(t *testing.T) {
	valid := New()
	_ = valid.Add(mustResource(t, TypeVoic, "a", []byte("data")))
	_ = valid.CreateRmap()
	var buf bytes.Buffer
	_, _ = valid.WriteTo(&buf)
	b := buf.Bytes()

	mismatch := bytes.Clone(b)
	// Name of the map entry.
	mismatch[20] = 'x'

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"truncated header", b[:10], io.ErrUnexpectedEOF},
		{"truncated data", b[:len(b)-1], io.ErrUnexpectedEOF},
		{"binary garbage", bytes.Repeat([]byte{0}, 32), ErrInvalidHeader},
		{"rmap mismatch", mismatch, ErrInvalidRmap},
		{"rmap without resources", b[:32], ErrInvalidRmap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Read() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.lfd"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Open() error = %v, want %v", err, os.ErrNotExist)
	}
}

func TestResource_Kind(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeRmap, "Rmap"},
		{TypeVoic, "Blas"},
		{TypeBlas, "Blas"},
		{"PANL", "Resource"},
	}
	for _, tt := range tests {
		r := &Resource{Header: Header{Type: tt.typ}}
		if got := r.Kind(); got != tt.want {
			t.Fatalf("Kind() of %s = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
