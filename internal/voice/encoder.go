// Package voice packs voice message files into LFD containers and lists them.
package voice

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/mrclmr/lfdmusic/internal/lfd"
)

var (
	ErrNameTooLong  = lfd.ErrNameTooLong
	ErrNameEncoding = lfd.ErrNameEncoding
)

// Record is a VOIC resource as stored in the container.
type Record struct {
	Tag     [lfd.TypeLength]byte
	Name    [lfd.NameLength]byte
	Payload []byte
}

// Length is the value of the length field.
func (r *Record) Length() uint32 {
	return uint32(len(r.Payload))
}

func (r *Record) WriteTo(w io.Writer) (int64, error) {
	var header [lfd.HeaderLength]byte
	copy(header[:], r.Tag[:])
	copy(header[lfd.TypeLength:], r.Name[:])
	binary.LittleEndian.PutUint32(header[lfd.TypeLength+lfd.NameLength:], r.Length())

	n, err := w.Write(header[:])
	if err != nil {
		return int64(n), err
	}
	m, err := w.Write(r.Payload)
	return int64(n + m), err
}

func (r *Record) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(lfd.HeaderLength + len(r.Payload))
	// Writing to a bytes.Buffer never fails.
	_, _ = r.WriteTo(&buf)
	return buf.Bytes()
}

// Encode reads the file at path into a record named name.
// The name is checked before the file is read.
func Encode(path string, name string) (*Record, error) {
	field, err := lfd.EncodeName(name)
	if err != nil {
		return nil, err
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("%s: %d bytes exceed the length field", path, len(payload))
	}

	r := &Record{
		Name:    field,
		Payload: payload,
	}
	copy(r.Tag[:], lfd.TypeVoic)
	return r, nil
}
