package lfd

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// Resource is a named block of data inside a container.
type Resource struct {
	Header
	// Offset is the position of the header in the container file.
	Offset int64
	Data   []byte
}

func NewResource(t Type, name string, data []byte) (*Resource, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %s has %d bytes of data", ErrInvalidHeader, name, len(data))
	}
	r := &Resource{
		Header: Header{Type: t, Name: name, Length: uint32(len(data))},
		Data:   data,
	}
	if _, err := r.Header.MarshalBinary(); err != nil {
		return nil, err
	}
	return r, nil
}

// ReadResource reads one header and its data. It returns io.EOF only if
// no byte was read.
func ReadResource(r io.Reader) (*Resource, error) {
	b := make([]byte, HeaderLength)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	var h Header
	if err := h.UnmarshalBinary(b); err != nil {
		return nil, err
	}

	// A corrupt length must not allocate gigabytes up front.
	var data bytes.Buffer
	n, err := io.Copy(&data, io.LimitReader(r, int64(h.Length)))
	if err != nil {
		return nil, err
	}
	if n != int64(h.Length) {
		return nil, fmt.Errorf("%s '%s': %d of %d bytes: %w", h.Type, h.Name, n, h.Length, io.ErrUnexpectedEOF)
	}
	return &Resource{Header: h, Data: data.Bytes()}, nil
}

// Kind is the decoded form of the resource.
func (r *Resource) Kind() string {
	switch {
	case r.Type == TypeRmap:
		return "Rmap"
	case r.Type.IsSound():
		return "Blas"
	default:
		return "Resource"
	}
}

// Size is the number of bytes the resource takes in the container.
func (r *Resource) Size() int64 {
	return HeaderLength + int64(len(r.Data))
}

func (r *Resource) header() Header {
	h := r.Header
	h.Length = uint32(len(r.Data))
	return h
}

func (r *Resource) WriteTo(w io.Writer) (int64, error) {
	b, err := r.header().MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	if err != nil {
		return int64(n), err
	}
	m, err := w.Write(r.Data)
	return int64(n + m), err
}
