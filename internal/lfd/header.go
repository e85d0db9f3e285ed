package lfd

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const (
	HeaderLength = 16
	TypeLength   = 4
	NameLength   = 8
)

var (
	ErrInvalidHeader = errors.New("invalid resource header")
	ErrNameTooLong   = errors.New("name too long")
	ErrNameEncoding  = errors.New("name not encodable as single bytes")
)

type Type string

const (
	TypeRmap Type = "RMAP"
	TypeVoic Type = "VOIC"
	TypeBlas Type = "BLAS"
)

// IsSound reports whether resources of this type hold Creative Voice data.
func (t Type) IsSound() bool {
	return t == TypeVoic || t == TypeBlas
}

// Header precedes every resource: 4 bytes type, 8 bytes name and
// the little endian length of the data.
type Header struct {
	Type   Type
	Name   string
	Length uint32
}

func (h Header) MarshalBinary() ([]byte, error) {
	if len(h.Type) != TypeLength {
		return nil, fmt.Errorf("%w: type '%s' is not %d bytes", ErrInvalidHeader, h.Type, TypeLength)
	}
	name, err := EncodeName(h.Name)
	if err != nil {
		return nil, err
	}
	b := make([]byte, 0, HeaderLength)
	b = append(b, h.Type...)
	b = append(b, name[:]...)
	b = binary.LittleEndian.AppendUint32(b, h.Length)
	return b, nil
}

func (h *Header) UnmarshalBinary(b []byte) error {
	if len(b) != HeaderLength {
		return fmt.Errorf("%w: %d bytes, want %d", ErrInvalidHeader, len(b), HeaderLength)
	}
	for _, c := range b[:TypeLength] {
		if c < 0x20 || c > 0x7e {
			return fmt.Errorf("%w: type %x is not printable", ErrInvalidHeader, b[:TypeLength])
		}
	}
	h.Type = Type(b[:TypeLength])
	h.Name = DecodeName(b[TypeLength : TypeLength+NameLength])
	h.Length = binary.LittleEndian.Uint32(b[TypeLength+NameLength:])
	return nil
}

// EncodeName returns the fixed width name field. Characters are copied from
// the left, unused bytes stay zero. Longer names are an error, never truncated.
func EncodeName(name string) ([NameLength]byte, error) {
	var field [NameLength]byte
	if n := utf8.RuneCountInString(name); n > NameLength {
		return field, fmt.Errorf("%w: '%s' has %d characters, max is %d", ErrNameTooLong, name, n, NameLength)
	}
	encoded, err := charmap.ISO8859_1.NewEncoder().String(name)
	if err != nil {
		return field, fmt.Errorf("%w: '%s': %w", ErrNameEncoding, name, err)
	}
	copy(field[:], encoded)
	return field, nil
}

// DecodeName returns the name stored in a fixed width field up to the first zero byte.
func DecodeName(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	// Every byte is a valid ISO 8859-1 character.
	decoded, _ := charmap.ISO8859_1.NewDecoder().Bytes(field)
	return string(decoded)
}
