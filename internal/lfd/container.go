// Package lfd reads and writes LFD resource containers of LucasArts games.
//
// A container is a sequence of resources, each a 16 byte header followed by
// its data. A complete container starts with a resource map (RMAP) whose data
// repeats the headers of all following resources.
package lfd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
)

// Extension of container files.
const Extension = "lfd"

const rmapName = "resource"

var (
	ErrLocked      = errors.New("container structure is locked")
	ErrInvalidRmap = errors.New("resource map does not match resources")
)

type Container struct {
	resources []*Resource
	rmap      *Resource
	locked    bool
}

// New returns an empty container without resource map.
func New() *Container {
	return &Container{}
}

// Add appends a resource. The resource map is dropped because it no longer
// matches. Call CreateRmap after the last Add.
func (c *Container) Add(r *Resource) error {
	if c.locked {
		return fmt.Errorf("%w: cannot add %s '%s'", ErrLocked, r.Type, r.Name)
	}
	if r.Type == TypeRmap {
		return fmt.Errorf("%w: resource map is created by the container", ErrInvalidHeader)
	}
	c.resources = append(c.resources, r)
	c.rmap = nil
	c.layout()
	return nil
}

// Lock prevents further structural changes.
func (c *Container) Lock() {
	c.locked = true
}

func (c *Container) Locked() bool {
	return c.locked
}

func (c *Container) Len() int {
	return len(c.resources)
}

// Resources returns the resources without the resource map.
func (c *Container) Resources() []*Resource {
	return slices.Clone(c.resources)
}

// Rmap returns the resource map or nil.
func (c *Container) Rmap() *Resource {
	return c.rmap
}

// CreateRmap regenerates the resource map from the current resources.
func (c *Container) CreateRmap() error {
	data := make([]byte, 0, HeaderLength*len(c.resources))
	for _, r := range c.resources {
		b, err := r.header().MarshalBinary()
		if err != nil {
			return err
		}
		data = append(data, b...)
	}
	rmap, err := NewResource(TypeRmap, rmapName, data)
	if err != nil {
		return err
	}
	c.rmap = rmap
	c.layout()
	return nil
}

func (c *Container) layout() {
	var offset int64
	if c.rmap != nil {
		c.rmap.Offset = 0
		offset = c.rmap.Size()
	}
	for _, r := range c.resources {
		r.Offset = offset
		offset += r.Size()
	}
}

func (c *Container) WriteTo(w io.Writer) (int64, error) {
	var total int64
	if c.rmap != nil {
		n, err := c.rmap.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	for _, r := range c.resources {
		n, err := r.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteFile writes the container to path, replacing an existing file.
func (c *Container) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	w := bufio.NewWriter(f)
	if _, err := c.WriteTo(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

// Open reads the container file at path.
func Open(path string) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return Read(bufio.NewReader(f))
}

// Read reads a container. A container without resource map is read as a
// plain sequence of resources.
func Read(r io.Reader) (*Container, error) {
	c := New()
	for i := 0; ; i++ {
		res, err := ReadResource(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("resource %d: %w", i, err)
		}
		if i == 0 && res.Type == TypeRmap {
			c.rmap = res
			continue
		}
		c.resources = append(c.resources, res)
	}
	if err := c.checkRmap(); err != nil {
		return nil, err
	}
	c.layout()
	return c, nil
}

func (c *Container) checkRmap() error {
	if c.rmap == nil {
		return nil
	}
	if len(c.rmap.Data) != HeaderLength*len(c.resources) {
		return fmt.Errorf("%w: map has %d bytes for %d resources", ErrInvalidRmap, len(c.rmap.Data), len(c.resources))
	}
	for i, r := range c.resources {
		var h Header
		err := h.UnmarshalBinary(c.rmap.Data[i*HeaderLength : (i+1)*HeaderLength])
		if err != nil {
			return fmt.Errorf("%w: entry %d: %w", ErrInvalidRmap, i, err)
		}
		if h != r.Header {
			return fmt.Errorf("%w: entry %d is %s '%s', resource is %s '%s'", ErrInvalidRmap, i, h.Type, h.Name, r.Type, r.Name)
		}
	}
	return nil
}
