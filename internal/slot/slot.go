// Package slot maps file names of voice messages to their position in an LFD container.
package slot

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

type Category int

const (
	Radio Category = iota
	Win
	Lose
)

// Categories lists all categories in container order.
var Categories = []Category{Radio, Win, Lose}

func (c Category) String() string {
	switch c {
	case Radio:
		return "radio"
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Letter is the character in front of the index in a file name.
func (c Category) Letter() string {
	switch c {
	case Radio:
		return "r"
	case Win:
		return "w"
	case Lose:
		return "l"
	default:
		return ""
	}
}

// Max is the highest valid index. Indices start at 1.
func (c Category) Max() int {
	switch c {
	case Radio:
		return 16
	case Win:
		return 2
	case Lose:
		return 1
	default:
		return 0
	}
}

// Slot identifies where a file belongs in the container, e.g. radio message 3.
type Slot struct {
	Category Category
	Index    int
}

// Suffix is the file name ending that selects the slot, e.g. "r3".
func (s Slot) Suffix() string {
	return fmt.Sprintf("%s%d", s.Category.Letter(), s.Index)
}

func (s Slot) String() string {
	return s.Suffix()
}

// Classify returns the slot of a file name stem.
func Classify(stem string) (Slot, bool) {
	for _, c := range Categories {
		for i := 1; i <= c.Max(); i++ {
			s := Slot{Category: c, Index: i}
			if strings.HasSuffix(stem, s.Suffix()) {
				return s, true
			}
		}
	}
	return Slot{}, false
}

// Stem returns the file name without directory and extension.
// Some file systems store names decomposed (NFD), so the stem is composed (NFC).
func Stem(path string) string {
	base := filepath.Base(path)
	return norm.NFC.String(strings.TrimSuffix(base, filepath.Ext(base)))
}
