package slot

import (
	"fmt"
	"io/fs"
	"iter"
	"log/slog"
	"path/filepath"
	"strings"
)

// Match is a file assigned to a slot.
type Match struct {
	Slot Slot
	Path string
}

// Resolve yields the files to pack in container order: radio, win and lose
// messages, each ascending by index.
//
// Within a category the search stops at the first missing index. Files with
// a higher index are not packed even if they exist, e.g. a missing r5 drops
// r6 to r16.
func Resolve(files []string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		bySlot := classifyFiles(files)
		for _, c := range Categories {
			if !resolveCategory(bySlot, c, yield) {
				return
			}
		}
	}
}

// classifyFiles assigns every file to its slot. The first file of a slot wins.
func classifyFiles(files []string) map[Slot]string {
	bySlot := make(map[Slot]string)
	for _, f := range files {
		s, ok := Classify(Stem(f))
		if !ok {
			continue
		}
		if _, exists := bySlot[s]; !exists {
			bySlot[s] = f
		}
	}
	return bySlot
}

func resolveCategory(bySlot map[Slot]string, c Category, yield func(Match) bool) bool {
	slog.Info(fmt.Sprintf("Looking for %s messages...", c))
	for i := 1; i <= c.Max(); i++ {
		s := Slot{Category: c, Index: i}
		path, ok := bySlot[s]
		if !ok {
			slog.Info(fmt.Sprintf("No more %s messages found.", c))
			return true
		}
		if !yield(Match{Slot: s, Path: path}) {
			return false
		}
	}
	return true
}

// ListFiles returns the files directly inside dir in lexical order.
// Hidden files and sub directories are ignored.
func ListFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, file fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == dir {
			return nil
		}

		if file.IsDir() {
			return filepath.SkipDir
		}

		// Ignore files beginning with '.'
		if strings.HasPrefix(file.Name(), ".") {
			return nil
		}

		files = append(files, path)

		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
