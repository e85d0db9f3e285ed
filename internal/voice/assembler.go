package voice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mrclmr/lfdmusic/internal/lfd"
	"github.com/mrclmr/lfdmusic/internal/m3u"
	"github.com/mrclmr/lfdmusic/internal/slot"
	"github.com/mrclmr/lfdmusic/internal/voc"
)

// ErrContainerExists is returned if the container to write is already present.
var ErrContainerExists = errors.New("container already exists")

// CreatePlaylist opens the playlist file with the given name.
type CreatePlaylist = func(name string) (io.WriteCloser, error)

type Assembler struct {
	outputDir      string
	createPlaylist CreatePlaylist
}

// NewAssembler returns an Assembler writing containers to outputDir.
// A playlist of the packed files is written if createPlaylist is not nil.
func NewAssembler(outputDir string, createPlaylist CreatePlaylist) (*Assembler, error) {
	if err := mkdirAllIfNotExists(outputDir); err != nil {
		return nil, err
	}
	return &Assembler{
		outputDir:      outputDir,
		createPlaylist: createPlaylist,
	}, nil
}

// Result describes a written container.
type Result struct {
	Path    string
	Matches []slot.Match
}

// Assemble packs the voice messages of dir into <output dir>/<dir name>.lfd.
// An existing container is not replaced.
func (a *Assembler) Assemble(ctx context.Context, dir string) (*Result, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	outPath := filepath.Join(a.outputDir, filepath.Base(absDir)+"."+lfd.Extension)
	if _, err := os.Stat(outPath); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrContainerExists, outPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	files, err := slot.ListFiles(dir)
	if err != nil {
		return nil, err
	}

	stagingPath := filepath.Join(a.outputDir, ".resource-"+uuid.NewString()+"."+lfd.Extension)
	defer func() {
		err := os.Remove(stagingPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Warn("cannot remove staging file", "path", stagingPath, "err", err)
		}
	}()

	container := lfd.New()
	if err := container.WriteFile(stagingPath); err != nil {
		return nil, err
	}

	var matches []slot.Match
	for m := range slot.Resolve(files) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := appendFile(container, m, stagingPath); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}

	if err := Finalize(container, stagingPath); err != nil {
		return nil, err
	}

	if err := os.Rename(stagingPath, outPath); err != nil {
		return nil, err
	}

	if a.createPlaylist != nil {
		if err := a.writePlaylist(container, matches, filepath.Base(absDir)); err != nil {
			return nil, err
		}
	}

	slog.Info("Done")
	slog.Info(fmt.Sprintf("%d objects written to %s", container.Len(), filepath.Base(outPath)))

	return &Result{
		Path:    outPath,
		Matches: matches,
	}, nil
}

// appendFile encodes the file of a match, adds it to the container and
// persists the container.
func appendFile(container *lfd.Container, m slot.Match, path string) error {
	name := slot.Stem(m.Path)
	record, err := Encode(m.Path, name)
	if err != nil {
		return err
	}

	// The record is staged in memory and read back as container resource.
	var staged bytes.Buffer
	if _, err := record.WriteTo(&staged); err != nil {
		return err
	}
	resource, err := lfd.ReadResource(&staged)
	if err != nil {
		return err
	}

	if err := container.Add(resource); err != nil {
		return err
	}
	if err := container.WriteFile(path); err != nil {
		return err
	}

	slog.Info(name + " processed...")
	return nil
}

// Finalize locks the container, regenerates the resource map and writes
// the container to path. Repeated calls write identical files.
func Finalize(container *lfd.Container, path string) error {
	container.Lock()
	if err := container.CreateRmap(); err != nil {
		return err
	}
	return container.WriteFile(path)
}

func (a *Assembler) writePlaylist(container *lfd.Container, matches []slot.Match, name string) error {
	w, err := a.createPlaylist(name + ".m3u")
	if err != nil {
		return err
	}
	defer func() {
		_ = w.Close()
	}()

	playlist := m3u.NewPlaylist(w)
	for i, r := range container.Resources() {
		absPath, err := filepath.Abs(matches[i].Path)
		if err != nil {
			return err
		}
		info, err := voc.Inspect(r.Data)
		if err != nil {
			slog.Debug("unknown duration", "name", r.Name, "err", err)
			playlist.Add(absPath, r.Name, 0)
			continue
		}
		playlist.Add(absPath, r.Name, info.Duration)
	}
	if err := playlist.Write(); err != nil {
		return err
	}
	return w.Close()
}

func mkdirAllIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModePerm)
	}
	return nil
}
