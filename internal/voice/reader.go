package voice

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mrclmr/lfdmusic/internal/lfd"
	"github.com/mrclmr/lfdmusic/internal/voc"
)

var ErrContainerOpen = errors.New("cannot open container")

// ResourceInfo describes a resource of a container.
// Duration, Frequency and Channels are nil if the resource holds no readable sound.
type ResourceInfo struct {
	Index     int            `yaml:"index"`
	Name      string         `yaml:"name"`
	Kind      string         `yaml:"kind"`
	Type      string         `yaml:"type"`
	Offset    int64          `yaml:"offset"`
	Length    uint32         `yaml:"length"`
	Duration  *time.Duration `yaml:"duration,omitempty"`
	Frequency *int           `yaml:"frequency,omitempty"`
	Channels  *int           `yaml:"channels,omitempty"`
}

// List returns the resources of the container at path in directory order.
// The resource map itself is not listed.
func List(path string) ([]ResourceInfo, error) {
	container, err := lfd.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrContainerOpen, path, err)
	}

	resources := container.Resources()
	infos := make([]ResourceInfo, 0, len(resources))
	for i, r := range resources {
		info := ResourceInfo{
			Index:  i + 1,
			Name:   r.Name,
			Kind:   r.Kind(),
			Type:   string(r.Type),
			Offset: r.Offset,
			Length: r.Length,
		}
		if r.Type.IsSound() {
			sound, err := voc.Inspect(r.Data)
			if err != nil {
				slog.Debug("no sound information", "name", r.Name, "err", err)
			} else {
				info.Duration = &sound.Duration
				info.Frequency = &sound.Frequency
				info.Channels = &sound.Channels
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}
