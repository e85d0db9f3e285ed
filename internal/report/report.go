// Package report renders the resource listing of a container.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/mrclmr/lfdmusic/internal/voice"
)

const (
	separator    = "==================="
	notAvailable = "n/a"
)

type document struct {
	File      string               `yaml:"file"`
	Objects   int                  `yaml:"objects"`
	Resources []voice.ResourceInfo `yaml:"resources"`
}

// Write renders infos of the container file in format f.
func Write(w io.Writer, file string, infos []voice.ResourceInfo, f Format) error {
	switch f {
	case Text:
		return writeText(w, file, infos)
	case Table:
		return writeTable(w, file, infos)
	case Yaml:
		return writeYaml(w, file, infos)
	default:
		return fmt.Errorf("unknown report format '%s'", f)
	}
}

func writeText(w io.Writer, file string, infos []voice.ResourceInfo) error {
	_, err := fmt.Fprintf(w, "%s contains %d objects.\n", file, len(infos))
	if err != nil {
		return err
	}
	for _, info := range infos {
		_, err = fmt.Fprintf(w, "%s\nObject #%d\nName: %s\nClass Type: %s\nObject Type: %s\nOffset: %d\nLength: %d\nDuration: %s\nFrequency: %s\n",
			separator,
			info.Index,
			info.Name,
			info.Kind,
			info.Type,
			info.Offset,
			info.Length,
			duration(info),
			frequency(info),
		)
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "%s\nDone\n", separator)
	return err
}

func writeTable(w io.Writer, file string, infos []voice.ResourceInfo) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("%s contains %d objects", file, len(infos))
	if shouldColorize(w) {
		tw.Style().Color.Header = text.Colors{text.Bold, text.FgBlue}
	}

	tw.AppendHeader(table.Row{"#", "Name", "Class Type", "Object Type", "Offset", "Length", "Duration", "Frequency", "Channels"})
	for _, info := range infos {
		tw.AppendRow(table.Row{
			info.Index,
			info.Name,
			info.Kind,
			info.Type,
			info.Offset,
			info.Length,
			duration(info),
			frequency(info),
			channels(info),
		})
	}

	alignRight := []int{1, 5, 6, 7, 8, 9}
	configs := make([]table.ColumnConfig, 0, len(alignRight))
	for _, n := range alignRight {
		configs = append(configs, table.ColumnConfig{
			Number:      n,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	_, err := fmt.Fprintln(w, tw.Render())
	return err
}

func writeYaml(w io.Writer, file string, infos []voice.ResourceInfo) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	err := encoder.Encode(document{
		File:      file,
		Objects:   len(infos),
		Resources: infos,
	})
	if err != nil {
		return err
	}
	return encoder.Close()
}

func duration(info voice.ResourceInfo) string {
	if info.Duration == nil {
		return notAvailable
	}
	return info.Duration.String()
}

func frequency(info voice.ResourceInfo) string {
	if info.Frequency == nil {
		return notAvailable
	}
	return strconv.Itoa(*info.Frequency)
}

func channels(info voice.ResourceInfo) string {
	if info.Channels == nil {
		return notAvailable
	}
	return strconv.Itoa(*info.Channels)
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
