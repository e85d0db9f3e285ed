package cmd

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/mrclmr/lfdmusic/internal/slot"
)

var helpTmpl = template.Must(template.New("help").
	Funcs(template.FuncMap{"title": title}).
	Parse(`
LFDMusic packs Creative Labs VOC files into an LFD container for
LucasArts' TIE Fighter, which reads the voice messages of a mission
from a single LFD file.

To create a new LFD container of audio files run:

lfdmusic write <target>

<target> is the directory that holds the audio files. The LFD file is
named after the directory.

To list the audio files stored in an LFD file run:

lfdmusic read <target>

<target> is the path of the LFD file.

NOTE:
LFDMusic does not check that the files are VOC files, that they use
the sample rate the game expects or that they work in the game at all.

Files must follow the naming convention:
{{- range . }}
{{- if eq .Max 1 }}
- {{ title .String }} messages end with '{{ .Letter }}1' (ex: 1m1{{ .Letter }}1)
{{- else }}
- {{ title .String }} messages end with '{{ .Letter }}' followed by a number (1 to {{ .Max }}) (ex: 1m1{{ .Letter }}1)
{{- end }}
{{- end }}

Only files matching the naming convention are packed. Within a category
packing stops at the first missing number.

LFDMusic also expects:
- All matching files in the directory are Creative Labs VOC files
- All files are named as they should be listed in the LFD file
- All file names without extension have eight or less characters
`))

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func newHelpCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:               "help",
		Short:             "Displays information about this program",
		Args:              helpArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := printDisclaimer(cmd, opts.cfg); err != nil {
				return err
			}
			return writeHelp(cmd)
		},
	}
}

func writeHelp(cmd *cobra.Command) error {
	var b strings.Builder
	if err := helpTmpl.Execute(&b, slot.Categories); err != nil {
		return err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), b.String())
	return err
}
