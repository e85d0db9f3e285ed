package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mrclmr/lfdmusic/internal/lfd"
	"github.com/mrclmr/lfdmusic/internal/report"
	"github.com/mrclmr/lfdmusic/internal/voice"
)

func newReadCmd(opts *options) *cobra.Command {
	var format report.Format

	readCmd := &cobra.Command{
		Use:   "read <target>",
		Short: "Opens LFD file and displays contents",
		Args:  targetArg,
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return []string{lfd.Extension}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			}

			if cfg.Format == report.Text {
				if err := printDisclaimer(cmd, cfg); err != nil {
					return err
				}
			}

			path := args[0]
			infos, err := voice.List(path)
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), filepath.Base(path), infos, cfg.Format)
		},
	}

	readCmd.Flags().Var(&format, "format", "output format: text, table or yaml")

	return readCmd
}
