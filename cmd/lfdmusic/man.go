package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newManCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:                   "man <dir>",
		Short:                 "Generate man pages",
		Hidden:                true,
		DisableFlagsInUseLine: true,
		Example:               "lfdmusic man . && man ./lfdmusic.1",
		Args:                  cobra.ExactArgs(1),
		ValidArgsFunction:     cobra.NoFileCompletions,
		RunE: func(_ *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "LFDMUSIC",
				Section: "1",
				Source:  "lfdmusic " + rootCmd.Version,
			}
			return doc.GenManTree(rootCmd, header, args[0])
		},
	}
}
