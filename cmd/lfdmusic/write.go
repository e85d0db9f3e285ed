package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mrclmr/lfdmusic/internal/voice"
)

func newWriteCmd(opts *options) *cobra.Command {
	var (
		outputDir string
		playlist  bool
	)

	writeCmd := &cobra.Command{
		Use:   "write <target>",
		Short: "Creates LFD file based on contents of directory",
		Long:  "Creates LFD file based on contents of directory.\nAn existing LFD file of the same name is not overwritten.",
		Args:  targetArg,
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveFilterDirs
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("output-dir") {
				cfg.OutputDir = outputDir
			}
			if cmd.Flags().Changed("playlist") {
				cfg.Playlist = playlist
			}

			if err := printDisclaimer(cmd, cfg); err != nil {
				return err
			}

			var createPlaylist voice.CreatePlaylist
			if cfg.Playlist {
				createPlaylist = func(name string) (io.WriteCloser, error) {
					return os.Create(filepath.Join(cfg.OutputDir, name))
				}
			}

			assembler, err := voice.NewAssembler(cfg.OutputDir, createPlaylist)
			if err != nil {
				return err
			}
			_, err = assembler.Assemble(cmd.Context(), args[0])
			return err
		},
	}

	writeCmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "directory of the written LFD file")
	writeCmd.Flags().BoolVar(&playlist, "playlist", false, "also write an M3U playlist of the packed files")

	return writeCmd
}
