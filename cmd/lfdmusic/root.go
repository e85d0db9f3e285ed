package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrclmr/lfdmusic/internal/config"
	"github.com/mrclmr/lfdmusic/internal/log"
)

const disclaimer = `
THIS PROGRAM IS NOT MADE, DISTRIBUTED, OR SUPPORTED BY
LUCASARTS ENTERTAINMENT COMPANY. ELEMENTS TM & (c) LUCASARTS
ENTERTAINMENT COMPANY.
`

type options struct {
	configPath string
	cfg        *config.Config
}

func ExecuteContext(ctx context.Context, version string) error {
	rootCmd, err := newRootCmd(version)
	if err != nil {
		return err
	}
	return execute(ctx, rootCmd)
}

func execute(ctx context.Context, rootCmd *cobra.Command) error {
	err := rootCmd.ExecuteContext(ctx)
	var uErr *usageError
	if errors.As(err, &uErr) {
		_, _ = fmt.Fprintf(rootCmd.OutOrStdout(), "ERROR - %s\n%s\n", uErr.reason, usage)
	}
	return err
}

func newRootCmd(
	version string,
) (*cobra.Command, error) {
	cobra.EnableCaseInsensitive = true

	opts := &options{}

	rootCmd := &cobra.Command{
		Version:           version,
		Use:               "lfdmusic <command> <target>",
		Short:             "Pack Creative Voice files into TIE Fighter LFD containers",
		Long:              "Pack Creative Voice files into TIE Fighter LFD containers and list their contents.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Args:              cobra.ArbitraryArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			switch cfg.LogLevel {
			case slog.LevelInfo:
				slog.SetDefault(slog.New(log.NewMsgHandler(cmd.OutOrStdout(), cfg.LogLevel)))
			default:
				slog.SetLogLoggerLevel(cfg.LogLevel)
			}
			return nil
		},
		RunE: runRoot,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "yaml configuration file (see 'lfdmusic example')")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return newUsageError(err.Error())
	})

	exampleCmd := &cobra.Command{
		Use:               "example",
		Short:             "Print example configuration yaml",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			example, err := config.Example()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), example)
			return err
		},
	}

	rootCmd.SetHelpCommand(newHelpCmd(opts))
	rootCmd.AddCommand(newReadCmd(opts))
	rootCmd.AddCommand(newWriteCmd(opts))
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(newManCmd(rootCmd))

	return rootCmd, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("configuration not found: %w", err)
	}
	f, err := os.OpenFile(path, os.O_RDONLY, 0o600)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	cfg, err := config.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("configuration %s: %w", path, err)
	}
	return cfg, nil
}

func printDisclaimer(cmd *cobra.Command, cfg *config.Config) error {
	if !cfg.Disclaimer {
		return nil
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), disclaimer+"\n")
	return err
}
