package main

import (
	"github.com/spf13/cobra"

	"article-tui/internal/config"
)

type rootFlags struct {
	configPath  string
	articlePath string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "article-tui",
		Short:         "Preview an article and tune its typography from a side panel",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), cmd.ErrOrStderr(), flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/article-tui/config.yaml)")
	cmd.Flags().StringVar(&flags.articlePath, "article", "", "Markdown file to preview (default: built-in article)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newOptionsCmd())
	cmd.AddCommand(newConfigCmd(flags))

	return cmd
}

// resolveConfigPath returns the --config value or the default location.
func (f *rootFlags) resolveConfigPath() (string, error) {
	if f.configPath != "" {
		return f.configPath, nil
	}
	return config.DefaultPath()
}
