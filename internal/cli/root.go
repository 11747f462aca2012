package cli

import (
	"fmt"
	"os"

	"github.com/emmetio/snippets-registry/internal/config"
	"github.com/emmetio/snippets-registry/internal/log"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	rootFiles   []string
	rootDisable []int
	rootDebug   bool
)

var rootCmd = &cobra.Command{
	Use:   config.AppName,
	Short: "Resolve snippets from layered snippet files",
	Long: `snipreg resolves snippet names against layered snippet files. The project
file overrides the user file, which overrides the global file. Keys are exact
names (with "|" aliases) or /regexp/ patterns.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		settings, err := config.Current()
		if err != nil {
			return err
		}
		log.Init(os.Stderr, rootDebug || settings.Debug)
		log.Debug(log.CatConfig, "config loaded", "path", config.FilePath())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringArrayVarP(&rootFiles, "file", "f", nil, "Snippet file to load instead of the configured layers (repeatable; later files win)")
	rootCmd.PersistentFlags().IntSliceVar(&rootDisable, "disable", nil, "Disable the layer at the given level (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
