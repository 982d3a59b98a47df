package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpcwire/rpcwire/internal/cli/config"
	"github.com/rpcwire/rpcwire/internal/cli/output"
	"github.com/rpcwire/rpcwire/internal/logger"
)

var (
	cfgFile  string
	jsonOut  bool
	noColor  bool
	verbose  bool
	settings config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "rpcwire",
	Short: "Inspect, validate and convert JSON-RPC 1.0/2.0 wire documents",
	Long: `rpcwire decodes and encodes JSON-RPC call and response envelopes in both
the 1.0 and 2.0 dialects, with the strict field rules of each: closed
schemas, dialect inference from field presence, and the 1.0 null-companion
quirks. Feed it a document on stdin or as a file argument.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)

		path := cfgFile
		if path == "" {
			if p, err := config.DefaultPath(); err == nil {
				path = p
			}
		}
		if path == "" {
			settings = config.Default()
			return nil
		}
		var err error
		settings, err = config.Load(path)
		return err
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/rpcwire/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log decode details to stderr")
}

func newFormatter(out io.Writer) *output.Formatter {
	format := output.Format(settings.Format)
	if jsonOut {
		format = output.FormatJSON
	}
	return output.NewFormatter(format, settings.Color && !noColor, out)
}

// readInput reads the document to work on: the named file, or stdin when no
// argument (or "-") is given.
func readInput(args []string) ([]byte, error) {
	if len(args) > 0 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}
