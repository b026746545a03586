package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mit-orcd/coldfront-deployctl/internal/confparse"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a config file into prefixed assignments",
	Long: `Parse reads a restricted two-level YAML config and prints one
shell-safe name=value line per binding: top-level bindings first in file
order, then section bindings in file order.

Without an argument the operator config from --config is parsed. Lines the
parser cannot interpret are skipped and reported on stderr; --strict turns
them, and duplicate names, into an error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

var (
	parsePrefix string
	parseStrict bool
)

func init() {
	parseCmd.Flags().StringVar(&parsePrefix, "prefix", confparse.DefaultPrefix, "Prefix prepended to every generated name")
	parseCmd.Flags().BoolVar(&parseStrict, "strict", false, "Treat skipped lines and duplicate names as errors")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := paths().ConfigFile
	if len(args) == 1 {
		path = args[0]
	}

	res, err := confparse.ParseFile(path, confparse.Options{Prefix: parsePrefix, Strict: parseStrict})
	if err != nil {
		return err
	}

	for _, s := range res.Skipped {
		logWarning("%s:%d skipped (%s)", path, s.Line, s.Reason)
	}

	for _, line := range res.Lines() {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}

	return nil
}
