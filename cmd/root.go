package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mit-orcd/coldfront-deployctl/internal/config"
	"github.com/mit-orcd/coldfront-deployctl/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configFile string
	stateDir   string
)

var rootCmd = &cobra.Command{
	Use:   "deployctl",
	Short: "ColdFront ORCD rental portal deployment helper",
	Long: `deployctl turns an operator config into the artifacts a ColdFront
portal deployment needs.

It reads a restricted two-level YAML config (config.yml), resolves the
deployment settings against built-in defaults, and writes:
  - deployment.conf for the install scripts to source
  - fail2ban filters and jails protecting the portal's auth endpoints`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultConfigFile, "Operator config file")
	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", config.DefaultStateDir, "Directory for the audit event log")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	_          = logging.UserError // reserved for future use
)
