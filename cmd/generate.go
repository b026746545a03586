package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mit-orcd/coldfront-deployctl/internal/audit"
	"github.com/mit-orcd/coldfront-deployctl/internal/config"
	"github.com/mit-orcd/coldfront-deployctl/internal/confparse"
	"github.com/mit-orcd/coldfront-deployctl/internal/generator"
	"github.com/mit-orcd/coldfront-deployctl/internal/logging"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate deployment.conf from the operator config",
	Long: `Generate parses the operator config, resolves the deployment
settings against the built-in defaults, and writes a fully resolved
deployment.conf for the install scripts to source. The output directory is
created if needed; an existing deployment.conf is overwritten.`,
	RunE: runGenerate,
}

var generateOutputDir string

func init() {
	generateCmd.Flags().StringVarP(&generateOutputDir, "output-dir", "o", config.DefaultOutputDir, "Directory deployment.conf is written to")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	p := paths()

	ns, err := confparse.Load(p.ConfigFile)
	if err != nil {
		return err
	}

	settings, fields := generator.Resolve(ns)
	logging.Debug("settings resolved", "config", p.ConfigFile, "bindings", ns.Len())

	path, err := generator.Materialize(generateOutputDir, settings)
	if err != nil {
		recordEvent(audit.EventError, generateOutputDir, err.Error())
		return err
	}

	fromConfig := 0
	for _, f := range fields {
		if f.Source == generator.SourceConfig {
			fromConfig++
		}
	}

	recordEvent(audit.EventGenerate, path, fmt.Sprintf("config=%d default=%d", fromConfig, len(fields)-fromConfig))
	logSuccess("Wrote %s (%d of %d settings from %s)", path, fromConfig, len(fields), p.ConfigFile)

	return nil
}
