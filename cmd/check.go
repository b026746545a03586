package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mit-orcd/coldfront-deployctl/internal/confparse"
	"github.com/mit-orcd/coldfront-deployctl/internal/fail2ban"
	"github.com/mit-orcd/coldfront-deployctl/internal/generator"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the operator config before deploying",
	Long: `Check parses the operator config and reports everything that will
not make it into deployment.conf: lines the restricted parser skips,
duplicated names, names that are not deployment settings, and full-YAML
constructs (lists, deeper nesting) the parser drops silently.

Findings are warnings; generate will still run. A missing config file or an
invalid fail2ban manifest is an error.`,
	RunE: runCheck,
}

var checkManifest string

func init() {
	checkCmd.Flags().StringVar(&checkManifest, "manifest", "", "Also validate a fail2ban manifest")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	p := paths()

	res, err := confparse.ParseFile(p.ConfigFile, confparse.Options{Prefix: confparse.DefaultPrefix})
	if err != nil {
		return err
	}

	findings := 0

	for _, s := range res.Skipped {
		logWarning("%s:%d skipped (%s): %s", p.ConfigFile, s.Line, s.Reason, s.Text)
		findings++
	}

	for _, d := range res.Duplicates() {
		logWarning("%s:%d %s already bound at line %d; the later value wins", p.ConfigFile, d.Line, d.Name, d.FirstLine)
		findings++
	}

	// Names the settings resolver never reads.
	known := make(map[string]bool)
	_, fields := generator.Resolve(nil)
	for _, f := range fields {
		known[f.Name] = true
	}
	ns := res.Namespace()
	for _, name := range ns.Names() {
		if !known[name] {
			logWarning("%s is not a deployment setting and is ignored", name)
			findings++
		}
	}

	// Full-YAML comparison catches constructs the restricted parser drops.
	if data, readErr := os.ReadFile(p.ConfigFile); readErr == nil {
		for _, finding := range confparse.CrossCheck(data) {
			logWarning("%s: %s", p.ConfigFile, finding)
			findings++
		}
	}

	if checkManifest != "" {
		if _, err := fail2ban.LoadManifest(checkManifest); err != nil {
			return err
		}
		logInfo("Manifest %s is valid.", checkManifest)
	}

	if findings > 0 {
		logWarning("%d findings in %s; generate will still run", findings, p.ConfigFile)
		return nil
	}

	logSuccess("Config %s is clean (%d bindings)", p.ConfigFile, ns.Len())
	return nil
}
