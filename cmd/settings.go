package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mit-orcd/coldfront-deployctl/internal/confparse"
	"github.com/mit-orcd/coldfront-deployctl/internal/errors"
	"github.com/mit-orcd/coldfront-deployctl/internal/generator"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the resolved deployment settings",
	Long: `Settings resolves the operator config against the built-in defaults
and shows every deployment setting with its value and provenance. A missing
config file shows pure defaults.`,
	RunE: runSettings,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, args []string) error {
	p := paths()

	ns, err := confparse.Load(p.ConfigFile)
	if err != nil {
		if !errors.IsNotFound(err) {
			return err
		}
		logInfo("Config file %s not found; showing defaults.", p.ConfigFile)
		ns = nil
	}

	_, fields := generator.Resolve(ns)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tVALUE\tSOURCE")
	fmt.Fprintln(w, "---\t-----\t------")
	for _, f := range fields {
		fmt.Fprintf(w, "%s\t%s\t%s\n", f.Key, f.Value, f.Source)
	}

	return w.Flush()
}
