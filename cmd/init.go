package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mit-orcd/coldfront-deployctl/internal/audit"
	"github.com/mit-orcd/coldfront-deployctl/internal/errors"
	"github.com/mit-orcd/coldfront-deployctl/internal/generator"
	"github.com/mit-orcd/coldfront-deployctl/internal/tui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create config.yml interactively",
	Long: `Init walks through the deployment settings in an interactive wizard
and writes them as a well-formed config.yml the other commands read.

With --preset the named preset is written directly without the wizard. An
existing config file is never overwritten without --force.`,
	RunE: runInit,
}

var (
	initForce  bool
	initPreset string
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
	initCmd.Flags().StringVar(&initPreset, "preset", "", "Write a preset non-interactively ("+strings.Join(tui.PresetNames(), ", ")+")")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	p := paths()

	if p.ConfigFileExists() && !initForce {
		return errors.New(errors.ExitGeneralError,
			fmt.Sprintf("%s already exists (use --force to overwrite)", p.ConfigFile))
	}

	var settings *generator.Settings
	source := "wizard"

	if initPreset != "" {
		s, ok := tui.PresetSettings(initPreset)
		if !ok {
			return errors.ValidationError(
				fmt.Sprintf("unknown preset %q (have: %s)", initPreset, strings.Join(tui.PresetNames(), ", ")))
		}
		settings = s
		source = "preset=" + initPreset
	} else {
		s, err := tui.RunWizard()
		if err != nil {
			return errors.Wrap(errors.ExitGeneralError, "setup wizard failed", err)
		}
		if s == nil {
			logInfo("Cancelled; nothing written.")
			return nil
		}
		settings = s
	}

	data, err := generator.MarshalConfig(settings)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(p.ConfigFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.IOError(fmt.Sprintf("cannot create directory %s", dir), err)
		}
	}
	if err := os.WriteFile(p.ConfigFile, data, 0644); err != nil {
		return errors.IOError(fmt.Sprintf("cannot write %s", p.ConfigFile), err)
	}

	recordEvent(audit.EventInit, p.ConfigFile, source)
	logSuccess("Wrote %s", p.ConfigFile)
	fmt.Fprintf(cmd.OutOrStdout(), "  Review it, then run: deployctl generate\n")

	return nil
}
