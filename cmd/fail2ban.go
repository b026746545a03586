package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mit-orcd/coldfront-deployctl/internal/audit"
	"github.com/mit-orcd/coldfront-deployctl/internal/config"
	"github.com/mit-orcd/coldfront-deployctl/internal/errors"
	"github.com/mit-orcd/coldfront-deployctl/internal/fail2ban"
)

var fail2banCmd = &cobra.Command{
	Use:   "fail2ban",
	Short: "Manage fail2ban filters and jails for the portal",
	Long: `The fail2ban subcommands work with the intrusion-detection
artifacts protecting the portal: filters matching hostile request patterns
in the nginx access log, and jails binding those filters to a ban policy.

Without --manifest the builtin set is used. A TOML manifest replaces the
builtin set, or extends it when it sets extend = true.`,
}

var fail2banListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the effective filters and jails",
	RunE:  runFail2banList,
}

var fail2banRenderCmd = &cobra.Command{
	Use:   "render [name]",
	Short: "Render artifacts to stdout",
	Long: `Render prints the filter.d and jail.d file content for the named
artifact, or for every artifact in the effective set when no name is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFail2banRender,
}

var fail2banInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Write filters and jails under the fail2ban root",
	Long: `Install renders the effective set and writes every filter under
<root>/filter.d and every jail under <root>/jail.d. Existing artifacts with
the same names are overwritten. Reloading the fail2ban daemon afterwards is
up to the operator.`,
	RunE: runFail2banInstall,
}

var (
	fail2banManifest string
	fail2banRoot     string
)

func init() {
	fail2banCmd.PersistentFlags().StringVarP(&fail2banManifest, "manifest", "m", "", "TOML manifest replacing or extending the builtin set")
	fail2banInstallCmd.Flags().StringVar(&fail2banRoot, "fail2ban-dir", config.DefaultFail2banDir, "Fail2ban configuration root")
	fail2banCmd.AddCommand(fail2banListCmd)
	fail2banCmd.AddCommand(fail2banRenderCmd)
	fail2banCmd.AddCommand(fail2banInstallCmd)
	rootCmd.AddCommand(fail2banCmd)
}

// effectiveSet resolves the --manifest flag into the set to operate on.
func effectiveSet() (*fail2ban.Set, error) {
	if fail2banManifest == "" {
		return fail2ban.Builtin(), nil
	}
	m, err := fail2ban.LoadManifest(fail2banManifest)
	if err != nil {
		return nil, err
	}
	return m.Effective(), nil
}

func runFail2banList(cmd *cobra.Command, args []string) error {
	set, err := effectiveSet()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FILTER\tPATTERNS\tFILE")
	fmt.Fprintln(w, "------\t--------\t----")
	for _, f := range set.Filters {
		fmt.Fprintf(w, "%s\t%d\t%s\n", f.Name, len(f.Failregex), fail2ban.FilterFileName(f.Name))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)

	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "JAIL\tFILTER\tENABLED\tMAXRETRY\tFINDTIME\tBANTIME\tLOGPATH")
	fmt.Fprintln(w, "----\t------\t-------\t--------\t--------\t-------\t-------")
	for _, j := range set.Jails {
		fmt.Fprintf(w, "%s\t%s\t%t\t%d\t%d\t%s\t%s\n",
			j.Name, j.Filter, j.Enabled, j.MaxRetry, j.FindTime, formatBanTime(j.BanTime), j.LogPath)
	}

	return w.Flush()
}

func formatBanTime(seconds int) string {
	if seconds < 0 {
		return "permanent"
	}
	return fmt.Sprintf("%ds", seconds)
}

func runFail2banRender(cmd *cobra.Command, args []string) error {
	set, err := effectiveSet()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return renderOne(cmd, set, args[0])
	}

	out := cmd.OutOrStdout()
	var parts []string
	for i := range set.Filters {
		content, err := fail2ban.RenderFilter(&set.Filters[i])
		if err != nil {
			return err
		}
		parts = append(parts, content)
	}
	for i := range set.Jails {
		content, err := fail2ban.RenderJail(&set.Jails[i])
		if err != nil {
			return err
		}
		parts = append(parts, content)
	}
	fmt.Fprint(out, strings.Join(parts, "\n"))

	return nil
}

func renderOne(cmd *cobra.Command, set *fail2ban.Set, name string) error {
	out := cmd.OutOrStdout()
	var parts []string

	if f := set.FindFilter(name); f != nil {
		content, err := fail2ban.RenderFilter(f)
		if err != nil {
			return err
		}
		parts = append(parts, content)
	}
	if j := set.FindJail(name); j != nil {
		content, err := fail2ban.RenderJail(j)
		if err != nil {
			return err
		}
		parts = append(parts, content)
	}

	if len(parts) == 0 {
		return errors.ValidationError(fmt.Sprintf("no filter or jail named %q in the effective set", name))
	}

	fmt.Fprint(out, strings.Join(parts, "\n"))
	return nil
}

func runFail2banInstall(cmd *cobra.Command, args []string) error {
	set, err := effectiveSet()
	if err != nil {
		return err
	}

	written, err := fail2ban.Install(fail2banRoot, set)
	if err != nil {
		recordEvent(audit.EventError, fail2banRoot, err.Error())
		return err
	}

	for _, path := range written {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", path)
	}

	recordEvent(audit.EventFail2banInstall, fail2banRoot,
		fmt.Sprintf("filters=%d jails=%d", len(set.Filters), len(set.Jails)))
	logSuccess("Installed %d artifacts under %s", len(written), fail2banRoot)
	logInfo("Reload fail2ban to pick them up: systemctl reload fail2ban")

	return nil
}
