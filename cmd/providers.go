package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/hpkotak/clx/internal/config"
	"github.com/hpkotak/clx/internal/provider"
	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List supported providers",
	Args:  cobra.NoArgs,
	RunE:  runProviders,
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, args []string) error {
	current := config.DefaultProvider
	if cfg, err := config.Load(configPath()); err == nil {
		current = cfg.Provider
	}

	w := tabwriter.NewWriter(ioOut, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "  ID\tNAME\tDEFAULT MODEL\tAPI KEY\tENDPOINT")
	for _, d := range provider.All() {
		marker := " "
		if d.ID == current {
			marker = "*"
		}
		key := d.CredentialEnv
		if key == "" {
			key = "-"
		}
		endpoint := d.Endpoint
		if endpoint == "" {
			endpoint = "native"
		}
		_, _ = fmt.Fprintf(w, "%s %s\t%s\t%s\t%s\t%s\n", marker, d.ID, d.DisplayName, d.DefaultModel, key, endpoint)
	}
	return w.Flush()
}
