package cmd

import (
	"quarkstart/internal/cli"
	"quarkstart/internal/platform"

	"github.com/spf13/cobra"
)

var (
	apiOutputFormat  string
	apiSkipDiscovery bool
)

// newAPICmd creates the Cobra command that shows which optional download
// parameters the configured service accepts.
func newAPICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api",
		Short: "Show the download parameters the service supports",
		Long: `Fetches the service's interface description and reports whether
the download endpoint accepts the optional "no examples" and "no starter
code" parameters. With --skip-discovery the hardcoded defaults for older
service instances are printed instead (neither parameter supported).`,
		RunE: runAPI,
	}
	cmd.Flags().StringVarP(&apiOutputFormat, "output", "o", string(cli.OutputFormatTable), "Output format (table, json, yaml)")
	cmd.Flags().BoolVar(&apiSkipDiscovery, "skip-discovery", false, "Do not query the service; print the defaults")
	return cmd
}

func runAPI(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateOutputFormat(apiOutputFormat); err != nil {
		return err
	}

	caps := platform.DefaultCapabilities()
	if !apiSkipDiscovery {
		client, err := newPlatformClient()
		if err != nil {
			return err
		}
		caps, err = client.Capabilities(cmd.Context())
		if err != nil {
			return err
		}
	}

	return cli.RenderCapabilities(cmd.OutOrStdout(), cli.OutputFormat(apiOutputFormat), caps)
}
