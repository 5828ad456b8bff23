package cmd

import (
	"quarkstart/internal/cli"

	"github.com/spf13/cobra"
)

var streamsOutputFormat string

// newStreamsCmd creates the Cobra command that lists the platform streams
// the configured service offers.
func newStreamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "streams",
		Short: "List the platform streams the service offers",
		Long: `Fetches the available platform streams from the code generation
service and prints them in the service's own order. The stream the service
recommends is suffixed with "(recommended)".`,
		RunE: runStreams,
	}
	cmd.Flags().StringVarP(&streamsOutputFormat, "output", "o", string(cli.OutputFormatTable), "Output format (table, json, yaml)")
	return cmd
}

func runStreams(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateOutputFormat(streamsOutputFormat); err != nil {
		return err
	}

	client, err := newPlatformClient()
	if err != nil {
		return err
	}

	streams, err := client.Streams(cmd.Context())
	if err != nil {
		return err
	}

	return cli.RenderStreams(cmd.OutOrStdout(), cli.OutputFormat(streamsOutputFormat), streams)
}
