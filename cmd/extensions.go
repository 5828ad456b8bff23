package cmd

import (
	"quarkstart/internal/cli"
	"quarkstart/internal/platform"

	"github.com/spf13/cobra"
)

var (
	extensionsOutputFormat string
	extensionsStreamKey    string
	extensionsSearch       string
)

// newExtensionsCmd creates the Cobra command that lists the extension
// catalog of the configured service.
func newExtensionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extensions",
		Short: "List the extensions the service offers",
		Long: `Fetches the extension catalog from the code generation service.
Use --stream to ask for the catalog of a specific platform stream and
--search to filter by id, name or description.`,
		RunE: runExtensions,
	}
	cmd.Flags().StringVarP(&extensionsOutputFormat, "output", "o", string(cli.OutputFormatTable), "Output format (table, json, yaml)")
	cmd.Flags().StringVar(&extensionsStreamKey, "stream", "", "Platform stream key, e.g. io.quarkus.platform:3.15")
	cmd.Flags().StringVar(&extensionsSearch, "search", "", "Case-insensitive substring filter")
	return cmd
}

func runExtensions(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateOutputFormat(extensionsOutputFormat); err != nil {
		return err
	}

	client, err := newPlatformClient()
	if err != nil {
		return err
	}

	extensions, err := client.Extensions(cmd.Context(), extensionsStreamKey)
	if err != nil {
		return err
	}
	extensions = platform.FilterExtensions(extensions, extensionsSearch)

	return cli.RenderExtensions(cmd.OutOrStdout(), cli.OutputFormat(extensionsOutputFormat), extensions)
}
