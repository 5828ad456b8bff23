package cmd

import (
	"os"

	"quarkstart/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	rootAPIURL     string
	rootConfigPath string
	rootDebug      bool
)

// rootCmd represents the base command for the quarkstart application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "quarkstart",
	Short: "Scaffold Quarkus projects from the command line",
	Long: `quarkstart talks to a code.quarkus.io-compatible code generation
service: it lists the platform streams and extensions the service offers,
shows which request parameters the service supports, and downloads and
unpacks generated project skeletons.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelWarn
		if rootDebug {
			level = logging.LevelDebug
		}
		logging.InitForCLI(level, cmd.ErrOrStderr())
	},
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the
// application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application. It is called by
// main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "quarkstart version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootAPIURL, "api-url", "", "Base API URL of the code generation service (overrides config and QUARKSTART_API_URL)")
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config-path", "", "Directory containing config.yaml (default: $HOME/.config/quarkstart)")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newStreamsCmd())
	rootCmd.AddCommand(newExtensionsCmd())
	rootCmd.AddCommand(newAPICmd())
	rootCmd.AddCommand(newCreateCmd())
}
