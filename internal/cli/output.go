package cli

import "fmt"

// OutputFormat represents the supported output formats for CLI commands.
// This allows users to choose how they want to receive command results.
type OutputFormat string

const (
	// OutputFormatTable formats output as a table for terminals
	OutputFormatTable OutputFormat = "table"
	// OutputFormatJSON formats output as JSON data
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML formats output as YAML data
	OutputFormatYAML OutputFormat = "yaml"
)

// ValidOutputFormats contains all valid output format values.
var ValidOutputFormats = []OutputFormat{
	OutputFormatTable,
	OutputFormatJSON,
	OutputFormatYAML,
}

// ValidateOutputFormat validates that the given format string is a supported
// output format. Returns nil if valid, or an error listing valid formats.
func ValidateOutputFormat(format string) error {
	switch OutputFormat(format) {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %q (valid: table, json, yaml)", format)
	}
}
