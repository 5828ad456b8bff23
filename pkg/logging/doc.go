// Package logging provides structured, subsystem-tagged logging for
// quarkstart, built on Go's standard slog package.
//
// All log entries carry a level, a subsystem identifier for filtering, a
// formatted message, and an optional error. Commands initialize the logger
// once at startup:
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Config", "Loaded configuration from %s", path)
//	logging.Error("Platform", err, "Stream discovery failed")
//
// Subsystems in use: Config, Fetch, Platform, Scaffold, Create.
package logging
