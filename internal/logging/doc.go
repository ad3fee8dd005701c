// Package logging provides logging utilities for plastic-ctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("deleting workspace", "name", wk.Name, "path", wk.Path)
//	logging.Warn("selector temp file cleanup failed", "path", path, "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Updating workspace %s...", wk.Name)
//	logging.UserSuccess("Workspace %s ready at %s", wk.Name, wk.Path)
//	logging.UserWarning("Selector could not be classified")
//	logging.UserError("Checkout failed: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
