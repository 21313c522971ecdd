// Package file provides file-based implementations of driven port interfaces.
// These adapters read from the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - GuideStore: reference guide texts served as MCP resources
package file
