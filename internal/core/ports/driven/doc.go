// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - NewsAPI: The remote Local News search API
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - GuideStore: Reference guide texts served as MCP resources. Without
//     it, the server falls back to embedded defaults.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
