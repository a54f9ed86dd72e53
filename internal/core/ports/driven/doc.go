// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - TreeBrowser: Resolves branch -> commit -> tree for a content repository
//   - RawFetcher: Reads raw document text from a content repository
//   - DocumentParser: Splits front-matter metadata from the markdown body
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
