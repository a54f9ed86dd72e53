// Package driving defines the interfaces that infrastructure calls IN to core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The HTTP API, MCP server and CLI depend on these interfaces; core
// services implement them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driving
