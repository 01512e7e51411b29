// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ReferenceSearcher: Searches one reference-data domain (Open5e endpoint)
//   - ReferenceCatalog: Exposes one ReferenceSearcher per content type
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ResultCache: Stores aggregated responses. Without it, every query dispatches.
//   - SearchObserver: Receives search and cache events (Prometheus).
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
