// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentSource: Enumerates manifest locations and reads documents
//   - TextExtractor: Converts RTF markup to plain text
//   - IndexStore: Deduplicated record persistence and search
//
// # Optional Interfaces
//
//   - ManifestWatcher: Manifest change notification. Only watch mode needs it.
//   - ConfigStore: Application configuration. Defaults apply without it.
//   - Exporter: Renders result rows for download. Only the export command needs it.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
