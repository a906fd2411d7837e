// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// IngestService rebuilds the index from a manifest; QueryService
// answers searches over it.
package services
