// Package memory provides in-memory implementations of the driven ports.
// They back unit tests and the --db=:memory: mode of the CLI.
package memory
