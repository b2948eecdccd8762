// Package app wires a run together: it loads the run file, builds the
// solver registry, and hands the planned jobs to the executor before
// rendering the report. It has no knowledge of flags or process exit
// codes; those belong to internal/cli and cmd/cli.
package app
