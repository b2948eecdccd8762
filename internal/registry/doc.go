// Package registry provides the central "glue" for the module system.
//
// The Registry maps puzzle names used in run files (e.g. "day07") to the
// compiled Go solvers that implement them. Each module registers its
// solver at startup; the registry is then validated so that option
// structs and part tables are well formed before any puzzle runs.
package registry
