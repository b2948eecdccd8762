// Package executor turns a loaded run file into jobs and runs them.
//
// Planning resolves every puzzle against the registry, decodes its
// options and reads its input before anything is solved, so bad
// configuration fails fast. Execution runs the jobs on a bounded pool of
// workers and returns results in plan order.
package executor
