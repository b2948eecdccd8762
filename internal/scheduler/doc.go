// Package scheduler simulates a fixed pool of identical workers consuming
// a static dependency graph in discrete ticks.
//
// # How It Works
//
// Every tick follows the same cycle:
//  1. Busy workers tick down; workers reaching zero close their step and
//     become idle.
//  2. Open steps whose prerequisites are all closed are ready.
//  3. Ready steps, in ascending order, go to the lowest-numbered idle
//     worker. Ready steps left over wait for the next tick.
//  4. When every worker is idle and nothing is open the run ends.
//
// Closing happens before assignment, so a step finishing in tick N
// unlocks its dependents in the same tick N.
//
// # Determinism
//
// The simulation is single-threaded. Ready steps and idle workers are
// always walked in sorted order, so a given graph, worker count and
// duration function produce the same tick count, assignments and
// completion order on every run.
//
// With one worker and unit durations the simulation degenerates into a
// topological sort with a smallest-ready-step-first tie-break; Order
// exposes that directly.
package scheduler
