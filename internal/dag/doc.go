// Package dag holds the static dependency graph consumed by the scheduler.
//
// A graph is built once from a list of Rules ("step X depends on step Y")
// and then only read. Steps may be any ordered type; every query that
// returns several steps returns them in ascending order so callers never
// depend on map iteration order.
package dag
