// Package config defines the format-agnostic model of a run file, along
// with the Loader and Converter interfaces that concrete formats (HCL)
// implement.
//
// `config.Model` is the single source of truth for the `app` package when
// planning which puzzles and parts to solve.
package config
