// Package hcl provides the concrete HCL implementation of the run file
// Loader and option Converter defined in the `config` package. It is
// responsible for file discovery, HCL-to-model translation, and
// cty-to-Go binding of solver options.
package hcl
