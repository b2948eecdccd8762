// Package cli turns command-line arguments into an app.Config. Usage
// problems are reported as *ExitError values carrying exit code 2.
package cli
