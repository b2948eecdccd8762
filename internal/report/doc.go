// Package report renders the answers of a run. Text output is an aligned
// table styled with lipgloss; json, yaml and cbor emit the same document
// for machine consumption.
package report
