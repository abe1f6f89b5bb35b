// Package cli implements the sealsel command tree.
//
// Every command writes either human-readable text or a JSON envelope
// ({"status","data","error"}) to stdout, selected with --format. Logs go to
// stderr. Exit codes: 0 success, 1 no admissible seal, 2 command error.
package cli
