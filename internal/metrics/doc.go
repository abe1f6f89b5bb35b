// Package metrics exports Selector activity in the Prometheus exposition
// format.
//
// Collector implements seal.Recorder on a private registry. The CLI is
// short-lived, so nothing is served over HTTP: WriteTextfile renders the
// registry for the node_exporter textfile collector, replacing the target
// file atomically.
package metrics
