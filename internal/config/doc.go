// Package config loads the sealsel configuration file (sealsel.yaml).
//
// Top-level types:
//   - Config{Log, Catalog, Metrics, Defaults}: full config tree parsed from YAML
//   - LogConfig: level (debug|info|warn|error), format (json|text)
//   - CatalogConfig: unique_part_numbers: reject duplicate part numbers on add
//   - MetricsConfig: textfile: where to write the Prometheus exposition
//   - RequestDefaults: motion, medium, temp_c applied when a command does
//     not set them
//
// Load(path) applies defaults (info level, json format, both motion, 20 C),
// unmarshals, then validates enums. Default() returns the same defaults
// when no file is given.
package config
