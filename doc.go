// Package benchmarkwrapper provides a plugin lifecycle framework for
// benchmark tools.
//
// Each benchmark is a self-registering plugin exposing a fixed three-phase
// lifecycle (setup, collect, cleanup) and a uniform configuration-resolution
// mechanism that merges CLI flags, environment variables, and defaults into a
// single per-plugin namespace.
//
// # Architecture
//
// The framework is organized as a small set of packages:
//
//   - pkg/config: per-plugin configuration declaration and resolution, with
//     the fixed precedence CLI flag > environment variable > default
//   - pkg/registry: the process-wide directory of benchmark plugins,
//     populated from each plugin package's init()
//   - pkg/benchmark: the lifecycle contract, the runner that drives it, and
//     the Result type with its flattening rule for export
//   - pkg/exporter: line-delimited JSON export of flattened results
//   - pkg/benchmarks: built-in benchmark plugins
//
// # Quick Start
//
// Run the built-in sysinfo benchmark and export its results to stdout:
//
//	snafu sysinfo --samples 3 --interval 5s -l env=ci
//
// List the available benchmarks:
//
//	snafu list
package benchmarkwrapper
