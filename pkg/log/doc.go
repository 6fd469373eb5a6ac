// Package log provides structured flow logging for ObjectFlow registries.
//
// This package defines the Logger interface and Event types for capturing
// what happens inside a registry: value writes, default value updates,
// input pulls, output pushes, interval activations and failures.
// It is separate from operational logging (slog) - the flow trace is a
// complete machine-readable record for debugging and analysis.
//
// # Basic Usage
//
// Applications attach a Logger to a registry:
//
//	// For development: log to console via slog
//	reg := model.NewRegistry(model.WithTracer(log.NewSlogAdapter(slog.Default())))
//
//	// For later analysis: write to a binary file
//	fl, _ := log.NewFileLogger("/var/log/objectflow/flow.flog")
//
//	// Both: use MultiLogger
//	tracer := log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fl)
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with the .flog extension.
// Each value carries its kind and text plus the value's own CBOR encoding
// (ValueData.Raw), which ValueData.Decode turns back into a model.Value.
// The objectflow-log CLI tool provides viewing, filtering and export.
package log
