// Package log provides structured logging helpers for seqqc.
//
// The package wraps log/slog handlers with a TruncateHandler that shortens
// oversized attribute values. QC data carries whole reads and adapter
// sequences; logging them verbatim makes logs unreadable.
package log
