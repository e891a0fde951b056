// Package source provides line sources for FastQC output.
//
// FastQC writes its results either as an unpacked directory containing
// fastqc_data.txt and summary.txt, or as a single *_fastqc.zip archive
// with the same members. This package hides that difference behind the
// Source interface: callers ask for ordered text lines and never touch
// file handles or archive entries themselves.
//
// Design decision: Sources read eagerly and release the underlying handle
// before returning. Parsing is pure and in-memory, so holding a descriptor
// open across the parse would only complicate cleanup on error paths,
// especially for archive members.
package source
