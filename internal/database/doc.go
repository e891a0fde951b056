// Package database provides SQLite-backed storage for parsed QC runs.
//
// Each parsed report is stored once: the headline numbers in queryable
// columns for listing and comparison, and the full typed report as JSON
// for lossless retrieval. The store backs the `seqqc list` command and the
// --db flag of `seqqc parse`.
package database
