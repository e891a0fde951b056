// Package report renders parsed QC reports for humans and tools.
//
// Three writers share the Writer interface: JSONWriter for programmatic
// consumers, MarkdownWriter for documentation and sharing, and TextWriter
// for terminal output. MultiWriter fans a report out to several writers,
// e.g. terminal plus file.
package report
