// Package writer renders a completed MCA back to the `.cocoa`-adjacent
// CSV-like text format the rest of the toolchain reads: a short comment
// header naming the parameter and configuration counts, a header row of
// parameter names, and one row per test case using each parameter's
// original value names rather than their numeric ids.
//
// What: WriteResult creates (or truncates) the named file and writes the
// header and body through WriteResultTo; WriteResultTo writes to any
// io.Writer, which is what lets callers hand it a file or a buffer in a
// test. The CLI always writes through WriteResult to the --output path;
// "-" is not treated as stdout.
//
// Why: don't-care cells carry no meaning to a reader of the output file,
// so they are rendered as a single `*` rather than the chosen numid
// width's sentinel value; value ids are resolved back to the names the
// `.cocoa` input used, since those are what a test executor downstream
// understands.
//
// Complexity: O(rows · parameters).
//
// Errors: any I/O error from the underlying writer or, for WriteResult,
// from creating the file, wrapped with the path for context.
package writer
