// Package enrich drives the sequential fill loop: it walks every sheet of a
// loaded workbook, resolves the identifier on each row, and writes the
// director name into the target column.
//
// Cancellation is observed between rows. The loop never performs file I/O
// itself; it mutates the in-memory workbook so the caller can save whatever
// state exists when the loop returns, interrupted or not.
package enrich
