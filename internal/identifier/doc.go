// Package identifier normalizes raw tax identifier (INN) cell values.
//
// Spreadsheet exports frequently carry numeric artifacts: a cell that once
// held 7707083893 comes back as "7707083893.0" after a round trip through a
// float-typed column. Normalize strips that artifact and surrounding
// whitespace so the same organization always resolves to the same cache key.
package identifier
