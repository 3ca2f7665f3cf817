// Package workbook loads and saves multi-sheet XLSX files and decides which
// columns hold identifiers and receive resolved names.
//
// Workbooks are read wholesale before processing starts so an interrupted run
// can still write every sheet back out, including the ones it never reached.
package workbook
