package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"egrulfill/internal/enrich"
)

type statusKind int

const (
	statusOK statusKind = iota
	statusWarn
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	status := "OK"
	color := ansiGreen
	if kind == statusWarn {
		status = "WARN"
		color = ansiYellow
	}
	if colorize {
		status = color + status + ansiReset
	}
	return fmt.Sprintf("%s [%s] %s", label, status, message)
}

func renderSummaryTable(summary enrich.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Metric", "Count"})
	rows := []struct {
		metric string
		count  int
	}{
		{"Sheets processed", summary.Sheets},
		{"Rows processed", summary.Processed},
		{"Rows skipped (blank)", summary.Skipped},
		{"Names filled", summary.Filled},
		{"Registry lookups", summary.Resolver.Misses},
		{"Cache hits", summary.Resolver.Hits},
		{"Not found", summary.Resolver.Negative},
	}
	for _, row := range rows {
		tw.AppendRow(table.Row{row.metric, strconv.Itoa(row.count)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
