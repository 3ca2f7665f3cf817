package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"egrulfill/internal/identifier"
	"egrulfill/internal/logging"
	"egrulfill/internal/resolver"
	"egrulfill/internal/workbook"
)

// NameResolver resolves raw identifier cell values to director names.
type NameResolver interface {
	Resolve(ctx context.Context, raw string) string
	Stats() resolver.Stats
}

// Options configures a Runner.
type Options struct {
	Rules          workbook.Rules
	ResumeSheet    string        // sheet to resume in; earlier sheets are skipped
	ResumeRow      int           // 0-based data row offset within ResumeSheet
	RowDelay       time.Duration // pause between rows, keeps the registry happy
	TitleCaseNames bool          // re-case the registry's upper-cased names
}

// Summary reports what one run accomplished.
type Summary struct {
	RunID       string
	Interrupted bool
	Sheets      int // sheets the loop entered
	Processed   int // rows with an identifier, resolved (possibly negative)
	Skipped     int // rows with a blank identifier cell
	Filled      int // rows that received a non-empty name
	Resolver    resolver.Stats
}

// Runner walks workbook sheets and fills the name column row by row.
type Runner struct {
	opts     Options
	resolver NameResolver
	logger   *slog.Logger
	caser    cases.Caser
}

// NewRunner creates a runner around the supplied resolver.
func NewRunner(res NameResolver, logger *slog.Logger, opts Options) *Runner {
	return &Runner{
		opts:     opts,
		resolver: res,
		logger:   logging.NewComponentLogger(logger, "enrich"),
		caser:    cases.Title(language.Russian),
	}
}

// Run processes every sheet in order and returns a summary. When ctx is
// cancelled the loop stops before the next row and returns with Interrupted
// set; every row fully written before that point is present in the workbook.
//
// A resume sheet naming no sheet in the workbook is an error: skipping every
// sheet over a typo and still writing the output would silently discard the
// run.
func (r *Runner) Run(ctx context.Context, wb *workbook.Workbook) (Summary, error) {
	summary := Summary{RunID: uuid.NewString()}
	logger := r.logger.With(logging.String(logging.FieldRunID, summary.RunID))

	resumeSheet := strings.TrimSpace(r.opts.ResumeSheet)
	resumePending := resumeSheet != ""
	if resumePending && wb.Sheet(resumeSheet) == nil {
		return summary, fmt.Errorf("resume sheet %q not found in workbook", resumeSheet)
	}

	for _, sheet := range wb.Sheets {
		if resumePending && !workbook.EqualNames(sheet.Name, resumeSheet) {
			logger.Info("sheet skipped by resume point",
				logging.String(logging.FieldSheet, sheet.Name))
			continue
		}

		start := r.opts.Rules.DataStart()
		if resumePending {
			start += r.opts.ResumeRow
			resumePending = false
		}

		summary.Sheets++
		r.processSheet(ctx, sheet, start, logger, &summary)
		if summary.Interrupted {
			break
		}
	}

	summary.Resolver = r.resolver.Stats()
	return summary, nil
}

func (r *Runner) processSheet(ctx context.Context, sheet *workbook.Sheet, start int, logger *slog.Logger, summary *Summary) {
	sheetLogger := logger.With(logging.String(logging.FieldSheet, sheet.Name))

	identifierCol := r.opts.Rules.IdentifierIndex(sheet.Name)
	nameCol := r.opts.Rules.NameIndex(sheet)
	sheetLogger.Info("processing sheet",
		logging.Int("rows", len(sheet.Rows)),
		logging.Int("start_row", start),
		logging.Int("identifier_column", identifierCol+1),
		logging.Int("name_column", nameCol+1))

	for row := start; row < len(sheet.Rows); row++ {
		if ctx.Err() != nil {
			summary.Interrupted = true
			sheetLogger.Info("run interrupted",
				logging.Int(logging.FieldRow, row))
			return
		}

		raw := sheet.Cell(row, identifierCol)
		if identifier.IsBlank(raw) {
			sheet.SetCell(row, nameCol, "")
			summary.Skipped++
			continue
		}

		name := r.resolver.Resolve(ctx, raw)
		if ctx.Err() != nil {
			// The lookup was cut short; leave the row for the next run.
			summary.Interrupted = true
			sheetLogger.Info("run interrupted",
				logging.Int(logging.FieldRow, row))
			return
		}
		if r.opts.TitleCaseNames && name != "" {
			name = r.caser.String(name)
		}
		sheet.SetCell(row, nameCol, name)
		summary.Processed++
		if name != "" {
			summary.Filled++
			sheetLogger.Debug("name resolved",
				logging.Int(logging.FieldRow, row),
				logging.String(logging.FieldIdentifier, identifier.Normalize(raw)))
		} else {
			sheetLogger.Debug("name not found",
				logging.Int(logging.FieldRow, row),
				logging.String(logging.FieldIdentifier, identifier.Normalize(raw)))
		}

		if row < len(sheet.Rows)-1 {
			sleepContext(ctx, r.opts.RowDelay)
		}
	}

	sheetLogger.Info("sheet complete")
}

func sleepContext(ctx context.Context, delay time.Duration) {
	if delay <= 0 {
		return
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
