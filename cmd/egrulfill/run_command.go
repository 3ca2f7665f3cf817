package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"egrulfill/internal/egrul"
	"egrulfill/internal/enrich"
	"egrulfill/internal/logging"
	"egrulfill/internal/resolver"
	"egrulfill/internal/workbook"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Enrich the configured workbook and write the result",
		Long: `Loads the configured workbook, resolves the director name for every
identifier through the EGRUL registry, and saves the enriched copy.

Interrupting the run (Ctrl-C) saves everything processed so far to the
output file and exits cleanly; set input.resume_sheet/resume_row to pick
up where it stopped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnrich(cmd, ctx)
		},
	}
}

func runEnrich(cmd *cobra.Command, cmdCtx *commandContext) error {
	signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.NewFromConfig(cfg.Logging.Level, cfg.Logging.Format, cfg.Paths.LogDir)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	lock := flock.New(cfg.Paths.LockFile)
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock %s: %w", cfg.Paths.LockFile, err)
	}
	if !locked {
		return fmt.Errorf("another egrulfill run holds %s", cfg.Paths.LockFile)
	}
	defer lock.Unlock() //nolint:errcheck

	logger.Info("loading workbook", logging.String("path", cfg.Paths.InputFile))
	wb, err := workbook.Load(cfg.Paths.InputFile)
	if err != nil {
		return err
	}

	client, err := egrul.New(cfg.Registry.BaseURL,
		egrul.WithUserAgent(cfg.Registry.UserAgent),
		egrul.WithTimeout(time.Duration(cfg.Registry.RequestTimeout)*time.Second),
		egrul.WithTokenDelay(time.Duration(cfg.Registry.TokenDelayMS)*time.Millisecond),
	)
	if err != nil {
		return fmt.Errorf("create registry client: %w", err)
	}

	runner := enrich.NewRunner(resolver.New(client, logger), logger, enrich.Options{
		Rules: workbook.Rules{
			IdentifierColumn:    cfg.Input.IdentifierColumn,
			AltIdentifierColumn: cfg.Input.AltIdentifierColumn,
			AltSheets:           cfg.Input.AltColumnSheets,
			NameHeader:          cfg.Input.NameColumn,
			HeaderRows:          cfg.Input.HeaderRows,
		},
		ResumeSheet:    cfg.Input.ResumeSheet,
		ResumeRow:      cfg.Input.ResumeRow,
		RowDelay:       time.Duration(cfg.Registry.RowDelayMS) * time.Millisecond,
		TitleCaseNames: cfg.Output.TitleCaseNames,
	})

	started := time.Now()
	summary, err := runner.Run(signalCtx, wb)
	if err != nil {
		// Nothing was processed; saving would only clobber the output.
		return err
	}

	// Interrupted or not, whatever was processed gets saved.
	if err := workbook.Save(wb, cfg.Paths.OutputFile); err != nil {
		return err
	}
	logger.Info("workbook saved",
		logging.String("path", cfg.Paths.OutputFile),
		logging.Bool("interrupted", summary.Interrupted),
		logging.Duration("elapsed", time.Since(started)))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderSummaryTable(summary))
	colorize := isTerminal(os.Stdout)
	if summary.Interrupted {
		fmt.Fprintln(out, renderStatusLine("Run", statusWarn,
			fmt.Sprintf("interrupted; progress saved to %s", cfg.Paths.OutputFile), colorize))
	} else {
		fmt.Fprintln(out, renderStatusLine("Run", statusOK,
			fmt.Sprintf("complete; saved to %s", cfg.Paths.OutputFile), colorize))
	}
	return nil
}
