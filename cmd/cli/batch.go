package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"alfredoptarigan/ats-analyzer/internal/export"
	"alfredoptarigan/ats-analyzer/internal/services"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Analyze every PDF and TXT resume in a directory into an Excel report",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

var (
	batchOutput      string
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVarP(&batchOutput, "out", "o", "report.xlsx", "Path of the Excel report")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 0, "Files analyzed in parallel (default WORKER_CONCURRENCY)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, analyzer, log, err := setup(ctx)
	if err != nil {
		return err
	}
	defer log.Sync()

	paths, err := services.CollectDocuments(args[0])
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no PDF or TXT files found in %s", args[0])
	}

	concurrency := batchConcurrency
	if concurrency <= 0 {
		concurrency = cfg.Worker.Concurrency
	}

	items, err := services.NewBatchWorker(analyzer, concurrency, log).Run(ctx, paths)
	if err != nil {
		return err
	}

	rows := make([]export.Row, 0, len(items))
	failed := 0
	for _, item := range items {
		row := export.Row{Source: item.Path, Result: item.Result}
		if item.Err != nil {
			row.Err = errors.New(services.UserMessage(item.Err))
			failed++
		}
		rows = append(rows, row)
	}

	f, err := os.Create(batchOutput)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	defer f.Close()

	if err := export.WriteWorkbook(f, rows); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Analyzed %d files (%d failed), report written to %s\n", len(items), failed, batchOutput)
	return nil
}
