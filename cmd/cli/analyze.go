package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"alfredoptarigan/ats-analyzer/internal/models"
	"alfredoptarigan/ats-analyzer/internal/services"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a single PDF or TXT resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var analyzeJSON bool

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the analysis as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	_, analyzer, log, err := setup(ctx)
	if err != nil {
		return err
	}
	defer log.Sync()

	result, err := analyzer.AnalyzeFile(ctx, args[0])
	if err != nil {
		if services.IsInputError(err) || services.IsModelMissing(err) {
			return errors.New(services.UserMessage(err))
		}
		return err
	}

	out := cmd.OutOrStdout()
	if analyzeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(out, result)
	return nil
}

func printResult(w io.Writer, r *models.AnalysisResult) {
	fmt.Fprintf(w, "Category:        %s\n", r.Category)
	fmt.Fprintf(w, "Recommended job: %s\n", r.JobTitle)
	fmt.Fprintf(w, "Name:            %s\n", r.Name)
	fmt.Fprintf(w, "Phone:           %s\n", r.Phone)
	fmt.Fprintf(w, "Email:           %s\n", r.Email)
	fmt.Fprintf(w, "ATS score:       %d/100\n", r.AtsScore)
	fmt.Fprintf(w, "Skills (%d):     %s\n", len(r.Skills), strings.Join(r.Skills, ", "))
	fmt.Fprintf(w, "Education:       %s\n", strings.Join(r.Education, ", "))

	fmt.Fprintln(w, "\nTips:")
	for _, tip := range r.Tips {
		fmt.Fprintf(w, "  [%s] %s\n      %s\n", tip.Priority, tip.Title, tip.Detail)
	}
}
