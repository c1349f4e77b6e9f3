package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorlens/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect stored analysis runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent analysis runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		runs, err := s.EventRepo().QueryAnalyses(context.Background(), store.QueryOpts{Limit: limit, Kind: kind})
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}

		if len(runs) == 0 {
			fmt.Println("No analysis runs found.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-8s  %-11s  %-10s  %s\n",
			"Run ID", "Timestamp", "Kind", "Processor", "Student", "Engagement")
		fmt.Println(strings.Repeat("─", 100))
		for _, r := range runs {
			engagement := "-"
			if r.Kind == "session" {
				engagement = fmt.Sprintf("%.1f", r.EngagementScore)
			}
			fmt.Printf("%-36s  %-19s  %-8s  %-11s  %-10s  %s\n",
				r.RunID,
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Kind,
				r.Processor,
				r.StudentID,
				engagement,
			)
		}
		return nil
	},
}

var runsViewCmd = &cobra.Command{
	Use:   "view <run-id>",
	Short: "View the full stored result of an analysis run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		run, err := s.EventRepo().GetAnalysis(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("get run: %w", err)
		}
		if run == nil {
			return fmt.Errorf("run %s not found", args[0])
		}

		fmt.Printf("Run:        %s\n", run.RunID)
		fmt.Printf("Time:       %s\n", run.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Kind:       %s\n", run.Kind)
		fmt.Printf("Processor:  %s\n", run.Processor)
		if run.StudentID != "" {
			fmt.Printf("Student:    %s\n", run.StudentID)
		}
		fmt.Printf("Transcript: %d chars\n", run.TranscriptChars)
		fmt.Println()
		fmt.Println(run.Result)
		return nil
	},
}

func init() {
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsViewCmd)
	runsListCmd.Flags().Int("limit", 20, "Maximum runs to show")
	runsListCmd.Flags().String("kind", "", "Filter by kind: trial, session")
}
