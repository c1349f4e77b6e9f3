package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorlens/internal/store"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show longitudinal topic mastery and active mental blocks",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()

		topics, err := st.TopicRepo().List(ctx)
		if err != nil {
			return fmt.Errorf("list topics: %w", err)
		}

		if len(topics) == 0 {
			fmt.Println("No topic progress recorded yet. Run 'tutorlens analyze session' first.")
		} else {
			fmt.Println(titleStyle.Render("Topic Mastery"))
			fmt.Printf("%-28s  %-16s  %8s  %10s  %8s\n", "Topic", "Parent", "Mastery", "Confidence", "Sessions")
			fmt.Println(strings.Repeat("─", 80))
			for _, t := range topics {
				fmt.Printf("%-28s  %-16s  %8.1f  %10.1f  %8d\n",
					t.Name, t.Parent, t.Mastery, t.Confidence, t.Sessions)
			}
		}

		studentID, _ := cmd.Flags().GetString("student")
		blocks, err := st.BlockRepo().ListUnresolved(ctx, studentID)
		if err != nil {
			return fmt.Errorf("list blocks: %w", err)
		}

		if len(blocks) > 0 {
			fmt.Println()
			fmt.Println(titleStyle.Render("Active Mental Blocks"))
			for _, b := range blocks {
				fmt.Printf("  %s [%s] %s\n",
					severityStyle(b.Severity).Render(fmt.Sprintf("%.1f", b.Severity)),
					b.BlockType, b.Description)
				fmt.Printf("      seen %dx, first %s\n",
					b.Frequency, b.FirstSeen.Local().Format("2006-01-02"))
			}
		}

		return nil
	},
}

func init() {
	progressCmd.Flags().String("student", "", "Filter blocks by student identifier")
}
