package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/tutorlens/internal/analysis"
	"github.com/abhisek/tutorlens/internal/llm"
	"github.com/abhisek/tutorlens/internal/progress"
	"github.com/abhisek/tutorlens/internal/store"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a tutoring transcript",
}

var analyzeTrialCmd = &cobra.Command{
	Use:   "trial <transcript-file>",
	Short: "Analyze a trial/intake session transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd, args[0], "trial")
	},
}

var analyzeSessionCmd = &cobra.Command{
	Use:   "session <transcript-file>",
	Short: "Analyze a regular session transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd, args[0], "session")
	},
}

func init() {
	analyzeCmd.AddCommand(analyzeTrialCmd)
	analyzeCmd.AddCommand(analyzeSessionCmd)

	analyzeCmd.PersistentFlags().String("student", "", "External student identifier")
	analyzeCmd.PersistentFlags().Bool("rule-based", false, "Force the rule-based extractor (skip AI)")
	analyzeCmd.PersistentFlags().Bool("json", false, "Print the raw JSON result instead of the styled report")
}

func runAnalyze(cmd *cobra.Command, path, kind string) error {
	ctx := context.Background()
	log := newLogger(cmd)
	defer log.Sync()

	transcript, err := readTranscript(path)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	studentID, _ := cmd.Flags().GetString("student")
	forceRules, _ := cmd.Flags().GetBool("rule-based")

	processor := buildProcessor(ctx, st, forceRules, log)

	var result any
	var engagement float64
	usedProcessor := processor.Name()

	switch kind {
	case "trial":
		trial, used, err := processWithFallback(processor, log, func(p analysis.Processor) (*analysis.TrialResult, error) {
			return p.ProcessTrial(ctx, transcript, studentID)
		})
		if err != nil {
			return err
		}
		result, usedProcessor = trial, used
	case "session":
		session, used, err := processWithFallback(processor, log, func(p analysis.Processor) (*analysis.SessionResult, error) {
			return p.ProcessSession(ctx, transcript, studentID)
		})
		if err != nil {
			return err
		}
		result, usedProcessor = session, used
		engagement = session.EngagementScore
	}

	runID := uuid.New().String()
	if err := persistRun(ctx, st, runID, kind, usedProcessor, studentID, len(transcript), engagement, result); err != nil {
		log.Warn("failed to persist analysis run", zap.Error(err))
	}

	var changes []progress.TopicChange
	if session, ok := result.(*analysis.SessionResult); ok {
		svc := progress.NewService(st.TopicRepo(), st.BlockRepo(), log)
		changes, err = svc.ApplySession(ctx, studentID, session)
		if err != nil {
			log.Warn("failed to fold session into progress state", zap.Error(err))
		}
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	switch r := result.(type) {
	case *analysis.TrialResult:
		fmt.Println(renderTrialReport(r, usedProcessor, runID))
	case *analysis.SessionResult:
		fmt.Println(renderSessionReport(r, changes, usedProcessor, runID))
	}
	return nil
}

// readTranscript loads the transcript from a file, or stdin for "-".
func readTranscript(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(data), nil
}

// buildProcessor picks the extraction implementation. Explicit
// TUTORLENS_* configuration wins, then discovered vendor keys; with
// neither, or when provider construction fails, the rule-based
// extractor runs instead.
func buildProcessor(ctx context.Context, st *store.Store, forceRules bool, log *zap.Logger) analysis.Processor {
	if forceRules {
		return analysis.NewRuleBasedProcessor()
	}

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			log.Info("no LLM API key configured, using rule-based extraction")
			return analysis.NewRuleBasedProcessor()
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, st.EventRepo(), log)
	if err != nil {
		log.Warn("LLM provider unavailable, using rule-based extraction", zap.Error(err))
		return analysis.NewRuleBasedProcessor()
	}
	return analysis.NewLLMProcessor(provider, analysis.DefaultConfig(), log)
}

// processWithFallback runs the extraction and returns the result along
// with the name of the processor that produced it, degrading from the
// LLM processor to rule-based when the model path fails. Input errors
// are terminal: an empty transcript fails the same way on both paths.
func processWithFallback[T any](p analysis.Processor, log *zap.Logger, run func(analysis.Processor) (*T, error)) (*T, string, error) {
	result, err := run(p)
	if err == nil {
		return result, p.Name(), nil
	}

	var invalid *analysis.ErrInvalidInput
	if errors.As(err, &invalid) || p.Name() == "rule-based" {
		return nil, p.Name(), err
	}

	log.Warn("AI extraction failed, falling back to rule-based", zap.Error(err))
	fallback := analysis.NewRuleBasedProcessor()
	result, err = run(fallback)
	return result, fallback.Name(), err
}

func persistRun(ctx context.Context, st *store.Store, runID, kind, processorName, studentID string, chars int, engagement float64, result any) error {
	encoded, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return st.EventRepo().AppendAnalysis(ctx, store.AnalysisEventData{
		RunID:           runID,
		Kind:            kind,
		Processor:       processorName,
		StudentID:       studentID,
		TranscriptChars: chars,
		EngagementScore: engagement,
		Result:          string(encoded),
	})
}
