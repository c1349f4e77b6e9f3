package progress

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/tutorlens/internal/analysis"
	"github.com/abhisek/tutorlens/internal/store"
)

// applyBlockSignals folds per-session block signals into persistent
// aggregates. A signal matches an existing unresolved block when the
// block's description mentions the signal's type or the signal's
// description; a match bumps frequency and re-scores severity, a miss
// creates a fresh block at frequency 1 with the signal's own severity.
func (s *Service) applyBlockSignals(ctx context.Context, studentID string, signals []analysis.MentalBlockSignal) error {
	if len(signals) == 0 {
		return nil
	}

	active, err := s.blocks.ListUnresolved(ctx, studentID)
	if err != nil {
		return fmt.Errorf("list blocks: %w", err)
	}

	for _, sig := range signals {
		idx := matchBlock(active, sig)
		if idx < 0 {
			block := &store.MentalBlock{
				Description: sig.Description,
				BlockType:   string(sig.Type),
				Severity:    sig.Severity,
				Frequency:   1,
				StudentID:   studentID,
				Evidence:    sig.EvidenceFromTranscript,
			}
			if err := s.blocks.Create(ctx, block); err != nil {
				return fmt.Errorf("create block: %w", err)
			}
			active = append(active, *block)

			s.log.Debug("mental block recorded",
				zap.String("type", string(sig.Type)),
				zap.Float64("severity", sig.Severity))
			continue
		}

		existing := &active[idx]
		existing.Frequency++
		existing.Severity = analysis.ComputeSeverity(
			existing.Frequency,
			sig.Type == analysis.BlockAvoidance,
			sig.Type == analysis.BlockEmotional,
		)
		if sig.EvidenceFromTranscript != "" {
			existing.Evidence = sig.EvidenceFromTranscript
		}
		if err := s.blocks.Update(ctx, existing); err != nil {
			return fmt.Errorf("update block %d: %w", existing.ID, err)
		}

		s.log.Debug("mental block recurrence",
			zap.String("type", string(sig.Type)),
			zap.Int("frequency", existing.Frequency),
			zap.Float64("severity", existing.Severity))
	}

	return nil
}

// matchBlock finds the index of the unresolved block this signal
// recurs, or -1. The match is fuzzy on purpose: extractors phrase the
// same block differently across sessions, so the block type is the
// stable anchor, with description containment as a fallback.
func matchBlock(active []store.MentalBlock, sig analysis.MentalBlockSignal) int {
	sigDesc := strings.ToLower(sig.Description)
	sigType := strings.ToLower(string(sig.Type))

	for i := range active {
		desc := strings.ToLower(active[i].Description)
		if active[i].BlockType == string(sig.Type) {
			return i
		}
		if sigType != "" && strings.Contains(desc, sigType) {
			return i
		}
		if sigDesc != "" && strings.Contains(desc, sigDesc) {
			return i
		}
	}
	return -1
}
