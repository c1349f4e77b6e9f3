// Package progress folds transient per-session analysis results into
// persistent longitudinal state: topic mastery/confidence scores and
// recurring mental block aggregates.
package progress

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/tutorlens/internal/analysis"
	"github.com/abhisek/tutorlens/internal/store"
)

// Service applies analysis results to the persistent progress stores.
type Service struct {
	topics store.TopicRepo
	blocks store.BlockRepo
	log    *zap.Logger
}

// NewService creates a progress service. A nil logger is replaced with
// a no-op one.
func NewService(topics store.TopicRepo, blocks store.BlockRepo, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{topics: topics, blocks: blocks, log: log}
}

// TopicChange reports one topic's score movement from a session fold.
type TopicChange struct {
	Topic            string
	MasteryBefore    float64
	MasteryAfter     float64
	ConfidenceBefore float64
	ConfidenceAfter  float64
	Sessions         int
}

// startingScore is the neutral midpoint assigned to a topic the first
// time it appears.
const startingScore = 50.0

// ApplySession folds a session result into topic state and mental
// block aggregates. Topic folding happens first so a block failure
// cannot leave mastery updates unapplied.
func (s *Service) ApplySession(ctx context.Context, studentID string, result *analysis.SessionResult) ([]TopicChange, error) {
	changes, err := s.applyMastery(ctx, result.MasteryUpdates)
	if err != nil {
		return nil, err
	}
	if err := s.applyBlockSignals(ctx, studentID, result.MentalBlockSignals); err != nil {
		return changes, err
	}
	return changes, nil
}

// applyMastery updates one TopicState per mastery vector. Confidence
// folds from the same vector: errors read as hesitation, independent
// solves as positive signals.
func (s *Service) applyMastery(ctx context.Context, updates []analysis.MasteryUpdate) ([]TopicChange, error) {
	var changes []TopicChange

	for _, u := range updates {
		state, err := s.topics.Get(ctx, u.Topic)
		if err != nil {
			return changes, fmt.Errorf("load topic %q: %w", u.Topic, err)
		}
		if state == nil {
			state = &store.TopicState{
				Name:       u.Topic,
				Parent:     analysis.ParentTopic(u.Topic),
				Mastery:    startingScore,
				Confidence: startingScore,
			}
		}

		change := TopicChange{
			Topic:            u.Topic,
			MasteryBefore:    state.Mastery,
			ConfidenceBefore: state.Confidence,
		}

		state.Mastery = analysis.UpdateMastery(state.Mastery, u.Improvement, u.Errors, u.IndependentSolves)
		state.Confidence = analysis.UpdateConfidence(state.Confidence, u.Errors, u.IndependentSolves)
		state.Sessions++

		change.MasteryAfter = state.Mastery
		change.ConfidenceAfter = state.Confidence
		change.Sessions = state.Sessions

		if err := s.topics.Upsert(ctx, state); err != nil {
			return changes, fmt.Errorf("save topic %q: %w", u.Topic, err)
		}

		s.log.Debug("topic state updated",
			zap.String("topic", u.Topic),
			zap.Float64("mastery", state.Mastery),
			zap.Float64("confidence", state.Confidence),
			zap.Int("sessions", state.Sessions))

		changes = append(changes, change)
	}

	return changes, nil
}
