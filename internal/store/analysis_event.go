package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorlens/ent"
	"github.com/abhisek/tutorlens/ent/analysisevent"
)

func (r *eventRepo) AppendAnalysis(ctx context.Context, data AnalysisEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnalysisEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetKind(data.Kind).
		SetProcessor(data.Processor).
		SetStudentID(data.StudentID).
		SetTranscriptChars(data.TranscriptChars).
		SetEngagementScore(data.EngagementScore).
		SetResult(data.Result).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save analysis event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnalyses(ctx context.Context, opts QueryOpts) ([]AnalysisRun, error) {
	q := r.client.AnalysisEvent.Query().
		Order(ent.Desc(analysisevent.FieldSequence))

	if opts.Kind != "" {
		q = q.Where(analysisevent.Kind(opts.Kind))
	}
	if opts.After > 0 {
		q = q.Where(analysisevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(analysisevent.SequenceLT(opts.Before))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query analysis events: %w", err)
	}

	runs := make([]AnalysisRun, len(rows))
	for i, row := range rows {
		runs[i] = entToAnalysisRun(row)
	}
	return runs, nil
}

func (r *eventRepo) GetAnalysis(ctx context.Context, runID string) (*AnalysisRun, error) {
	row, err := r.client.AnalysisEvent.Query().
		Where(analysisevent.RunID(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get analysis run: %w", err)
	}
	run := entToAnalysisRun(row)
	return &run, nil
}

func entToAnalysisRun(row *ent.AnalysisEvent) AnalysisRun {
	return AnalysisRun{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		AnalysisEventData: AnalysisEventData{
			RunID:           row.RunID,
			Kind:            row.Kind,
			Processor:       row.Processor,
			StudentID:       row.StudentID,
			TranscriptChars: row.TranscriptChars,
			EngagementScore: row.EngagementScore,
			Result:          row.Result,
		},
	}
}
