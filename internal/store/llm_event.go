package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorlens/ent"
	"github.com/abhisek/tutorlens/ent/llmrequestevent"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.Purpose != "" {
		q = q.Where(llmrequestevent.Purpose(opts.Purpose))
	}
	if opts.After > 0 {
		q = q.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	events := make([]LLMEvent, len(rows))
	for i, row := range rows {
		events[i] = entToLLMEvent(row)
	}
	return events, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	e := entToLLMEvent(row)
	return &e, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	rows, err := r.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}

	byPurpose := make(map[string]*LLMUsage)
	var order []string
	var totalLatency = make(map[string]int64)

	for _, row := range rows {
		u, ok := byPurpose[row.Purpose]
		if !ok {
			u = &LLMUsage{Purpose: row.Purpose, Model: row.Model}
			byPurpose[row.Purpose] = u
			order = append(order, row.Purpose)
		}
		u.Calls++
		u.InputTokens += row.InputTokens
		u.OutputTokens += row.OutputTokens
		totalLatency[row.Purpose] += row.LatencyMs
	}

	usage := make([]LLMUsage, 0, len(order))
	for _, purpose := range order {
		u := byPurpose[purpose]
		if u.Calls > 0 {
			u.AvgLatencyMs = totalLatency[purpose] / int64(u.Calls)
		}
		usage = append(usage, *u)
	}
	return usage, nil
}

func entToLLMEvent(row *ent.LLMRequestEvent) LLMEvent {
	return LLMEvent{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
		},
	}
}
