package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorlens/ent"
	"github.com/abhisek/tutorlens/ent/topicstate"
)

// topicRepo implements TopicRepo using the ent client.
type topicRepo struct {
	client *ent.Client
}

func (r *topicRepo) Get(ctx context.Context, name string) (*TopicState, error) {
	row, err := r.client.TopicState.Query().
		Where(topicstate.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get topic %q: %w", name, err)
	}
	return entToTopicState(row), nil
}

func (r *topicRepo) Upsert(ctx context.Context, state *TopicState) error {
	existing, err := r.client.TopicState.Query().
		Where(topicstate.Name(state.Name)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query topic %q: %w", state.Name, err)
		}
		_, err = r.client.TopicState.Create().
			SetName(state.Name).
			SetParent(state.Parent).
			SetMastery(state.Mastery).
			SetConfidence(state.Confidence).
			SetSessions(state.Sessions).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create topic %q: %w", state.Name, err)
		}
		return nil
	}

	_, err = existing.Update().
		SetParent(state.Parent).
		SetMastery(state.Mastery).
		SetConfidence(state.Confidence).
		SetSessions(state.Sessions).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update topic %q: %w", state.Name, err)
	}
	return nil
}

func (r *topicRepo) List(ctx context.Context) ([]TopicState, error) {
	rows, err := r.client.TopicState.Query().
		Order(ent.Asc(topicstate.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	states := make([]TopicState, len(rows))
	for i, row := range rows {
		states[i] = *entToTopicState(row)
	}
	return states, nil
}

func entToTopicState(row *ent.TopicState) *TopicState {
	return &TopicState{
		Name:       row.Name,
		Parent:     row.Parent,
		Mastery:    row.Mastery,
		Confidence: row.Confidence,
		Sessions:   row.Sessions,
		LastSeen:   row.LastSeen,
	}
}
