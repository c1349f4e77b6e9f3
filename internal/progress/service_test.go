package progress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tutorlens/internal/analysis"
	"github.com/abhisek/tutorlens/internal/store"
)

// fakeTopicRepo is an in-memory TopicRepo.
type fakeTopicRepo struct {
	states map[string]store.TopicState
}

func newFakeTopicRepo() *fakeTopicRepo {
	return &fakeTopicRepo{states: make(map[string]store.TopicState)}
}

func (f *fakeTopicRepo) Get(_ context.Context, name string) (*store.TopicState, error) {
	s, ok := f.states[name]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeTopicRepo) Upsert(_ context.Context, state *store.TopicState) error {
	f.states[state.Name] = *state
	return nil
}

func (f *fakeTopicRepo) List(_ context.Context) ([]store.TopicState, error) {
	var all []store.TopicState
	for _, s := range f.states {
		all = append(all, s)
	}
	return all, nil
}

// fakeBlockRepo is an in-memory BlockRepo.
type fakeBlockRepo struct {
	blocks []store.MentalBlock
	nextID int
}

func (f *fakeBlockRepo) ListUnresolved(_ context.Context, studentID string) ([]store.MentalBlock, error) {
	var active []store.MentalBlock
	for _, b := range f.blocks {
		if b.Resolved {
			continue
		}
		if studentID != "" && b.StudentID != studentID {
			continue
		}
		active = append(active, b)
	}
	return active, nil
}

func (f *fakeBlockRepo) Create(_ context.Context, block *store.MentalBlock) error {
	f.nextID++
	block.ID = f.nextID
	f.blocks = append(f.blocks, *block)
	return nil
}

func (f *fakeBlockRepo) Update(_ context.Context, block *store.MentalBlock) error {
	for i := range f.blocks {
		if f.blocks[i].ID == block.ID {
			f.blocks[i] = *block
			return nil
		}
	}
	return nil
}

func (f *fakeBlockRepo) Resolve(_ context.Context, id int) error {
	for i := range f.blocks {
		if f.blocks[i].ID == id {
			f.blocks[i].Resolved = true
		}
	}
	return nil
}

func TestApplySessionNewTopic(t *testing.T) {
	topics := newFakeTopicRepo()
	svc := NewService(topics, &fakeBlockRepo{}, nil)

	result := &analysis.SessionResult{
		MasteryUpdates: []analysis.MasteryUpdate{
			{Topic: "Fractions", Improvement: 0.5, Errors: 1, IndependentSolves: 2},
		},
	}

	changes, err := svc.ApplySession(context.Background(), "student-1", result)
	require.NoError(t, err)
	require.Len(t, changes, 1)

	// From the neutral 50 start: mastery 50 + 2.5 - 3 + 8 = 57.5,
	// confidence 50 - 4 + 6 = 52 (errors read as hesitation, solves as
	// positive signals).
	c := changes[0]
	assert.Equal(t, 50.0, c.MasteryBefore)
	assert.Equal(t, 57.5, c.MasteryAfter)
	assert.Equal(t, 52.0, c.ConfidenceAfter)
	assert.Equal(t, 1, c.Sessions)

	state, err := topics.Get(context.Background(), "Fractions")
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, 57.5, state.Mastery)
	assert.Equal(t, "Number Sense", state.Parent)
}

func TestApplySessionAccumulates(t *testing.T) {
	topics := newFakeTopicRepo()
	svc := NewService(topics, &fakeBlockRepo{}, nil)
	ctx := context.Background()

	result := &analysis.SessionResult{
		MasteryUpdates: []analysis.MasteryUpdate{
			{Topic: "Algebra", Improvement: 0.3, Errors: 0, IndependentSolves: 1},
		},
	}

	_, err := svc.ApplySession(ctx, "s", result)
	require.NoError(t, err)
	_, err = svc.ApplySession(ctx, "s", result)
	require.NoError(t, err)

	state, err := topics.Get(ctx, "Algebra")
	require.NoError(t, err)
	// Each session adds 0.3*5 + 4 = 5.5 mastery points.
	assert.Equal(t, 61.0, state.Mastery)
	assert.Equal(t, 2, state.Sessions)
}

func TestApplySessionZeroVectorIsNoOp(t *testing.T) {
	topics := newFakeTopicRepo()
	svc := NewService(topics, &fakeBlockRepo{}, nil)

	result := &analysis.SessionResult{
		MasteryUpdates: []analysis.MasteryUpdate{{Topic: "Geometry"}},
	}
	changes, err := svc.ApplySession(context.Background(), "s", result)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, changes[0].MasteryBefore, changes[0].MasteryAfter)
	assert.Equal(t, changes[0].ConfidenceBefore, changes[0].ConfidenceAfter)
}

func TestBlockSignalCreatesBlock(t *testing.T) {
	blocks := &fakeBlockRepo{}
	svc := NewService(newFakeTopicRepo(), blocks, nil)

	result := &analysis.SessionResult{
		MentalBlockSignals: []analysis.MentalBlockSignal{
			{
				Description:            "Avoidance language detected: 'i give up'",
				Type:                   analysis.BlockAvoidance,
				Severity:               3.0,
				EvidenceFromTranscript: "i give up on this one",
			},
		},
	}

	_, err := svc.ApplySession(context.Background(), "student-1", result)
	require.NoError(t, err)

	active, err := blocks.ListUnresolved(context.Background(), "student-1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "avoidance", active[0].BlockType)
	assert.Equal(t, 1, active[0].Frequency)
	assert.Equal(t, 3.0, active[0].Severity)
}

func TestBlockSignalRecurrenceEscalates(t *testing.T) {
	blocks := &fakeBlockRepo{}
	svc := NewService(newFakeTopicRepo(), blocks, nil)
	ctx := context.Background()

	signal := analysis.MentalBlockSignal{
		Description: "Avoidance language detected: 'can we skip'",
		Type:        analysis.BlockAvoidance,
		Severity:    3.0,
	}
	result := &analysis.SessionResult{
		MentalBlockSignals: []analysis.MentalBlockSignal{signal},
	}

	for i := 0; i < 3; i++ {
		_, err := svc.ApplySession(ctx, "s", result)
		require.NoError(t, err)
	}

	active, err := blocks.ListUnresolved(ctx, "s")
	require.NoError(t, err)
	require.Len(t, active, 1, "recurring signal must fold into one block")

	b := active[0]
	assert.Equal(t, 3, b.Frequency)
	// frequency 3 escalates: min(3,5) + 1.5 + avoidance 2.0 = 6.5.
	assert.Equal(t, 6.5, b.Severity)
}

func TestBlockSignalDifferentTypesStaySeparate(t *testing.T) {
	blocks := &fakeBlockRepo{}
	svc := NewService(newFakeTopicRepo(), blocks, nil)
	ctx := context.Background()

	result := &analysis.SessionResult{
		MentalBlockSignals: []analysis.MentalBlockSignal{
			{Description: "Avoidance language detected: 'i hate'", Type: analysis.BlockAvoidance, Severity: 3.0},
			{Description: "Emotional distress signal: 'i feel dumb'", Type: analysis.BlockEmotional, Severity: 4.0},
		},
	}

	_, err := svc.ApplySession(ctx, "s", result)
	require.NoError(t, err)

	active, err := blocks.ListUnresolved(ctx, "s")
	require.NoError(t, err)
	assert.Len(t, active, 2)
}
