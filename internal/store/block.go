package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorlens/ent"
	"github.com/abhisek/tutorlens/ent/mentalblock"
)

// blockRepo implements BlockRepo using the ent client.
type blockRepo struct {
	client *ent.Client
}

func (r *blockRepo) ListUnresolved(ctx context.Context, studentID string) ([]MentalBlock, error) {
	q := r.client.MentalBlock.Query().
		Where(mentalblock.Resolved(false)).
		Order(ent.Desc(mentalblock.FieldSeverity))

	if studentID != "" {
		q = q.Where(mentalblock.StudentID(studentID))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unresolved blocks: %w", err)
	}

	blocks := make([]MentalBlock, len(rows))
	for i, row := range rows {
		blocks[i] = entToMentalBlock(row)
	}
	return blocks, nil
}

func (r *blockRepo) Create(ctx context.Context, block *MentalBlock) error {
	row, err := r.client.MentalBlock.Create().
		SetDescription(block.Description).
		SetBlockType(block.BlockType).
		SetSeverity(block.Severity).
		SetFrequency(block.Frequency).
		SetStudentID(block.StudentID).
		SetEvidence(block.Evidence).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create mental block: %w", err)
	}
	block.ID = row.ID
	block.FirstSeen = row.FirstSeen
	block.LastSeen = row.LastSeen
	return nil
}

func (r *blockRepo) Update(ctx context.Context, block *MentalBlock) error {
	_, err := r.client.MentalBlock.UpdateOneID(block.ID).
		SetSeverity(block.Severity).
		SetFrequency(block.Frequency).
		SetEvidence(block.Evidence).
		SetResolved(block.Resolved).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update mental block %d: %w", block.ID, err)
	}
	return nil
}

func (r *blockRepo) Resolve(ctx context.Context, id int) error {
	_, err := r.client.MentalBlock.UpdateOneID(id).
		SetResolved(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("resolve mental block %d: %w", id, err)
	}
	return nil
}

func entToMentalBlock(row *ent.MentalBlock) MentalBlock {
	return MentalBlock{
		ID:          row.ID,
		Description: row.Description,
		BlockType:   row.BlockType,
		Severity:    row.Severity,
		Frequency:   row.Frequency,
		Resolved:    row.Resolved,
		StudentID:   row.StudentID,
		Evidence:    row.Evidence,
		FirstSeen:   row.FirstSeen,
		LastSeen:    row.LastSeen,
	}
}
