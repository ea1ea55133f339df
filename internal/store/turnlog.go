package store

import (
	"context"
	"fmt"

	"github.com/tsarev/lernio/ent"
	"github.com/tsarev/lernio/ent/turn"
)

// turnRepo implements TurnRepo using the ent client.
type turnRepo struct {
	client *ent.Client
}

func (r *turnRepo) Append(ctx context.Context, t *Turn) error {
	create := r.client.Turn.Create().
		SetLearnerID(t.LearnerID).
		SetPlanID(t.PlanID).
		SetModuleIdx(t.ModuleIdx).
		SetStepIdx(t.StepIdx).
		SetRole(turn.Role(t.Role)).
		SetContent(t.Content)
	if !t.Timestamp.IsZero() {
		create.SetTimestamp(t.Timestamp)
	}

	_, err := create.Save(ctx)
	if err != nil {
		// The same turn written twice is a retry, not an error.
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("append turn: %w", err)
	}
	return nil
}

func (r *turnRepo) List(ctx context.Context, learnerID, planID string, limit int) ([]*Turn, error) {
	q := r.client.Turn.Query().
		Where(
			turn.LearnerIDEQ(learnerID),
			turn.PlanIDEQ(planID),
		).
		Order(
			ent.Asc(turn.FieldModuleIdx),
			ent.Asc(turn.FieldStepIdx),
			ent.Asc(turn.FieldTimestamp),
		)
	if limit > 0 {
		q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list turns: %w", err)
	}

	out := make([]*Turn, len(rows))
	for i, row := range rows {
		out[i] = &Turn{
			LearnerID: row.LearnerID,
			PlanID:    row.PlanID,
			ModuleIdx: row.ModuleIdx,
			StepIdx:   row.StepIdx,
			Role:      TurnRole(row.Role),
			Content:   row.Content,
			Timestamp: row.Timestamp,
		}
	}
	return out, nil
}

func (r *turnRepo) Count(ctx context.Context, learnerID string) (int, error) {
	n, err := r.client.Turn.Query().
		Where(turn.LearnerIDEQ(learnerID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count turns: %w", err)
	}
	return n, nil
}
