package store

import (
	"context"
	"fmt"

	"github.com/tsarev/lernio/ent"
	"github.com/tsarev/lernio/ent/progressrecord"
)

// recordRepo implements RecordRepo using the ent client.
type recordRepo struct {
	client *ent.Client
}

func (r *recordRepo) Get(ctx context.Context, learnerID, planID string) (*ProgressRecord, error) {
	row, err := r.client.ProgressRecord.Query().
		Where(
			progressrecord.LearnerIDEQ(learnerID),
			progressrecord.PlanIDEQ(planID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query progress record: %w", err)
	}
	return entRecordToRecord(row), nil
}

func (r *recordRepo) Upsert(ctx context.Context, rec *ProgressRecord) error {
	existing, err := r.client.ProgressRecord.Query().
		Where(
			progressrecord.LearnerIDEQ(rec.LearnerID),
			progressrecord.PlanIDEQ(rec.PlanID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query progress record: %w", err)
	}

	if existing == nil {
		create := r.client.ProgressRecord.Create().
			SetLearnerID(rec.LearnerID).
			SetPlanID(rec.PlanID).
			SetTopic(rec.Topic).
			SetModuleIdx(rec.ModuleIdx).
			SetStepIdx(rec.StepIdx)
		if rec.Snapshot != nil {
			create.SetSnapshot(*rec.Snapshot)
		}
		if rec.PrevSummary != nil {
			create.SetPrevSummary(*rec.PrevSummary)
		}
		if rec.LastSentStepID != nil {
			create.SetLastSentStepID(*rec.LastSentStepID)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create progress record: %w", err)
		}
		return nil
	}

	update := existing.Update().
		SetTopic(rec.Topic).
		SetModuleIdx(rec.ModuleIdx).
		SetStepIdx(rec.StepIdx)
	if rec.Snapshot != nil {
		update.SetSnapshot(*rec.Snapshot)
	} else {
		update.ClearSnapshot()
	}
	if rec.PrevSummary != nil {
		update.SetPrevSummary(*rec.PrevSummary)
	} else {
		update.ClearPrevSummary()
	}
	if rec.LastSentStepID != nil {
		update.SetLastSentStepID(*rec.LastSentStepID)
	} else {
		update.ClearLastSentStepID()
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("update progress record: %w", err)
	}
	return nil
}

func (r *recordRepo) DeleteByLearner(ctx context.Context, learnerID string) error {
	_, err := r.client.ProgressRecord.Delete().
		Where(progressrecord.LearnerIDEQ(learnerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete progress records: %w", err)
	}
	return nil
}

func entRecordToRecord(row *ent.ProgressRecord) *ProgressRecord {
	return &ProgressRecord{
		LearnerID:      row.LearnerID,
		PlanID:         row.PlanID,
		Topic:          row.Topic,
		ModuleIdx:      row.ModuleIdx,
		StepIdx:        row.StepIdx,
		Snapshot:       row.Snapshot,
		PrevSummary:    row.PrevSummary,
		LastSentStepID: row.LastSentStepID,
		UpdatedAt:      row.UpdatedAt,
	}
}
