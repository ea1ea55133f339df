package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tsarev/lernio/ent"
	"github.com/tsarev/lernio/ent/learningplan"
)

// planRepo implements PlanRepo using the ent client.
type planRepo struct {
	client *ent.Client
}

func (r *planRepo) Activate(ctx context.Context, p *Plan) error {
	modules, err := modulesToMaps(p.Modules)
	if err != nil {
		return fmt.Errorf("marshal plan modules: %w", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// Deactivate the previous plan and create the new one atomically so
	// there is never more than one active plan per learner.
	if _, err := tx.LearningPlan.Update().
		Where(
			learningplan.LearnerIDEQ(p.LearnerID),
			learningplan.Active(true),
		).
		SetActive(false).
		Save(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("deactivate previous plan: %w", err)
	}

	if _, err := tx.LearningPlan.Create().
		SetLearnerID(p.LearnerID).
		SetPlanID(p.PlanID).
		SetTopic(p.Topic).
		SetGoal(p.Goal).
		SetModules(modules).
		SetActive(true).
		Save(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("create plan: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit plan activation: %w", err)
	}
	return nil
}

func (r *planRepo) Active(ctx context.Context, learnerID string) (*Plan, error) {
	row, err := r.client.LearningPlan.Query().
		Where(
			learningplan.LearnerIDEQ(learnerID),
			learningplan.Active(true),
		).
		Order(ent.Desc(learningplan.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query active plan: %w", err)
	}
	return entPlanToPlan(row)
}

func (r *planRepo) Get(ctx context.Context, learnerID, planID string) (*Plan, error) {
	row, err := r.client.LearningPlan.Query().
		Where(
			learningplan.LearnerIDEQ(learnerID),
			learningplan.PlanIDEQ(planID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query plan: %w", err)
	}
	return entPlanToPlan(row)
}

func (r *planRepo) DeleteByLearner(ctx context.Context, learnerID string) error {
	_, err := r.client.LearningPlan.Delete().
		Where(learningplan.LearnerIDEQ(learnerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete plans: %w", err)
	}
	return nil
}

// modulesToMaps converts typed modules to the generic JSON shape ent stores.
func modulesToMaps(modules []PlanModule) ([]map[string]any, error) {
	b, err := json.Marshal(modules)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func entPlanToPlan(row *ent.LearningPlan) (*Plan, error) {
	b, err := json.Marshal(row.Modules)
	if err != nil {
		return nil, fmt.Errorf("marshal ent modules: %w", err)
	}
	var modules []PlanModule
	if err := json.Unmarshal(b, &modules); err != nil {
		return nil, fmt.Errorf("unmarshal plan modules: %w", err)
	}
	return &Plan{
		LearnerID: row.LearnerID,
		PlanID:    row.PlanID,
		Topic:     row.Topic,
		Goal:      row.Goal,
		Modules:   modules,
		Active:    row.Active,
		CreatedAt: row.CreatedAt,
	}, nil
}
