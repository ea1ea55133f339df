package store

import (
	"context"
	"fmt"

	"github.com/tsarev/lernio/ent"
	"github.com/tsarev/lernio/ent/lessonprogress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, learnerID, slug string) (*LessonProgress, error) {
	row, err := r.client.LessonProgress.Query().
		Where(
			lessonprogress.LearnerIDEQ(learnerID),
			lessonprogress.LessonSlugEQ(slug),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query lesson progress: %w", err)
	}
	return entProgressToProgress(row), nil
}

func (r *progressRepo) Upsert(ctx context.Context, p *LessonProgress) error {
	existing, err := r.client.LessonProgress.Query().
		Where(
			lessonprogress.LearnerIDEQ(p.LearnerID),
			lessonprogress.LessonSlugEQ(p.LessonSlug),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query lesson progress: %w", err)
	}

	if existing == nil {
		create := r.client.LessonProgress.Create().
			SetLearnerID(p.LearnerID).
			SetLessonSlug(p.LessonSlug).
			SetStepIdx(p.StepIdx).
			SetQuestionIdx(p.QuestionIdx).
			SetQuizCorrect(p.QuizCorrect).
			SetCompleted(p.Completed)
		if p.QuizScore != nil {
			create.SetQuizScore(*p.QuizScore)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create lesson progress: %w", err)
		}
		return nil
	}

	update := existing.Update().
		SetStepIdx(p.StepIdx).
		SetQuestionIdx(p.QuestionIdx).
		SetQuizCorrect(p.QuizCorrect).
		SetCompleted(p.Completed)
	if p.QuizScore != nil {
		update.SetQuizScore(*p.QuizScore)
	} else {
		update.ClearQuizScore()
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("update lesson progress: %w", err)
	}
	return nil
}

func (r *progressRepo) LatestIncomplete(ctx context.Context, learnerID string) (*LessonProgress, error) {
	row, err := r.client.LessonProgress.Query().
		Where(
			lessonprogress.LearnerIDEQ(learnerID),
			lessonprogress.CompletedEQ(false),
		).
		Order(ent.Desc(lessonprogress.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query latest incomplete progress: %w", err)
	}
	return entProgressToProgress(row), nil
}

func (r *progressRepo) DeleteByLearner(ctx context.Context, learnerID string) error {
	_, err := r.client.LessonProgress.Delete().
		Where(lessonprogress.LearnerIDEQ(learnerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete lesson progress: %w", err)
	}
	return nil
}

func entProgressToProgress(row *ent.LessonProgress) *LessonProgress {
	return &LessonProgress{
		LearnerID:   row.LearnerID,
		LessonSlug:  row.LessonSlug,
		StepIdx:     row.StepIdx,
		QuestionIdx: row.QuestionIdx,
		QuizCorrect: row.QuizCorrect,
		Completed:   row.Completed,
		QuizScore:   row.QuizScore,
		UpdatedAt:   row.UpdatedAt,
	}
}
