package store

import (
	"context"
	"fmt"

	"github.com/tsarev/lernio/ent"
	"github.com/tsarev/lernio/ent/lesson"
	"github.com/tsarev/lernio/ent/lessonstep"
	"github.com/tsarev/lernio/ent/quizquestion"
)

// catalogRepo implements CatalogRepo using the ent client.
type catalogRepo struct {
	client *ent.Client
}

func (r *catalogRepo) Get(ctx context.Context, slug string) (*Lesson, error) {
	l, err := r.client.Lesson.Query().
		Where(lesson.SlugEQ(slug)).
		WithSteps(func(q *ent.LessonStepQuery) {
			q.Order(ent.Asc(lessonstep.FieldOrd))
		}).
		WithQuestions(func(q *ent.QuizQuestionQuery) {
			q.Order(ent.Asc(quizquestion.FieldOrd))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query lesson %q: %w", slug, err)
	}
	return entLessonToLesson(l), nil
}

func (r *catalogRepo) List(ctx context.Context) ([]*Lesson, error) {
	rows, err := r.client.Lesson.Query().
		Order(ent.Desc(lesson.FieldActive), ent.Asc(lesson.FieldSlug)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}

	out := make([]*Lesson, len(rows))
	for i, l := range rows {
		out[i] = &Lesson{
			Slug:   l.Slug,
			Title:  l.Title,
			Body:   l.Body,
			Active: l.Active,
		}
	}
	return out, nil
}

func (r *catalogRepo) Put(ctx context.Context, l *Lesson) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := putLessonTx(ctx, tx, l); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit lesson %q: %w", l.Slug, err)
	}
	return nil
}

func putLessonTx(ctx context.Context, tx *ent.Tx, l *Lesson) error {
	// Replace semantics: drop any existing lesson with this slug first.
	existing, err := tx.Lesson.Query().Where(lesson.SlugEQ(l.Slug)).Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query existing lesson %q: %w", l.Slug, err)
	}
	if existing != nil {
		if _, err := tx.LessonStep.Delete().
			Where(lessonstep.HasLessonWith(lesson.IDEQ(existing.ID))).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete steps of %q: %w", l.Slug, err)
		}
		if _, err := tx.QuizQuestion.Delete().
			Where(quizquestion.HasLessonWith(lesson.IDEQ(existing.ID))).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete questions of %q: %w", l.Slug, err)
		}
		if err := tx.Lesson.DeleteOne(existing).Exec(ctx); err != nil {
			return fmt.Errorf("delete lesson %q: %w", l.Slug, err)
		}
	}

	created, err := tx.Lesson.Create().
		SetSlug(l.Slug).
		SetTitle(l.Title).
		SetBody(l.Body).
		SetActive(l.Active).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create lesson %q: %w", l.Slug, err)
	}

	for _, s := range l.Steps {
		if _, err := tx.LessonStep.Create().
			SetOrd(s.Ord).
			SetBody(s.Body).
			SetLesson(created).
			Save(ctx); err != nil {
			return fmt.Errorf("create step %d of %q: %w", s.Ord, l.Slug, err)
		}
	}
	for _, q := range l.Questions {
		if _, err := tx.QuizQuestion.Create().
			SetOrd(q.Ord).
			SetText(q.Text).
			SetOptions(q.Options).
			SetCorrect(q.Correct).
			SetLesson(created).
			Save(ctx); err != nil {
			return fmt.Errorf("create question %d of %q: %w", q.Ord, l.Slug, err)
		}
	}
	return nil
}

func (r *catalogRepo) Retire(ctx context.Context, slug string) error {
	n, err := r.client.Lesson.Update().
		Where(lesson.SlugEQ(slug)).
		SetActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("retire lesson %q: %w", slug, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func entLessonToLesson(l *ent.Lesson) *Lesson {
	out := &Lesson{
		Slug:   l.Slug,
		Title:  l.Title,
		Body:   l.Body,
		Active: l.Active,
	}
	for _, s := range l.Edges.Steps {
		out.Steps = append(out.Steps, LessonStep{Ord: s.Ord, Body: s.Body})
	}
	for _, q := range l.Edges.Questions {
		out.Questions = append(out.Questions, QuizQuestion{
			Ord:     q.Ord,
			Text:    q.Text,
			Options: q.Options,
			Correct: q.Correct,
		})
	}
	return out
}
