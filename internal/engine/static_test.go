package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsarev/lernio/internal/store"
)

func twoStepLesson() *store.Lesson {
	return &store.Lesson{
		Slug:   "insulin-basics",
		Title:  "Insulin Basics",
		Body:   "Insulin moves sugar from your blood into your cells.",
		Active: true,
		Steps: []store.LessonStep{
			{Ord: 0, Body: "Insulin is made in the pancreas."},
			{Ord: 1, Body: "Without insulin, sugar stays in the blood."},
		},
		Questions: []store.QuizQuestion{
			{Ord: 0, Text: "What does insulin do?", Options: []string{"Moves sugar into cells", "Raises blood sugar"}, Correct: 0},
			{Ord: 1, Text: "Where is insulin made?", Options: []string{"In the liver", "In the pancreas"}, Correct: 1},
		},
	}
}

func TestStatic_FullLessonScenario(t *testing.T) {
	ctx := context.Background()
	progress := newFakeProgress()
	eng := NewStaticEngine(newFakeCatalog(twoStepLesson()), progress)

	// start delivers the body.
	r, err := eng.Start(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)
	assert.Contains(t, r.Text, "Insulin moves sugar from your blood")

	// Two advances deliver the two steps.
	r, err = eng.Advance(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)
	assert.Contains(t, r.Text, "pancreas")

	r, err = eng.Advance(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)
	assert.Contains(t, r.Text, "sugar stays in the blood")

	// Third advance delivers question 1.
	r, err = eng.Advance(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)
	assert.Contains(t, r.Text, "What does insulin do?")
	assert.Contains(t, r.Text, "1. Moves sugar into cells")

	// Option 1 is correct (zero-based index 0).
	r, err = eng.Answer(ctx, "learner-1", "insulin-basics", "1")
	require.NoError(t, err)
	assert.Equal(t, ReplyCorrect, r.Text)

	// Next advance delivers question 2.
	r, err = eng.Advance(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)
	assert.Contains(t, r.Text, "Where is insulin made?")

	// 0 is not a listed option number: wrong, but the question is consumed.
	r, err = eng.Answer(ctx, "learner-1", "insulin-basics", "0")
	require.NoError(t, err)
	assert.Contains(t, r.Text, ReplyIncorrect)

	// Final advance completes with one of two correct.
	r, err = eng.Advance(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)
	assert.Contains(t, r.Text, "50%")

	row, err := progress.Get(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)
	assert.True(t, row.Completed)
	require.NotNil(t, row.QuizScore)
	assert.Equal(t, 50, *row.QuizScore)
}

func TestStatic_IndicesMonotoneThenFrozen(t *testing.T) {
	ctx := context.Background()
	progress := newFakeProgress()
	eng := NewStaticEngine(newFakeCatalog(twoStepLesson()), progress)

	_, err := eng.Start(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)

	prevStep, prevQuestion := 0, 0
	for range 8 {
		if _, err := eng.Advance(ctx, "learner-1", "insulin-basics"); err != nil {
			t.Fatalf("advance: %v", err)
		}
		eng.Answer(ctx, "learner-1", "insulin-basics", "1")

		row, err := progress.Get(ctx, "learner-1", "insulin-basics")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, row.StepIdx, prevStep)
		assert.GreaterOrEqual(t, row.QuestionIdx, prevQuestion)
		prevStep, prevQuestion = row.StepIdx, row.QuestionIdx
	}

	// Completed: the row is frozen and advance returns the fixed reply.
	before, err := progress.Get(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)
	require.True(t, before.Completed)

	r, err := eng.Advance(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)
	assert.Equal(t, ReplyCourseFinished, r.Text)

	after, err := progress.Get(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)
	assert.Equal(t, before.StepIdx, after.StepIdx)
	assert.Equal(t, before.QuestionIdx, after.QuestionIdx)
	assert.Equal(t, *before.QuizScore, *after.QuizScore)
}

func TestStatic_LessonWithoutQuizHasNoScore(t *testing.T) {
	ctx := context.Background()
	lesson := twoStepLesson()
	lesson.Questions = nil
	progress := newFakeProgress()
	eng := NewStaticEngine(newFakeCatalog(lesson), progress)

	_, err := eng.Start(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)
	for range 2 {
		_, err = eng.Advance(ctx, "learner-1", "insulin-basics")
		require.NoError(t, err)
	}

	r, err := eng.Advance(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)
	assert.Equal(t, ReplyCourseFinished, r.Text)

	row, err := progress.Get(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)
	assert.True(t, row.Completed)
	assert.Nil(t, row.QuizScore)
}

func TestStatic_StartResetsProgress(t *testing.T) {
	ctx := context.Background()
	progress := newFakeProgress()
	eng := NewStaticEngine(newFakeCatalog(twoStepLesson()), progress)

	_, err := eng.Start(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)
	_, err = eng.Advance(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)

	_, err = eng.Start(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)

	row, err := progress.Get(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)
	assert.Equal(t, 0, row.StepIdx)
	assert.Equal(t, 0, row.QuestionIdx)
	assert.False(t, row.Completed)
}

func TestStatic_NonNumericAnswerLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	progress := newFakeProgress()
	eng := NewStaticEngine(newFakeCatalog(twoStepLesson()), progress)

	_, err := eng.Start(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)
	for range 3 {
		_, err = eng.Advance(ctx, "learner-1", "insulin-basics")
		require.NoError(t, err)
	}

	before, err := progress.Get(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)

	r, err := eng.Answer(ctx, "learner-1", "insulin-basics", "the first one")
	assert.Equal(t, ReplyCorrection, r.Text)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	after, err := progress.Get(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)
	assert.Equal(t, before.QuestionIdx, after.QuestionIdx)
	assert.Equal(t, before.QuizCorrect, after.QuizCorrect)
}

func TestStatic_UnknownSlugSignalsFallback(t *testing.T) {
	eng := NewStaticEngine(newFakeCatalog(), newFakeProgress())

	_, err := eng.Start(context.Background(), "learner-1", "no-such-lesson")
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestStatic_RetiredLessonSignalsFallback(t *testing.T) {
	lesson := twoStepLesson()
	lesson.Active = false
	eng := NewStaticEngine(newFakeCatalog(lesson), newFakeProgress())

	_, err := eng.Start(context.Background(), "learner-1", "insulin-basics")
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestStatic_AnswerOutsideQuizPhase(t *testing.T) {
	ctx := context.Background()
	eng := NewStaticEngine(newFakeCatalog(twoStepLesson()), newFakeProgress())

	_, err := eng.Start(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)

	r, err := eng.Answer(ctx, "learner-1", "insulin-basics", "1")
	require.NoError(t, err)
	assert.Equal(t, ReplyNotAwaiting, r.Text)
}

func TestStatic_PersistenceErrorAborts(t *testing.T) {
	ctx := context.Background()
	progress := newFakeProgress()
	eng := NewStaticEngine(newFakeCatalog(twoStepLesson()), progress)

	_, err := eng.Start(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)

	progress.upsertErr = assert.AnError
	_, err = eng.Advance(ctx, "learner-1", "insulin-basics")
	assert.ErrorIs(t, err, assert.AnError)
}
