package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tsarev/lernio/internal/store"
)

// StaticEngine drives progression through pre-authored catalog lessons.
// Content is delivered body → steps → quiz questions → completion; indices
// only ever grow until the row is completed, then it is frozen.
type StaticEngine struct {
	catalog  store.CatalogRepo
	progress store.ProgressRepo
}

// NewStaticEngine creates the static-mode engine.
func NewStaticEngine(catalog store.CatalogRepo, progress store.ProgressRepo) *StaticEngine {
	return &StaticEngine{catalog: catalog, progress: progress}
}

// Start resets the learner's progress on the lesson and delivers its body.
// An unknown slug returns ErrContentNotFound so the dispatcher can fall
// back to dynamic mode.
func (e *StaticEngine) Start(ctx context.Context, learnerID, slug string) (Reply, error) {
	lesson, err := e.getLesson(ctx, slug)
	if err != nil {
		return Reply{}, err
	}

	row := &store.LessonProgress{
		LearnerID:  learnerID,
		LessonSlug: slug,
	}
	if err := e.progress.Upsert(ctx, row); err != nil {
		return Reply{}, persistErr("reset lesson progress", err)
	}

	return say(fmt.Sprintf("%s\n\n%s\n\nSay \"next\" when you're ready.", lesson.Title, lesson.Body)), nil
}

// Advance delivers the next undelivered piece of the lesson.
func (e *StaticEngine) Advance(ctx context.Context, learnerID, slug string) (Reply, error) {
	lesson, err := e.getLesson(ctx, slug)
	if err != nil {
		return Reply{}, err
	}

	row, err := e.progress.Get(ctx, learnerID, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return e.Start(ctx, learnerID, slug)
		}
		return Reply{}, persistErr("read lesson progress", err)
	}

	if row.Completed {
		return say(ReplyCourseFinished), nil
	}

	// Steps first.
	if row.StepIdx < len(lesson.Steps) {
		step := lesson.Steps[row.StepIdx]
		row.StepIdx++
		if err := e.progress.Upsert(ctx, row); err != nil {
			return Reply{}, persistErr("advance lesson progress", err)
		}
		return say(step.Body), nil
	}

	// Then the quiz. Advancing onto a question delivers it without
	// consuming it; only an answer moves question_idx.
	if row.QuestionIdx < len(lesson.Questions) {
		return say(formatQuestion(lesson.Questions[row.QuestionIdx])), nil
	}

	// Everything delivered: complete, and score if there was a quiz.
	row.Completed = true
	if total := len(lesson.Questions); total > 0 {
		score := quizScore(row.QuizCorrect, total)
		row.QuizScore = &score
	}
	if err := e.progress.Upsert(ctx, row); err != nil {
		return Reply{}, persistErr("complete lesson progress", err)
	}

	if row.QuizScore == nil {
		return say(ReplyCourseFinished), nil
	}
	return say(fmt.Sprintf("That's the end of the quiz. You scored %d%%.", *row.QuizScore)), nil
}

// Answer consumes the current quiz question. Answers are the 1-based
// option numbers shown to the learner; a numeric answer out of range is
// wrong but still consumes the question, while non-numeric input asks for
// a correction and changes nothing.
func (e *StaticEngine) Answer(ctx context.Context, learnerID, slug, text string) (Reply, error) {
	lesson, err := e.getLesson(ctx, slug)
	if err != nil {
		return Reply{}, err
	}

	row, err := e.progress.Get(ctx, learnerID, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return say(ReplyNoActivePlan), nil
		}
		return Reply{}, persistErr("read lesson progress", err)
	}

	if row.Completed {
		return say(ReplyCourseFinished), nil
	}
	if row.StepIdx < len(lesson.Steps) || row.QuestionIdx >= len(lesson.Questions) {
		return say(ReplyNotAwaiting), nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return say(ReplyCorrection), &ValidationError{Msg: "answer is not a number"}
	}

	q := lesson.Questions[row.QuestionIdx]
	correct := n-1 == q.Correct
	if correct {
		row.QuizCorrect++
	}
	row.QuestionIdx++
	if err := e.progress.Upsert(ctx, row); err != nil {
		return Reply{}, persistErr("record quiz answer", err)
	}

	if correct {
		return say(ReplyCorrect), nil
	}
	return say(fmt.Sprintf("%s The answer was: %s.", ReplyIncorrect, q.Options[q.Correct])), nil
}

// Exit is a no-op for static mode; progress is already durable.
func (e *StaticEngine) Exit(_ context.Context, _ string) (Reply, error) {
	return say(ReplyGoodbye), nil
}

// ActiveLesson returns the slug of the learner's most recently touched
// incomplete lesson, so the route survives a restart.
func (e *StaticEngine) ActiveLesson(ctx context.Context, learnerID string) (string, error) {
	row, err := e.progress.LatestIncomplete(ctx, learnerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", store.ErrNotFound
		}
		return "", persistErr("read latest lesson progress", err)
	}
	return row.LessonSlug, nil
}

func (e *StaticEngine) getLesson(ctx context.Context, slug string) (*store.Lesson, error) {
	lesson, err := e.catalog.Get(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, persistErr("read lesson", err)
	}
	if !lesson.Active {
		return nil, ErrContentNotFound
	}
	return lesson, nil
}

func formatQuestion(q store.QuizQuestion) string {
	var b strings.Builder
	b.WriteString(q.Text)
	for i, opt := range q.Options {
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, opt))
	}
	b.WriteString("\n\nReply with the number of your answer.")
	return b.String()
}

func quizScore(correct, total int) int {
	return int(math.Round(100 * float64(correct) / float64(total)))
}
