// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tsarev/lernio/ent/learningplan"
	"github.com/tsarev/lernio/ent/lesson"
	"github.com/tsarev/lernio/ent/lessonprogress"
	"github.com/tsarev/lernio/ent/lessonstep"
	"github.com/tsarev/lernio/ent/llmrequestevent"
	"github.com/tsarev/lernio/ent/progressrecord"
	"github.com/tsarev/lernio/ent/quizquestion"
	"github.com/tsarev/lernio/ent/schema"
	"github.com/tsarev/lernio/ent/turn"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	learningplanFields := schema.LearningPlan{}.Fields()
	_ = learningplanFields
	// learningplanDescLearnerID is the schema descriptor for learner_id field.
	learningplanDescLearnerID := learningplanFields[0].Descriptor()
	// learningplan.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	learningplan.LearnerIDValidator = learningplanDescLearnerID.Validators[0].(func(string) error)
	// learningplanDescPlanID is the schema descriptor for plan_id field.
	learningplanDescPlanID := learningplanFields[1].Descriptor()
	// learningplan.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	learningplan.PlanIDValidator = learningplanDescPlanID.Validators[0].(func(string) error)
	// learningplanDescTopic is the schema descriptor for topic field.
	learningplanDescTopic := learningplanFields[2].Descriptor()
	// learningplan.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	learningplan.TopicValidator = learningplanDescTopic.Validators[0].(func(string) error)
	// learningplanDescActive is the schema descriptor for active field.
	learningplanDescActive := learningplanFields[5].Descriptor()
	// learningplan.DefaultActive holds the default value on creation for the active field.
	learningplan.DefaultActive = learningplanDescActive.Default.(bool)
	// learningplanDescCreatedAt is the schema descriptor for created_at field.
	learningplanDescCreatedAt := learningplanFields[6].Descriptor()
	// learningplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	learningplan.DefaultCreatedAt = learningplanDescCreatedAt.Default.(func() time.Time)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescSlug is the schema descriptor for slug field.
	lessonDescSlug := lessonFields[0].Descriptor()
	// lesson.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	lesson.SlugValidator = lessonDescSlug.Validators[0].(func(string) error)
	// lessonDescTitle is the schema descriptor for title field.
	lessonDescTitle := lessonFields[1].Descriptor()
	// lesson.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lesson.TitleValidator = lessonDescTitle.Validators[0].(func(string) error)
	// lessonDescBody is the schema descriptor for body field.
	lessonDescBody := lessonFields[2].Descriptor()
	// lesson.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	lesson.BodyValidator = lessonDescBody.Validators[0].(func(string) error)
	// lessonDescActive is the schema descriptor for active field.
	lessonDescActive := lessonFields[3].Descriptor()
	// lesson.DefaultActive holds the default value on creation for the active field.
	lesson.DefaultActive = lessonDescActive.Default.(bool)
	// lessonDescCreatedAt is the schema descriptor for created_at field.
	lessonDescCreatedAt := lessonFields[4].Descriptor()
	// lesson.DefaultCreatedAt holds the default value on creation for the created_at field.
	lesson.DefaultCreatedAt = lessonDescCreatedAt.Default.(func() time.Time)
	lessonprogressFields := schema.LessonProgress{}.Fields()
	_ = lessonprogressFields
	// lessonprogressDescLearnerID is the schema descriptor for learner_id field.
	lessonprogressDescLearnerID := lessonprogressFields[0].Descriptor()
	// lessonprogress.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	lessonprogress.LearnerIDValidator = lessonprogressDescLearnerID.Validators[0].(func(string) error)
	// lessonprogressDescLessonSlug is the schema descriptor for lesson_slug field.
	lessonprogressDescLessonSlug := lessonprogressFields[1].Descriptor()
	// lessonprogress.LessonSlugValidator is a validator for the "lesson_slug" field. It is called by the builders before save.
	lessonprogress.LessonSlugValidator = lessonprogressDescLessonSlug.Validators[0].(func(string) error)
	// lessonprogressDescStepIdx is the schema descriptor for step_idx field.
	lessonprogressDescStepIdx := lessonprogressFields[2].Descriptor()
	// lessonprogress.DefaultStepIdx holds the default value on creation for the step_idx field.
	lessonprogress.DefaultStepIdx = lessonprogressDescStepIdx.Default.(int)
	// lessonprogress.StepIdxValidator is a validator for the "step_idx" field. It is called by the builders before save.
	lessonprogress.StepIdxValidator = lessonprogressDescStepIdx.Validators[0].(func(int) error)
	// lessonprogressDescQuestionIdx is the schema descriptor for question_idx field.
	lessonprogressDescQuestionIdx := lessonprogressFields[3].Descriptor()
	// lessonprogress.DefaultQuestionIdx holds the default value on creation for the question_idx field.
	lessonprogress.DefaultQuestionIdx = lessonprogressDescQuestionIdx.Default.(int)
	// lessonprogress.QuestionIdxValidator is a validator for the "question_idx" field. It is called by the builders before save.
	lessonprogress.QuestionIdxValidator = lessonprogressDescQuestionIdx.Validators[0].(func(int) error)
	// lessonprogressDescQuizCorrect is the schema descriptor for quiz_correct field.
	lessonprogressDescQuizCorrect := lessonprogressFields[4].Descriptor()
	// lessonprogress.DefaultQuizCorrect holds the default value on creation for the quiz_correct field.
	lessonprogress.DefaultQuizCorrect = lessonprogressDescQuizCorrect.Default.(int)
	// lessonprogress.QuizCorrectValidator is a validator for the "quiz_correct" field. It is called by the builders before save.
	lessonprogress.QuizCorrectValidator = lessonprogressDescQuizCorrect.Validators[0].(func(int) error)
	// lessonprogressDescCompleted is the schema descriptor for completed field.
	lessonprogressDescCompleted := lessonprogressFields[5].Descriptor()
	// lessonprogress.DefaultCompleted holds the default value on creation for the completed field.
	lessonprogress.DefaultCompleted = lessonprogressDescCompleted.Default.(bool)
	// lessonprogressDescUpdatedAt is the schema descriptor for updated_at field.
	lessonprogressDescUpdatedAt := lessonprogressFields[7].Descriptor()
	// lessonprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lessonprogress.DefaultUpdatedAt = lessonprogressDescUpdatedAt.Default.(func() time.Time)
	// lessonprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lessonprogress.UpdateDefaultUpdatedAt = lessonprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	lessonstepFields := schema.LessonStep{}.Fields()
	_ = lessonstepFields
	// lessonstepDescOrd is the schema descriptor for ord field.
	lessonstepDescOrd := lessonstepFields[0].Descriptor()
	// lessonstep.OrdValidator is a validator for the "ord" field. It is called by the builders before save.
	lessonstep.OrdValidator = lessonstepDescOrd.Validators[0].(func(int) error)
	// lessonstepDescBody is the schema descriptor for body field.
	lessonstepDescBody := lessonstepFields[1].Descriptor()
	// lessonstep.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	lessonstep.BodyValidator = lessonstepDescBody.Validators[0].(func(string) error)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescLearnerID is the schema descriptor for learner_id field.
	progressrecordDescLearnerID := progressrecordFields[0].Descriptor()
	// progressrecord.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	progressrecord.LearnerIDValidator = progressrecordDescLearnerID.Validators[0].(func(string) error)
	// progressrecordDescPlanID is the schema descriptor for plan_id field.
	progressrecordDescPlanID := progressrecordFields[1].Descriptor()
	// progressrecord.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	progressrecord.PlanIDValidator = progressrecordDescPlanID.Validators[0].(func(string) error)
	// progressrecordDescTopic is the schema descriptor for topic field.
	progressrecordDescTopic := progressrecordFields[2].Descriptor()
	// progressrecord.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	progressrecord.TopicValidator = progressrecordDescTopic.Validators[0].(func(string) error)
	// progressrecordDescModuleIdx is the schema descriptor for module_idx field.
	progressrecordDescModuleIdx := progressrecordFields[3].Descriptor()
	// progressrecord.DefaultModuleIdx holds the default value on creation for the module_idx field.
	progressrecord.DefaultModuleIdx = progressrecordDescModuleIdx.Default.(int)
	// progressrecord.ModuleIdxValidator is a validator for the "module_idx" field. It is called by the builders before save.
	progressrecord.ModuleIdxValidator = progressrecordDescModuleIdx.Validators[0].(func(int) error)
	// progressrecordDescStepIdx is the schema descriptor for step_idx field.
	progressrecordDescStepIdx := progressrecordFields[4].Descriptor()
	// progressrecord.DefaultStepIdx holds the default value on creation for the step_idx field.
	progressrecord.DefaultStepIdx = progressrecordDescStepIdx.Default.(int)
	// progressrecord.StepIdxValidator is a validator for the "step_idx" field. It is called by the builders before save.
	progressrecord.StepIdxValidator = progressrecordDescStepIdx.Validators[0].(func(int) error)
	// progressrecordDescUpdatedAt is the schema descriptor for updated_at field.
	progressrecordDescUpdatedAt := progressrecordFields[8].Descriptor()
	// progressrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progressrecord.DefaultUpdatedAt = progressrecordDescUpdatedAt.Default.(func() time.Time)
	// progressrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progressrecord.UpdateDefaultUpdatedAt = progressrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	quizquestionFields := schema.QuizQuestion{}.Fields()
	_ = quizquestionFields
	// quizquestionDescOrd is the schema descriptor for ord field.
	quizquestionDescOrd := quizquestionFields[0].Descriptor()
	// quizquestion.OrdValidator is a validator for the "ord" field. It is called by the builders before save.
	quizquestion.OrdValidator = quizquestionDescOrd.Validators[0].(func(int) error)
	// quizquestionDescText is the schema descriptor for text field.
	quizquestionDescText := quizquestionFields[1].Descriptor()
	// quizquestion.TextValidator is a validator for the "text" field. It is called by the builders before save.
	quizquestion.TextValidator = quizquestionDescText.Validators[0].(func(string) error)
	// quizquestionDescCorrect is the schema descriptor for correct field.
	quizquestionDescCorrect := quizquestionFields[3].Descriptor()
	// quizquestion.CorrectValidator is a validator for the "correct" field. It is called by the builders before save.
	quizquestion.CorrectValidator = quizquestionDescCorrect.Validators[0].(func(int) error)
	turnFields := schema.Turn{}.Fields()
	_ = turnFields
	// turnDescLearnerID is the schema descriptor for learner_id field.
	turnDescLearnerID := turnFields[0].Descriptor()
	// turn.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	turn.LearnerIDValidator = turnDescLearnerID.Validators[0].(func(string) error)
	// turnDescPlanID is the schema descriptor for plan_id field.
	turnDescPlanID := turnFields[1].Descriptor()
	// turn.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	turn.PlanIDValidator = turnDescPlanID.Validators[0].(func(string) error)
	// turnDescModuleIdx is the schema descriptor for module_idx field.
	turnDescModuleIdx := turnFields[2].Descriptor()
	// turn.ModuleIdxValidator is a validator for the "module_idx" field. It is called by the builders before save.
	turn.ModuleIdxValidator = turnDescModuleIdx.Validators[0].(func(int) error)
	// turnDescStepIdx is the schema descriptor for step_idx field.
	turnDescStepIdx := turnFields[3].Descriptor()
	// turn.StepIdxValidator is a validator for the "step_idx" field. It is called by the builders before save.
	turn.StepIdxValidator = turnDescStepIdx.Validators[0].(func(int) error)
	// turnDescTimestamp is the schema descriptor for timestamp field.
	turnDescTimestamp := turnFields[6].Descriptor()
	// turn.DefaultTimestamp holds the default value on creation for the timestamp field.
	turn.DefaultTimestamp = turnDescTimestamp.Default.(func() time.Time)
}
