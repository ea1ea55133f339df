// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: "unknown"},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "request_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[11]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
		},
	}
	// LearningPlansColumns holds the columns for the "learning_plans" table.
	LearningPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "goal", Type: field.TypeString, Size: 2147483647},
		{Name: "modules", Type: field.TypeJSON},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LearningPlansTable holds the schema information for the "learning_plans" table.
	LearningPlansTable = &schema.Table{
		Name:       "learning_plans",
		Columns:    LearningPlansColumns,
		PrimaryKey: []*schema.Column{LearningPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningplan_learner_id_active",
				Unique:  false,
				Columns: []*schema.Column{LearningPlansColumns[1], LearningPlansColumns[6]},
			},
			{
				Name:    "learningplan_learner_id_plan_id",
				Unique:  true,
				Columns: []*schema.Column{LearningPlansColumns[1], LearningPlansColumns[2]},
			},
		},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
	}
	// LessonProgressesColumns holds the columns for the "lesson_progresses" table.
	LessonProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "lesson_slug", Type: field.TypeString},
		{Name: "step_idx", Type: field.TypeInt, Default: 0},
		{Name: "question_idx", Type: field.TypeInt, Default: 0},
		{Name: "quiz_correct", Type: field.TypeInt, Default: 0},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "quiz_score", Type: field.TypeInt, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LessonProgressesTable holds the schema information for the "lesson_progresses" table.
	LessonProgressesTable = &schema.Table{
		Name:       "lesson_progresses",
		Columns:    LessonProgressesColumns,
		PrimaryKey: []*schema.Column{LessonProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonprogress_learner_id_lesson_slug",
				Unique:  true,
				Columns: []*schema.Column{LessonProgressesColumns[1], LessonProgressesColumns[2]},
			},
			{
				Name:    "lessonprogress_learner_id",
				Unique:  false,
				Columns: []*schema.Column{LessonProgressesColumns[1]},
			},
		},
	}
	// LessonStepsColumns holds the columns for the "lesson_steps" table.
	LessonStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "ord", Type: field.TypeInt},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "lesson_steps", Type: field.TypeInt},
	}
	// LessonStepsTable holds the schema information for the "lesson_steps" table.
	LessonStepsTable = &schema.Table{
		Name:       "lesson_steps",
		Columns:    LessonStepsColumns,
		PrimaryKey: []*schema.Column{LessonStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lesson_steps_lessons_steps",
				Columns:    []*schema.Column{LessonStepsColumns[3]},
				RefColumns: []*schema.Column{LessonsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lessonstep_ord_lesson_steps",
				Unique:  true,
				Columns: []*schema.Column{LessonStepsColumns[1], LessonStepsColumns[3]},
			},
		},
	}
	// ProgressRecordsColumns holds the columns for the "progress_records" table.
	ProgressRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "module_idx", Type: field.TypeInt, Default: 0},
		{Name: "step_idx", Type: field.TypeInt, Default: 0},
		{Name: "snapshot", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "prev_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "last_sent_step_id", Type: field.TypeInt, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressRecordsTable holds the schema information for the "progress_records" table.
	ProgressRecordsTable = &schema.Table{
		Name:       "progress_records",
		Columns:    ProgressRecordsColumns,
		PrimaryKey: []*schema.Column{ProgressRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressrecord_learner_id_plan_id",
				Unique:  true,
				Columns: []*schema.Column{ProgressRecordsColumns[1], ProgressRecordsColumns[2]},
			},
		},
	}
	// QuizQuestionsColumns holds the columns for the "quiz_questions" table.
	QuizQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "ord", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "options", Type: field.TypeJSON},
		{Name: "correct", Type: field.TypeInt},
		{Name: "lesson_questions", Type: field.TypeInt},
	}
	// QuizQuestionsTable holds the schema information for the "quiz_questions" table.
	QuizQuestionsTable = &schema.Table{
		Name:       "quiz_questions",
		Columns:    QuizQuestionsColumns,
		PrimaryKey: []*schema.Column{QuizQuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quiz_questions_lessons_questions",
				Columns:    []*schema.Column{QuizQuestionsColumns[5]},
				RefColumns: []*schema.Column{LessonsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "quizquestion_ord_lesson_questions",
				Unique:  true,
				Columns: []*schema.Column{QuizQuestionsColumns[1], QuizQuestionsColumns[5]},
			},
		},
	}
	// TurnsColumns holds the columns for the "turns" table.
	TurnsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "module_idx", Type: field.TypeInt},
		{Name: "step_idx", Type: field.TypeInt},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"assistant", "learner"}},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// TurnsTable holds the schema information for the "turns" table.
	TurnsTable = &schema.Table{
		Name:       "turns",
		Columns:    TurnsColumns,
		PrimaryKey: []*schema.Column{TurnsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "turn_learner_id_plan_id_module_idx_step_idx_role",
				Unique:  true,
				Columns: []*schema.Column{TurnsColumns[1], TurnsColumns[2], TurnsColumns[3], TurnsColumns[4], TurnsColumns[5]},
			},
			{
				Name:    "turn_learner_id_plan_id",
				Unique:  false,
				Columns: []*schema.Column{TurnsColumns[1], TurnsColumns[2]},
			},
			{
				Name:    "turn_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TurnsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		LearningPlansTable,
		LessonsTable,
		LessonProgressesTable,
		LessonStepsTable,
		ProgressRecordsTable,
		QuizQuestionsTable,
		TurnsTable,
	}
)

func init() {
	LessonStepsTable.ForeignKeys[0].RefTable = LessonsTable
	QuizQuestionsTable.ForeignKeys[0].RefTable = LessonsTable
}
