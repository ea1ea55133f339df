package curriculum

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsarev/lernio/internal/store"
)

// Pack is one YAML curriculum file: a set of lessons to load into the
// catalog. The engine never writes the catalog; this loader is the only
// write path.
type Pack struct {
	Lessons []PackLesson `yaml:"lessons"`
}

// PackLesson is one lesson as authored in YAML.
type PackLesson struct {
	Slug      string         `yaml:"slug"`
	Title     string         `yaml:"title"`
	Body      string         `yaml:"body"`
	Steps     []string       `yaml:"steps"`
	Questions []PackQuestion `yaml:"questions"`
}

// PackQuestion is one multiple-choice question as authored in YAML.
// Correct is the zero-based index into Options.
type PackQuestion struct {
	Text    string   `yaml:"text"`
	Options []string `yaml:"options"`
	Correct int      `yaml:"correct"`
}

// ParseFile reads and validates a curriculum pack from a YAML file.
func ParseFile(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pack: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a curriculum pack.
func Parse(data []byte) (*Pack, error) {
	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("parse pack: %w", err)
	}
	if err := pack.validate(); err != nil {
		return nil, err
	}
	return &pack, nil
}

func (p *Pack) validate() error {
	if len(p.Lessons) == 0 {
		return fmt.Errorf("pack contains no lessons")
	}

	seen := make(map[string]bool)
	for i, l := range p.Lessons {
		if l.Slug == "" {
			return fmt.Errorf("lesson %d: slug is required", i)
		}
		if seen[l.Slug] {
			return fmt.Errorf("duplicate lesson slug %q", l.Slug)
		}
		seen[l.Slug] = true

		if l.Title == "" {
			return fmt.Errorf("lesson %q: title is required", l.Slug)
		}
		if l.Body == "" && len(l.Steps) == 0 {
			return fmt.Errorf("lesson %q: needs a body or steps", l.Slug)
		}

		for qi, q := range l.Questions {
			if q.Text == "" {
				return fmt.Errorf("lesson %q question %d: text is required", l.Slug, qi)
			}
			if len(q.Options) < 2 {
				return fmt.Errorf("lesson %q question %d: needs at least 2 options", l.Slug, qi)
			}
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				return fmt.Errorf("lesson %q question %d: correct index %d out of range", l.Slug, qi, q.Correct)
			}
		}
	}
	return nil
}

// Load writes every lesson of the pack into the catalog, replacing
// existing lessons with the same slug. Returns the number of lessons
// loaded.
func Load(ctx context.Context, catalog store.CatalogRepo, pack *Pack) (int, error) {
	for _, pl := range pack.Lessons {
		lesson := toLesson(pl)
		if err := catalog.Put(ctx, lesson); err != nil {
			return 0, fmt.Errorf("load lesson %q: %w", pl.Slug, err)
		}
	}
	return len(pack.Lessons), nil
}

func toLesson(pl PackLesson) *store.Lesson {
	l := &store.Lesson{
		Slug:   pl.Slug,
		Title:  pl.Title,
		Body:   pl.Body,
		Active: true,
	}
	for i, body := range pl.Steps {
		l.Steps = append(l.Steps, store.LessonStep{Ord: i, Body: body})
	}
	for i, q := range pl.Questions {
		l.Questions = append(l.Questions, store.QuizQuestion{
			Ord:     i,
			Text:    q.Text,
			Options: q.Options,
			Correct: q.Correct,
		})
	}
	return l
}
